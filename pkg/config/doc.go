// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a convenient API that:
//
//   - Loads values from one or multiple `.env` files (falling back to the
//     default `.env` in the current working directory).
//   - Parses the environment into any Go struct using `env` field tags.
//   - Caches each successfully loaded configuration type so it is parsed
//     once per process.
//   - Exposes helpers that panic on failure (`MustLoadEnv`, `MustLoad`) for
//     configuration the application cannot start without.
//   - Allows explicit cache reset, which is handy in tests.
//
// # Usage
//
//	import (
//		"github.com/dmitrymomot/flaggate/pkg/config"
//		"github.com/dmitrymomot/flaggate/pkg/redis"
//	)
//
//	var redisCfg redis.Config
//	config.MustLoad(&redisCfg)
package config
