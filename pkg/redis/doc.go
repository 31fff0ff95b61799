// Package redis provides connection plumbing for the Redis server backing
// the flag store.
//
// It wraps the go-redis client with:
//
//   - A `Connect` helper that retries the initial connection using the
//     supplied configuration.
//   - A `Healthcheck` probe for liveness/readiness endpoints.
//
// Configuration is described by the `Config` struct whose fields are
// populated from environment variables via github.com/caarlos0/env
// (see the config package).
//
// # Usage
//
//	import (
//		"github.com/dmitrymomot/flaggate/pkg/config"
//		"github.com/dmitrymomot/flaggate/pkg/flag"
//		"github.com/dmitrymomot/flaggate/pkg/redis"
//	)
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	store := flag.NewRedisStore(client, cfg.KeyPrefix)
//
// The returned client is a plain *redis.Client; nothing in this package
// retries individual commands. Flag store I/O failures propagate to the
// caller untouched.
package redis
