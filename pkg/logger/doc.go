// Package logger provides a configured log/slog factory with context-aware
// attribute injection.
//
// The factory produces standard *slog.Logger instances, so application code
// depends only on the standard library. Options control format (JSON or
// text), level, output, static attributes, and context extractors that pull
// request-scoped values (request IDs, user IDs) into every record.
//
// # Usage
//
//	import "github.com/dmitrymomot/flaggate/pkg/logger"
//
//	log := logger.New(
//		logger.WithProduction("flaggate"),
//		logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	logger.SetAsDefault(log)
//
//	log.Info("flag updated", logger.FlagName("beta"), logger.UserID("u1"))
//
// The attr helpers keep field names consistent across the codebase: "flag",
// "user_id", "allowed", "error".
package logger
