package guard

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/flaggate/pkg/logger"
)

// IdentityResolver extracts the requester identity from an HTTP request.
type IdentityResolver func(r *http.Request) Identity

// ErrorHandler renders denials and backend failures to the client.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// MiddlewareConfig configures guard middleware behavior.
type MiddlewareConfig struct {
	Evaluator *Evaluator       // Flag evaluator (required)
	FlagNames []string         // Flags required by the guarded routes, in declared order
	Scope     Scope            // Decision mode (defaults to ScopeController)
	Identity  IdentityResolver // Identity extraction strategy (defaults to context lookup)
	OnError   ErrorHandler     // Denial/failure rendering (defaults to status-code mapping)
	Logger    *slog.Logger     // Denial and failure logging (defaults to slog.Default)
}

// Middleware creates guard middleware requiring the listed flags with
// controller scope and default identity resolution.
func Middleware(eval *Evaluator, flagNames ...string) func(http.Handler) http.Handler {
	return MiddlewareWithConfig(MiddlewareConfig{
		Evaluator: eval,
		FlagNames: flagNames,
	})
}

// MiddlewareWithConfig creates guard middleware with custom configuration.
//
// The middleware reads the requester identity, evaluates the configured
// flags, records per-flag results into the request's RequestContext (created
// on demand), and either passes the request on or hands the denial to the
// error handler. With ScopeService the request always proceeds and handlers
// inspect results via IsFeatureEnabled.
func MiddlewareWithConfig(config MiddlewareConfig) func(http.Handler) http.Handler {
	if config.Scope == "" {
		config.Scope = ScopeController
	}
	if config.Identity == nil {
		config.Identity = ContextIdentityResolver
	}
	if config.OnError == nil {
		config.OnError = defaultErrorHandler
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			// Make sure downstream handlers share one result carrier even
			// when several guards run within the request.
			rc, ok := RequestContextFromContext(ctx)
			if !ok {
				rc = NewRequestContext()
				ctx = WithRequestContext(ctx, rc)
			}

			identity := config.Identity(r)

			result, err := config.Evaluator.Evaluate(ctx, identity, config.FlagNames, config.Scope)
			if err != nil {
				loggerOrDefault(config.Logger).ErrorContext(ctx, "flag evaluation failed",
					logger.Error(err),
					slog.Any("flags", config.FlagNames),
				)
				config.OnError(w, r, err)
				return
			}

			if !result.Allowed {
				if identity.Anonymous() {
					config.OnError(w, r, ErrMissingIdentity)
					return
				}
				loggerOrDefault(config.Logger).DebugContext(ctx, "request denied by feature flags",
					slog.String("user_id", identity.UserID),
					slog.Any("flags", result.Flags),
				)
				config.OnError(w, r, ErrAccessDenied)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContextIdentityResolver is the default identity strategy: it expects the
// authentication layer to have stored an Identity in the request context via
// WithIdentity. Requests without one are treated as anonymous.
func ContextIdentityResolver(r *http.Request) Identity {
	identity, _ := IdentityFromContext(r.Context())
	return identity
}

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.Default()
}

// defaultErrorHandler maps guard errors to conventional status codes:
// missing identity to 401, flag denial to 403, backend failures to 500.
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrMissingIdentity):
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	case errors.Is(err, ErrAccessDenied):
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
	default:
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
