// Package guard evaluates feature flags as an access-control gate for
// incoming requests.
//
// The package combines three inputs - a flag store lookup, the requester
// identity, and a scope - into a pass/fail decision plus a per-flag result
// map that accumulates across the request.
//
// # Architecture
//
// The package is built around three core concepts:
//
//  1. Evaluator - pure decision logic over a flag.Store
//  2. RequestContext - per-request carrier of accumulated flag results
//  3. Middleware - orchestrates identity, evaluation, and denial rendering
//
// Evaluation order is fixed: admin identities (strictly boolean admin, see
// IdentityFromClaims) are allowed without touching the store; anonymous
// identities are denied without touching the store; everyone else gets every
// configured flag resolved in declared order with no short-circuiting, so
// the result map is complete even when the decision is a denial.
//
// Two scopes are supported. ScopeController blocks the request when any
// required flag is false. ScopeService always lets the request through and
// leaves the per-flag truth values in the RequestContext for conditional
// logic downstream.
//
// # Usage
//
//	import (
//		"github.com/dmitrymomot/flaggate/pkg/flag"
//		"github.com/dmitrymomot/flaggate/pkg/guard"
//	)
//
//	store := flag.NewRedisStore(client, "flags")
//	eval := guard.NewEvaluator(store)
//
//	// Block the route unless "beta" passes for the requester
//	router.With(guard.Middleware(eval, "beta")).Get("/beta", betaHandler)
//
//	// Record results without blocking
//	router.Use(guard.MiddlewareWithConfig(guard.MiddlewareConfig{
//		Evaluator: eval,
//		FlagNames: []string{"new-ui"},
//		Scope:     guard.ScopeService,
//	}))
//
//	func betaHandler(w http.ResponseWriter, r *http.Request) {
//		if guard.IsFeatureEnabled(r.Context(), "new-ui") {
//			// Render the new UI
//		}
//	}
//
// The middleware expects the authentication layer to have stored an
// Identity in the request context (guard.WithIdentity), or a custom
// IdentityResolver can be supplied. The package performs no authentication
// itself.
package guard
