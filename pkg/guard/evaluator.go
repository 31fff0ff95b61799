package guard

import (
	"context"

	"github.com/dmitrymomot/flaggate/pkg/flag"
)

// Result is the outcome of a single evaluation.
type Result struct {
	// Allowed is the final decision for the configured scope.
	Allowed bool

	// Flags holds the per-flag truth values, keyed by flag name. Nil when
	// the evaluation short-circuited before touching the store (admin
	// bypass, anonymous denial).
	Flags map[string]bool
}

// Evaluator combines a flag store lookup, a requester identity, and a scope
// into an access decision. It holds no state between calls; every
// evaluation re-queries the store.
type Evaluator struct {
	store flag.Store
}

// NewEvaluator creates an evaluator over the given flag store.
func NewEvaluator(store flag.Store) *Evaluator {
	return &Evaluator{store: store}
}

// Evaluate resolves every listed flag for the identity and decides per the
// scope.
//
// Admin identities bypass the store entirely: the result is an allow with no
// per-flag entries and the request context is left untouched. Anonymous
// identities are denied the same way, also without store access. For
// everyone else, each flag is resolved in declared order with no
// short-circuit, so the result map is fully populated even when the overall
// decision is a denial.
//
// When ctx carries a RequestContext, resolved flags are merged into it as a
// side effect. Backend failures abort the evaluation and propagate
// unmodified; no partial result is returned.
func (e *Evaluator) Evaluate(ctx context.Context, identity Identity, flagNames []string, scope Scope) (Result, error) {
	if e == nil || e.store == nil {
		return Result{}, ErrStoreNotInitialized
	}

	if identity.IsAdmin {
		return Result{Allowed: true}, nil
	}
	if identity.UserID == "" {
		return Result{}, nil
	}

	perFlag := make(map[string]bool, len(flagNames))
	for _, name := range flagNames {
		record, err := e.store.GetRecord(ctx, name)
		if err != nil {
			return Result{}, err
		}
		userAllowed, err := e.store.IsUserAllowed(ctx, name, identity.UserID)
		if err != nil {
			return Result{}, err
		}
		perFlag[name] = record != nil && record.Enabled && userAllowed
	}

	if rc, ok := RequestContextFromContext(ctx); ok {
		rc.Merge(perFlag)
	}

	allowed := true
	if scope != ScopeService {
		for _, ok := range perFlag {
			if !ok {
				allowed = false
				break
			}
		}
	}

	return Result{Allowed: allowed, Flags: perFlag}, nil
}
