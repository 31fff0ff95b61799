package guard

import (
	"context"
	"maps"
	"sync"
)

// RequestContext accumulates per-flag evaluation results over the lifetime
// of a single request. Several guard evaluations may run within one request
// (route-level and service-level); each merge overwrites the flags it
// evaluated and leaves unrelated entries untouched.
//
// A RequestContext is safe for concurrent use.
type RequestContext struct {
	mu    sync.RWMutex
	flags map[string]bool
}

// NewRequestContext creates an empty per-request result carrier.
func NewRequestContext() *RequestContext {
	return &RequestContext{flags: make(map[string]bool)}
}

// Merge records the given per-flag results. Keys present in results
// overwrite prior values for the same flag; existing unrelated keys are
// preserved.
func (rc *RequestContext) Merge(results map[string]bool) {
	if rc == nil || len(results) == 0 {
		return
	}
	rc.mu.Lock()
	maps.Copy(rc.flags, results)
	rc.mu.Unlock()
}

// IsFeatureEnabled reports whether the named flag was evaluated to true
// within this request. Missing entries are false.
func (rc *RequestContext) IsFeatureEnabled(name string) bool {
	if rc == nil {
		return false
	}
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return rc.flags[name]
}

// Evaluated returns a copy of all accumulated per-flag results.
func (rc *RequestContext) Evaluated() map[string]bool {
	if rc == nil {
		return nil
	}
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return maps.Clone(rc.flags)
}

// requestCtxKey is the context key for storing the per-request carrier.
type requestCtxKey struct{}

// WithRequestContext stores the per-request result carrier in the context.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestCtxKey{}, rc)
}

// RequestContextFromContext retrieves the per-request result carrier.
func RequestContextFromContext(ctx context.Context) (*RequestContext, bool) {
	rc, ok := ctx.Value(requestCtxKey{}).(*RequestContext)
	return rc, ok && rc != nil
}

// IsFeatureEnabled reports whether the named flag evaluated to true for the
// current request. It is the downstream-handler companion to the middleware:
// returns false when no guard ran or the flag was never evaluated.
func IsFeatureEnabled(ctx context.Context, name string) bool {
	rc, ok := RequestContextFromContext(ctx)
	if !ok {
		return false
	}
	return rc.IsFeatureEnabled(name)
}
