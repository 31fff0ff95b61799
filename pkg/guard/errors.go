package guard

import "errors"

// Predefined errors for the guard package.
var (
	// ErrStoreNotInitialized indicates the evaluator was built without a
	// flag store.
	ErrStoreNotInitialized = errors.New("guard evaluator has no flag store")

	// ErrMissingIdentity indicates the request carried neither a user ID
	// nor admin rights. Surfaced by the middleware; the evaluator itself
	// treats a missing identity as a plain denial, not an error.
	ErrMissingIdentity = errors.New("request identity is missing")

	// ErrAccessDenied indicates at least one required flag evaluated false
	// for the requester.
	ErrAccessDenied = errors.New("access denied by feature flags")
)
