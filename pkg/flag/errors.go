package flag

import "errors"

// Predefined errors for the flag package.
var (
	// ErrOperationFailed indicates a backend failure while reading or
	// writing flag state. The underlying cause is always attached.
	ErrOperationFailed = errors.New("flag store operation failed")
)
