package flag

import "context"

// Record is the persisted configuration of a single feature flag.
//
// A flag name is an opaque key: the store performs no normalization,
// enforces no length limit, and accepts the empty string. AllowedUsers nil
// or empty means the flag is global when enabled - every requester passes.
type Record struct {
	Name         string   `json:"name"`
	Enabled      bool     `json:"enabled"`
	AllowedUsers []string `json:"allowed_users,omitempty"`
}

// Targeted reports whether the record restricts access to a user allow-list.
func (r *Record) Targeted() bool {
	return r.Enabled && len(r.AllowedUsers) > 0
}

// Store is the persistence contract for feature flag records.
//
// The access decision semantics every implementation must honor:
//
//   - A disabled flag denies every requester regardless of its allow-list.
//   - An enabled flag with an empty allow-list allows every requester.
//   - An enabled flag with a non-empty allow-list allows only listed users.
//   - A flag that was never written does not exist and denies everyone.
//   - A record whose enabled marker cannot be decoded is treated as
//     disabled, never as an error (fail closed).
type Store interface {
	// SetFlag creates or wholesale-replaces the record for name. The
	// previous allow-list is always discarded; when allowedUsers is empty
	// the flag becomes global (subject to enabled). There is no merge and
	// no partial update.
	SetFlag(ctx context.Context, name string, enabled bool, allowedUsers ...string) error

	// GetRecord returns the stored record, or nil exactly when no enabled
	// marker has ever been written for name.
	GetRecord(ctx context.Context, name string) (*Record, error)

	// IsUserAllowed reports whether userID may pass the named flag,
	// applying the decision semantics documented on Store.
	IsUserAllowed(ctx context.Context, name, userID string) (bool, error)
}
