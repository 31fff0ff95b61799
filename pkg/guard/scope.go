package guard

// Scope selects how the per-flag results turn into an allow/deny decision.
type Scope string

const (
	// ScopeController blocks the call when any required flag evaluates
	// false. This is the default.
	ScopeController Scope = "controller"

	// ScopeService always permits the call; per-flag truth values are still
	// evaluated and recorded for downstream conditional logic.
	ScopeService Scope = "service"
)
