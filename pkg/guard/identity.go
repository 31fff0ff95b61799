package guard

import "context"

// Claim keys recognized by IdentityFromClaims. They match the flat claim
// maps produced by common JWT middleware.
const (
	ClaimUserID  = "user_id"
	ClaimIsAdmin = "is_admin"
)

// Identity is the requester on whose behalf flags are evaluated.
// An empty UserID means the requester is anonymous.
type Identity struct {
	UserID  string
	IsAdmin bool
}

// Anonymous reports whether the identity carries neither a user ID nor
// admin rights. Anonymous identities are denied before any store access.
func (i Identity) Anonymous() bool {
	return i.UserID == "" && !i.IsAdmin
}

// IdentityFromClaims builds an Identity from a raw claims map using strict
// type assertions. The admin claim counts only when it holds the boolean
// value true: the strings "true"/"1", numbers, or any other type never grant
// admin rights. This guards against privilege escalation through
// type-confused token payloads.
func IdentityFromClaims(claims map[string]any) Identity {
	var identity Identity
	if userID, ok := claims[ClaimUserID].(string); ok {
		identity.UserID = userID
	}
	if isAdmin, ok := claims[ClaimIsAdmin].(bool); ok {
		identity.IsAdmin = isAdmin
	}
	return identity
}

// identityCtxKey is the context key for storing the requester identity.
type identityCtxKey struct{}

// WithIdentity stores the requester identity in the context. It is normally
// called by the authentication layer before the guard middleware runs.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

// IdentityFromContext retrieves the requester identity from the context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(Identity)
	return identity, ok
}
