// Package authz implements the pure RBAC decision engine. It holds no state
// and touches no store: every mutating or secret-revealing operation runs a
// Decide call before any entity lookup, so a deny can never leak whether the
// target exists.
package authz

// identityKind tags the Identity variant. Identities are one of exactly
// three shapes: the out-of-band root identity, a user-backed identity with a
// role tag and an application scope, or the anonymous identity.
type identityKind int

const (
	kindAnonymous identityKind = iota
	kindSuper
	kindScoped
)

// RoleAdmin is the role tag carried by delegated administrators.
const RoleAdmin = "admin"

// Identity is the caller's resolved identity. Construct via Super, Scoped or
// Anonymous; the zero value is the anonymous identity.
type Identity struct {
	kind     identityKind
	username string
	role     string
	scope    map[string]struct{}
}

// Super returns the root identity. It is not backed by a user record; it is
// established out-of-band via the configured root token.
func Super() Identity {
	return Identity{kind: kindSuper}
}

// Scoped returns a user-backed identity with a role tag and an application
// scope. A non-admin role tag yields an identity with no administrative
// rights regardless of scope.
func Scoped(username, role string, appIDs []string) Identity {
	scope := make(map[string]struct{}, len(appIDs))
	for _, id := range appIDs {
		scope[id] = struct{}{}
	}
	return Identity{kind: kindScoped, username: username, role: role, scope: scope}
}

// Anonymous returns the unauthenticated identity.
func Anonymous() Identity {
	return Identity{kind: kindAnonymous}
}

// IsSuper reports whether the identity is the root identity.
func (id Identity) IsSuper() bool {
	return id.kind == kindSuper
}

// IsAnonymous reports whether the identity is unauthenticated.
func (id Identity) IsAnonymous() bool {
	return id.kind == kindAnonymous
}

// Username returns the backing username, empty for root and anonymous.
func (id Identity) Username() string {
	return id.username
}

// isScopedAdmin reports whether the identity is a delegated administrator.
func (id Identity) isScopedAdmin() bool {
	return id.kind == kindScoped && id.role == RoleAdmin
}

// InScope reports whether an application id is within the identity's scope.
// Root is in scope of everything; anonymous of nothing.
func (id Identity) InScope(appID string) bool {
	switch id.kind {
	case kindSuper:
		return true
	case kindScoped:
		_, ok := id.scope[appID]
		return ok
	}
	return false
}
