package authz_test

import (
	"testing"

	"github.com/eiasy/wolf/authz"
	"github.com/stretchr/testify/require"
)

const (
	scopedAppID    = "app-in-scope"
	outOfScopeID   = "app-out-of-scope"
	scopedUsername = "delegated-admin"
)

func scopedAdmin() authz.Identity {
	return authz.Scoped(scopedUsername, authz.RoleAdmin, []string{scopedAppID})
}

func regularUser() authz.Identity {
	return authz.Scoped("plain-user", "", []string{scopedAppID})
}

func TestDecideSuperAllowsEverything(t *testing.T) {
	ops := []authz.Operation{
		authz.OpApplicationAdd,
		authz.OpApplicationUpdate,
		authz.OpApplicationDelete,
		authz.OpApplicationGet,
		authz.OpApplicationSecret,
		authz.OpApplicationList,
		authz.OpApplicationListAll,
		authz.OpApplicationDiagram,
		authz.OpUserAdd,
		authz.OpUserDelete,
	}
	for _, op := range ops {
		require.Equal(t, authz.Allow, authz.Decide(authz.Super(), op, scopedAppID), "op %s", op)
		require.Equal(t, authz.Allow, authz.Decide(authz.Super(), op, ""), "op %s untargeted", op)
	}
}

func TestDecideScopedAdmin(t *testing.T) {
	tests := []struct {
		name   string
		op     authz.Operation
		target string
		want   authz.Decision
	}{
		{"get in scope", authz.OpApplicationGet, scopedAppID, authz.Allow},
		{"diagram in scope", authz.OpApplicationDiagram, scopedAppID, authz.Allow},
		{"list in scope", authz.OpApplicationList, scopedAppID, authz.Allow},
		{"list untargeted", authz.OpApplicationList, "", authz.Allow},
		{"list_all untargeted", authz.OpApplicationListAll, "", authz.Allow},
		{"get out of scope", authz.OpApplicationGet, outOfScopeID, authz.Deny},
		{"diagram out of scope", authz.OpApplicationDiagram, outOfScopeID, authz.Deny},
		// Write and secret rights never extend to delegated admins, even
		// inside their own scope.
		{"delete in scope", authz.OpApplicationDelete, scopedAppID, authz.Deny},
		{"secret in scope", authz.OpApplicationSecret, scopedAppID, authz.Deny},
		{"add", authz.OpApplicationAdd, "", authz.Deny},
		{"update in scope", authz.OpApplicationUpdate, scopedAppID, authz.Deny},
		{"user add", authz.OpUserAdd, "", authz.Deny},
		{"user delete", authz.OpUserDelete, "", authz.Deny},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, authz.Decide(scopedAdmin(), tc.op, tc.target))
		})
	}
}

func TestDecideRegularUserDeniedEverywhere(t *testing.T) {
	// A non-admin role tag grants nothing, even with appIDs assigned.
	ops := []authz.Operation{
		authz.OpApplicationGet,
		authz.OpApplicationSecret,
		authz.OpApplicationDelete,
		authz.OpApplicationList,
		authz.OpApplicationDiagram,
	}
	for _, op := range ops {
		require.Equal(t, authz.Deny, authz.Decide(regularUser(), op, scopedAppID), "op %s", op)
	}
	require.Equal(t, authz.Deny, authz.Decide(regularUser(), authz.OpApplicationList, ""))
}

func TestDecideAnonymousDeniedEverywhere(t *testing.T) {
	ops := []authz.Operation{
		authz.OpApplicationAdd,
		authz.OpApplicationGet,
		authz.OpApplicationSecret,
		authz.OpApplicationList,
		authz.OpUserAdd,
	}
	for _, op := range ops {
		require.Equal(t, authz.Deny, authz.Decide(authz.Anonymous(), op, scopedAppID), "op %s", op)
		require.Equal(t, authz.Deny, authz.Decide(authz.Anonymous(), op, ""), "op %s untargeted", op)
	}
}

func TestDecideIgnoresTargetExistence(t *testing.T) {
	// The engine sees only ids, never the store: a denied caller gets the
	// same answer whether or not the target exists.
	require.Equal(t, authz.Deny, authz.Decide(scopedAdmin(), authz.OpApplicationSecret, "no-such-app"))
	require.Equal(t, authz.Deny, authz.Decide(scopedAdmin(), authz.OpApplicationSecret, scopedAppID))
}

func TestIdentityVariants(t *testing.T) {
	require.True(t, authz.Super().IsSuper())
	require.True(t, authz.Anonymous().IsAnonymous())
	require.True(t, authz.Identity{}.IsAnonymous(), "zero value is anonymous")

	scoped := scopedAdmin()
	require.False(t, scoped.IsSuper())
	require.False(t, scoped.IsAnonymous())
	require.Equal(t, scopedUsername, scoped.Username())
	require.True(t, scoped.InScope(scopedAppID))
	require.False(t, scoped.InScope(outOfScopeID))
	require.True(t, authz.Super().InScope(outOfScopeID))
	require.False(t, authz.Anonymous().InScope(scopedAppID))
}
