package accounts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eiasy/wolf/accounts"
	"github.com/eiasy/wolf/applications"
	fakeapplicationrepo "github.com/eiasy/wolf/applications/repofake"
	"github.com/eiasy/wolf/authz"
	werrors "github.com/eiasy/wolf/internal/errors"
	"github.com/eiasy/wolf/sessions"
	"github.com/eiasy/wolf/users"
	fakeuserrepo "github.com/eiasy/wolf/users/repofake"
)

const (
	testRootToken = "test-root-token"
	testUsername  = "admin-user-001"
	testPassword  = "def-password-001"
	testAppID     = "test-application-id"
)

type testFixture struct {
	appRepo  *fakeapplicationrepo.FakeApplicationRepo
	userRepo *fakeuserrepo.FakeUserRepo
	manager  *sessions.Manager
	service  *accounts.Service
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{
		appRepo:  fakeapplicationrepo.NewFakeApplicationRepo(),
		userRepo: fakeuserrepo.NewFakeUserRepo(),
	}

	require.NoError(t, f.appRepo.Create(&applications.Application{
		ID:                   testAppID,
		Name:                 "test-application-name",
		Secret:               "secret",
		AccessTokenLifetime:  3600,
		RefreshTokenLifetime: 7200,
	}))

	manager, err := sessions.NewManager(f.userRepo, sessions.NewInMemorySessionRepo(), testRootToken)
	require.NoError(t, err)
	f.manager = manager

	service, err := accounts.New(accounts.Repos{Users: f.userRepo, Applications: f.appRepo}, manager)
	require.NoError(t, err)
	f.service = service
	return f
}

func testUser() *users.User {
	return &users.User{
		Username: testUsername,
		Nickname: testUsername,
		Email:    testUsername + "@company.com",
		Tel:      "13011002200",
		AppIDs:   []string{testAppID},
		Manager:  users.ManagerAdmin,
	}
}

func TestAddThenLogin(t *testing.T) {
	f := setupTestFixture(t)

	require.NoError(t, f.service.Add(authz.Super(), testUser(), testPassword))

	token, err := f.service.Login(testUsername, testPassword)
	require.NoError(t, err)

	identity, err := f.manager.Resolve(token)
	require.NoError(t, err)
	require.Equal(t, testUsername, identity.Username())
	require.True(t, identity.InScope(testAppID))

	// The stored record carries a verifier, never the password.
	stored, err := f.userRepo.Get(testUsername)
	require.NoError(t, err)
	require.NotEmpty(t, stored.ID)
	require.NotEqual(t, testPassword, stored.PasswordHash)
}

func TestAddDuplicateUsername(t *testing.T) {
	f := setupTestFixture(t)

	require.NoError(t, f.service.Add(authz.Super(), testUser(), testPassword))
	err := f.service.Add(authz.Super(), testUser(), testPassword)
	require.True(t, werrors.IsKind(err, werrors.KindDuplicateKey))
}

func TestAddValidatesAppIDs(t *testing.T) {
	f := setupTestFixture(t)

	user := testUser()
	user.AppIDs = []string{testAppID, "no-such-application"}
	err := f.service.Add(authz.Super(), user, testPassword)
	require.True(t, werrors.IsKind(err, werrors.KindInvalidParam))

	// Failed validation must not create the user.
	_, err = f.userRepo.Get(testUsername)
	require.True(t, werrors.IsKind(err, werrors.KindNotFound))
}

func TestAddRequiresRoot(t *testing.T) {
	f := setupTestFixture(t)

	caller := authz.Scoped("someone", authz.RoleAdmin, []string{testAppID})
	err := f.service.Add(caller, testUser(), testPassword)
	require.True(t, werrors.IsKind(err, werrors.KindAccessDenied))

	err = f.service.Add(authz.Anonymous(), testUser(), testPassword)
	require.True(t, werrors.IsKind(err, werrors.KindAccessDenied))
}

func TestDeleteRevokesSessionsFirst(t *testing.T) {
	f := setupTestFixture(t)

	require.NoError(t, f.service.Add(authz.Super(), testUser(), testPassword))
	token, err := f.service.Login(testUsername, testPassword)
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(authz.Super(), testUsername))

	_, err = f.manager.Resolve(token)
	require.True(t, werrors.IsKind(err, werrors.KindTokenInvalid))

	_, err = f.service.Login(testUsername, testPassword)
	require.True(t, werrors.IsKind(err, werrors.KindInvalidCredentials))
}

func TestDeleteUnknownUser(t *testing.T) {
	f := setupTestFixture(t)

	err := f.service.Delete(authz.Super(), "nobody")
	require.True(t, werrors.IsKind(err, werrors.KindNotFound))

	err = f.service.Delete(authz.Anonymous(), "nobody")
	require.True(t, werrors.IsKind(err, werrors.KindAccessDenied))
}
