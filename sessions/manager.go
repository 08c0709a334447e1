package sessions

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/pkg/errors"

	"github.com/eiasy/wolf/authz"
	werrors "github.com/eiasy/wolf/internal/errors"
	"github.com/eiasy/wolf/users"
)

const tokenByteLength = 32

// Manager authenticates users and maps bearer tokens back to identities.
// Token resolution is a single session-table lookup; the user store is only
// consulted at login time.
type Manager struct {
	users     users.Repo
	repo      Repo
	rootToken string
	ttl       time.Duration
	nowTime   func() time.Time // nowTime function (injectable for testing)
}

// ManagerOption defines a function type to modify the Manager instance.
type ManagerOption func(*Manager)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.nowTime = nowFunc
	}
}

// WithTTL sets the session lifetime. Zero disables expiry.
func WithTTL(ttl time.Duration) ManagerOption {
	return func(m *Manager) {
		m.ttl = ttl
	}
}

// NewManager creates a session manager. rootToken is the out-of-band bearer
// credential that resolves to the root identity without a backing user.
func NewManager(userRepo users.Repo, sessionRepo Repo, rootToken string, options ...ManagerOption) (*Manager, error) {
	if userRepo == nil {
		return nil, errors.New("[NewManager] user repo is required")
	}
	if sessionRepo == nil {
		return nil, errors.New("[NewManager] session repo is required")
	}
	if rootToken == "" {
		return nil, errors.New("[NewManager] root token is required")
	}

	m := &Manager{
		users:     userRepo,
		repo:      sessionRepo,
		rootToken: rootToken,
		nowTime:   time.Now,
	}

	for _, opt := range options {
		opt(m)
	}

	return m, nil
}

// Login checks the credentials and issues a new bearer token bound to the
// identity derived from the user record. Unknown usernames and password
// mismatches are indistinguishable to the caller.
func (m *Manager) Login(username, password string) (string, error) {
	user, err := m.users.Get(username)
	if err != nil {
		if werrors.IsKind(err, werrors.KindNotFound) {
			return "", werrors.New(werrors.KindInvalidCredentials, "username or password incorrect")
		}
		return "", errors.Wrap(err, "[Manager.Login] users.Get")
	}
	if !users.CheckPasswordHash(password, user.PasswordHash) {
		return "", werrors.New(werrors.KindInvalidCredentials, "username or password incorrect")
	}

	token, err := newToken()
	if err != nil {
		return "", errors.Wrap(err, "[Manager.Login] newToken")
	}

	role := ""
	if user.IsAdmin() {
		role = authz.RoleAdmin
	}

	session := Session{
		Token:    token,
		Username: user.Username,
		Identity: authz.Scoped(user.Username, role, user.AppIDs),
		IssuedAt: m.nowTime(),
	}
	if err := m.repo.Upsert(token, session); err != nil {
		return "", errors.Wrap(err, "[Manager.Login] sessions.Upsert")
	}
	return token, nil
}

// Resolve maps a bearer token to the identity it was issued for. The
// configured root token resolves to the root identity; everything else goes
// through the session table.
func (m *Manager) Resolve(token string) (authz.Identity, error) {
	if token == "" {
		return authz.Anonymous(), werrors.New(werrors.KindTokenInvalid, "missing token")
	}
	if token == m.rootToken {
		return authz.Super(), nil
	}

	session, err := m.repo.Get(token)
	if err != nil {
		return authz.Anonymous(), werrors.New(werrors.KindTokenInvalid, "unknown token")
	}

	if m.ttl > 0 && m.nowTime().Sub(session.IssuedAt) > m.ttl {
		_ = m.repo.Delete(token)
		return authz.Anonymous(), werrors.New(werrors.KindTokenInvalid, "token expired")
	}

	return session.Identity, nil
}

// RevokeUser invalidates every token bound to the username.
func (m *Manager) RevokeUser(username string) error {
	if err := m.repo.DeleteByUsername(username); err != nil {
		return errors.Wrap(err, "[Manager.RevokeUser] sessions.DeleteByUsername")
	}
	return nil
}

func newToken() (string, error) {
	bytes := make([]byte, tokenByteLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", errors.Wrap(err, "rand.Read")
	}
	return base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(bytes), nil
}
