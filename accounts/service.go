// Package accounts implements user management: creating delegated
// administrators and regular users, and deleting them together with their
// active sessions.
package accounts

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/eiasy/wolf/applications"
	"github.com/eiasy/wolf/authz"
	werrors "github.com/eiasy/wolf/internal/errors"
	"github.com/eiasy/wolf/sessions"
	"github.com/eiasy/wolf/users"
)

// Repos holds all repository dependencies for the accounts Service.
type Repos struct {
	Users        users.Repo
	Applications applications.Repo
}

// Service manages user records. It gates scope creation: a user's appIDs
// must reference applications that exist at creation time.
type Service struct {
	repos    Repos
	sessions *sessions.Manager
}

// New initializes the accounts Service with required dependencies.
func New(repos Repos, sessionManager *sessions.Manager) (*Service, error) {
	if repos.Users == nil {
		return nil, errors.New("[accounts.New] Users repo is required")
	}
	if repos.Applications == nil {
		return nil, errors.New("[accounts.New] Applications repo is required")
	}
	if sessionManager == nil {
		return nil, errors.New("[accounts.New] session manager is required")
	}

	return &Service{repos: repos, sessions: sessionManager}, nil
}

// Add creates a user. The password is stored only as a bcrypt hash. Every
// id in appIDs must name an existing application.
func (s *Service) Add(caller authz.Identity, user *users.User, password string) error {
	if authz.Decide(caller, authz.OpUserAdd, "") != authz.Allow {
		return werrors.AccessDenied(string(authz.OpUserAdd))
	}
	if err := user.Validate(); err != nil {
		return err
	}
	if password == "" {
		return werrors.New(werrors.KindInvalidParam, "password is required")
	}

	for _, appID := range user.AppIDs {
		if _, err := s.repos.Applications.Get(appID); err != nil {
			if werrors.IsKind(err, werrors.KindNotFound) {
				return werrors.Newf(werrors.KindInvalidParam, "appIDs references unknown application %q", appID)
			}
			return errors.Wrap(err, "[Service.Add] applications.Get")
		}
	}

	hash, err := users.HashPassword(password)
	if err != nil {
		return errors.Wrap(err, "[Service.Add] HashPassword")
	}

	stored := *user
	stored.ID = uuid.New().String()
	stored.PasswordHash = hash

	if err := s.repos.Users.Create(&stored); err != nil {
		return errors.Wrap(err, "[Service.Add] users.Create")
	}
	return nil
}

// Delete removes a user. Its active tokens are revoked before the deletion
// is acknowledged, so no call with a stale token can succeed afterwards.
func (s *Service) Delete(caller authz.Identity, username string) error {
	if authz.Decide(caller, authz.OpUserDelete, "") != authz.Allow {
		return werrors.AccessDenied(string(authz.OpUserDelete))
	}

	if _, err := s.repos.Users.Get(username); err != nil {
		return errors.Wrap(err, "[Service.Delete] users.Get")
	}

	// Revocation first: once Delete returns, no token of this user resolves.
	if err := s.sessions.RevokeUser(username); err != nil {
		return errors.Wrap(err, "[Service.Delete] sessions.RevokeUser")
	}

	if err := s.repos.Users.Delete(username); err != nil {
		return errors.Wrap(err, "[Service.Delete] users.Delete")
	}
	return nil
}

// Login authenticates the credentials and issues a bearer token.
func (s *Service) Login(username, password string) (string, error) {
	return s.sessions.Login(username, password)
}
