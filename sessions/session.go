// Package sessions issues and resolves the opaque bearer tokens that carry a
// caller's identity between requests.
package sessions

import (
	"time"

	"github.com/eiasy/wolf/authz"
)

// Session binds a bearer token to the identity resolved at login time.
type Session struct {
	Token    string
	Username string
	Identity authz.Identity
	IssuedAt time.Time
}

type Repo interface {
	Upsert(token string, session Session) error
	Get(token string) (Session, error)
	Delete(token string) error
	// DeleteByUsername removes every session bound to the username. Must
	// complete before a user deletion is acknowledged.
	DeleteByUsername(username string) error
}
