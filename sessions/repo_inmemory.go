package sessions

import (
	"sync"

	werrors "github.com/eiasy/wolf/internal/errors"
)

var _ Repo = (*InMemorySessionRepo)(nil)

// InMemorySessionRepo is the canonical session table. Sessions are
// ephemeral by design: a restart logs everyone out.
type InMemorySessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]Session
	byUser   map[string]map[string]struct{} // username -> token set
}

// NewInMemorySessionRepo creates an empty session table.
func NewInMemorySessionRepo() *InMemorySessionRepo {
	return &InMemorySessionRepo{
		sessions: make(map[string]Session),
		byUser:   make(map[string]map[string]struct{}),
	}
}

func (r *InMemorySessionRepo) Upsert(token string, session Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token] = session
	if session.Username != "" {
		if _, ok := r.byUser[session.Username]; !ok {
			r.byUser[session.Username] = make(map[string]struct{})
		}
		r.byUser[session.Username][token] = struct{}{}
	}
	return nil
}

func (r *InMemorySessionRepo) Get(token string) (Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[token]
	if !ok {
		return Session{}, werrors.New(werrors.KindTokenInvalid, "session not found")
	}
	return session, nil
}

func (r *InMemorySessionRepo) Delete(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.remove(token)
	return nil
}

func (r *InMemorySessionRepo) DeleteByUsername(username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for token := range r.byUser[username] {
		r.remove(token)
	}
	return nil
}

// remove expects the write lock to be held.
func (r *InMemorySessionRepo) remove(token string) {
	session, ok := r.sessions[token]
	if !ok {
		return
	}
	delete(r.sessions, token)
	if tokens, ok := r.byUser[session.Username]; ok {
		delete(tokens, token)
		if len(tokens) == 0 {
			delete(r.byUser, session.Username)
		}
	}
}
