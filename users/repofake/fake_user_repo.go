package fakeuserrepo

import (
	"sync"

	werrors "github.com/eiasy/wolf/internal/errors"
	"github.com/eiasy/wolf/users"
)

var _ users.Repo = (*FakeUserRepo)(nil)

type FakeUserRepo struct {
	users map[string]*users.User
	lock  sync.RWMutex
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{
		users: make(map[string]*users.User),
	}
}

func (r *FakeUserRepo) Create(user *users.User) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.users[user.Username]; ok {
		return werrors.Duplicate("user", user.Username)
	}
	stored := *user
	r.users[user.Username] = &stored
	return nil
}

func (r *FakeUserRepo) Get(username string) (*users.User, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	user, ok := r.users[username]
	if !ok {
		return nil, werrors.NotFound("user", username)
	}
	copied := *user
	return &copied, nil
}

func (r *FakeUserRepo) Delete(username string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.users[username]; !ok {
		return werrors.NotFound("user", username)
	}
	delete(r.users, username)
	return nil
}
