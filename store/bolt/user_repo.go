package bolt

import (
	"encoding/json"

	"go.etcd.io/bbolt"

	werrors "github.com/eiasy/wolf/internal/errors"
	"github.com/eiasy/wolf/users"
)

var _ users.Repo = (*UserRepo)(nil)

// UserRepo is the BoltDB-backed users.Repo, keyed by username. The password
// hash is stored in a dedicated field because the model excludes it from
// JSON serialization.
type UserRepo struct {
	db *bbolt.DB
}

// userRecord wraps the user model so the password hash survives the
// `json:"-"` tag on the public struct.
type userRecord struct {
	User         users.User `json:"user"`
	PasswordHash string     `json:"passwordHash"`
}

func (r *UserRepo) Create(user *users.User) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(userBucket)
		if bucket.Get([]byte(user.Username)) != nil {
			return werrors.Duplicate("user", user.Username)
		}
		payload, err := json.Marshal(&userRecord{User: *user, PasswordHash: user.PasswordHash})
		if err != nil {
			return err
		}
		return bucket.Put([]byte(user.Username), payload)
	})
}

func (r *UserRepo) Get(username string) (*users.User, error) {
	var record userRecord
	err := r.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(userBucket).Get([]byte(username))
		if raw == nil {
			return werrors.NotFound("user", username)
		}
		return json.Unmarshal(raw, &record)
	})
	if err != nil {
		return nil, err
	}
	user := record.User
	user.PasswordHash = record.PasswordHash
	return &user, nil
}

func (r *UserRepo) Delete(username string) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(userBucket)
		if bucket.Get([]byte(username)) == nil {
			return werrors.NotFound("user", username)
		}
		return bucket.Delete([]byte(username))
	})
}
