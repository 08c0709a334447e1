package bolt

import (
	"encoding/json"
	"strings"

	"go.etcd.io/bbolt"

	"github.com/eiasy/wolf/applications"
	werrors "github.com/eiasy/wolf/internal/errors"
)

var _ applications.Repo = (*ApplicationRepo)(nil)

// ApplicationRepo is the BoltDB-backed applications.Repo. Bolt serializes
// write transactions, which gives the single-winner guarantee for
// concurrent creations with the same id.
type ApplicationRepo struct {
	db *bbolt.DB
}

func (r *ApplicationRepo) Create(app *applications.Application) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(applicationBucket)
		if bucket.Get([]byte(app.ID)) != nil {
			return werrors.Duplicate("application", app.ID)
		}
		payload, err := json.Marshal(app)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(app.ID), payload)
	})
}

func (r *ApplicationRepo) Update(app *applications.Application) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(applicationBucket)
		raw := bucket.Get([]byte(app.ID))
		if raw == nil {
			return werrors.NotFound("application", app.ID)
		}
		var existing applications.Application
		if err := json.Unmarshal(raw, &existing); err != nil {
			return err
		}
		stored := *app
		stored.CreateTime = existing.CreateTime
		payload, err := json.Marshal(&stored)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(app.ID), payload)
	})
}

func (r *ApplicationRepo) Get(id string) (*applications.Application, error) {
	var app applications.Application
	err := r.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(applicationBucket).Get([]byte(id))
		if raw == nil {
			return werrors.NotFound("application", id)
		}
		return json.Unmarshal(raw, &app)
	})
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepo) List(key string) ([]*applications.Application, error) {
	key = strings.ToLower(key)
	apps := make([]*applications.Application, 0)
	err := r.db.View(func(tx *bbolt.Tx) error {
		// Bucket iteration is already ordered by id.
		return tx.Bucket(applicationBucket).ForEach(func(_, raw []byte) error {
			var app applications.Application
			if err := json.Unmarshal(raw, &app); err != nil {
				return err
			}
			if key != "" && !strings.Contains(strings.ToLower(app.Name), key) {
				return nil
			}
			apps = append(apps, &app)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepo) Delete(id string) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(applicationBucket)
		if bucket.Get([]byte(id)) == nil {
			return werrors.NotFound("application", id)
		}
		return bucket.Delete([]byte(id))
	})
}
