// Package bolt provides BoltDB-backed implementations of the application
// and user repositories. Records are stored as JSON documents, one bucket
// per entity, keyed by the entity's unique id.
package bolt

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"
)

var (
	applicationBucket = []byte("applications")
	userBucket        = []byte("users")
)

// Store owns the BoltDB handle shared by the entity repositories.
type Store struct {
	db *bbolt.DB
}

// Open opens (creating if needed) the database file at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	store := &Store{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Applications returns the application repository view of the store.
func (s *Store) Applications() *ApplicationRepo {
	return &ApplicationRepo{db: s.db}
}

// Users returns the user repository view of the store.
func (s *Store) Users() *UserRepo {
	return &UserRepo{db: s.db}
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range [][]byte{applicationBucket, userBucket} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
}
