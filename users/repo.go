package users

type Repo interface {
	// Create inserts a new user. Concurrent creations with the same username
	// yield exactly one success; the rest fail with a duplicate error.
	Create(user *User) error
	Get(username string) (*User, error)
	Delete(username string) error
}
