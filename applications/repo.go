package applications

type Repo interface {
	// Create inserts a new application. Exactly one of any set of concurrent
	// creations with the same id succeeds; the rest fail with a duplicate error.
	Create(app *Application) error
	// Update replaces the mutable fields of an existing application,
	// preserving the stored createTime. Fails with not-found if absent.
	Update(app *Application) error
	Get(id string) (*Application, error)
	// List returns applications whose name contains key (case-insensitive);
	// an empty key matches everything. Results are ordered by id.
	List(key string) ([]*Application, error)
	Delete(id string) error
}
