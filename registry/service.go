// Package registry implements the application registry: CRUD and listing
// over registered applications, guarded by the authorization engine. Every
// operation decides before it looks anything up, so unauthorized callers can
// never learn whether a target exists.
package registry

import (
	"time"

	"github.com/pkg/errors"

	"github.com/eiasy/wolf/applications"
	"github.com/eiasy/wolf/authz"
	werrors "github.com/eiasy/wolf/internal/errors"
)

// Repos holds all repository dependencies for the registry Service.
type Repos struct {
	Applications applications.Repo
}

// Service is the application registry.
type Service struct {
	repos   Repos
	nowTime func() time.Time // nowTime function (injectable for testing)
}

// ServiceOption defines a function type to modify the Service instance.
type ServiceOption func(*Service)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ServiceOption {
	return func(s *Service) {
		s.nowTime = nowFunc
	}
}

// New initializes the registry Service with required dependencies.
func New(repos Repos, options ...ServiceOption) (*Service, error) {
	if repos.Applications == nil {
		return nil, errors.New("[registry.New] Applications repo is required")
	}

	s := &Service{
		repos:   repos,
		nowTime: time.Now,
	}

	for _, opt := range options {
		opt(s)
	}

	return s, nil
}

// Add registers a new application. The supplied secret is stored but never
// echoed back.
func (s *Service) Add(caller authz.Identity, app *applications.Application) (*applications.Application, error) {
	if authz.Decide(caller, authz.OpApplicationAdd, app.ID) != authz.Allow {
		return nil, werrors.AccessDenied(string(authz.OpApplicationAdd))
	}
	if err := app.Validate(); err != nil {
		return nil, err
	}

	now := s.nowTime().Unix()
	stored := *app
	stored.CreateTime = now
	stored.UpdateTime = now

	if err := s.repos.Applications.Create(&stored); err != nil {
		return nil, errors.Wrap(err, "[Service.Add] applications.Create")
	}
	return stored.Redacted(), nil
}

// Update replaces all mutable fields of an existing application, including
// the secret. createTime is preserved and updateTime reflects completion.
func (s *Service) Update(caller authz.Identity, app *applications.Application) (*applications.Application, error) {
	if authz.Decide(caller, authz.OpApplicationUpdate, app.ID) != authz.Allow {
		return nil, werrors.AccessDenied(string(authz.OpApplicationUpdate))
	}
	if err := app.Validate(); err != nil {
		return nil, err
	}

	stored := *app
	stored.UpdateTime = s.nowTime().Unix()

	if err := s.repos.Applications.Update(&stored); err != nil {
		return nil, errors.Wrap(err, "[Service.Update] applications.Update")
	}

	updated, err := s.repos.Applications.Get(app.ID)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Update] applications.Get")
	}
	return updated.Redacted(), nil
}

// Get returns the application without its secret.
func (s *Service) Get(caller authz.Identity, id string) (*applications.Application, error) {
	if authz.Decide(caller, authz.OpApplicationGet, id) != authz.Allow {
		return nil, werrors.AccessDenied(string(authz.OpApplicationGet))
	}

	app, err := s.repos.Applications.Get(id)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Get] applications.Get")
	}
	return app.Redacted(), nil
}

// GetSecret reveals the application's secret. Root only.
func (s *Service) GetSecret(caller authz.Identity, id string) (string, error) {
	if authz.Decide(caller, authz.OpApplicationSecret, id) != authz.Allow {
		return "", werrors.AccessDenied(string(authz.OpApplicationSecret))
	}

	app, err := s.repos.Applications.Get(id)
	if err != nil {
		return "", errors.Wrap(err, "[Service.GetSecret] applications.Get")
	}
	return app.Secret, nil
}

// List returns the summaries of applications whose name contains key,
// restricted to the caller's scope.
func (s *Service) List(caller authz.Identity, key string) ([]applications.Summary, error) {
	return s.list(caller, authz.OpApplicationList, key)
}

// ListAll returns the summaries of every application visible to the caller.
func (s *Service) ListAll(caller authz.Identity) ([]applications.Summary, error) {
	return s.list(caller, authz.OpApplicationListAll, "")
}

func (s *Service) list(caller authz.Identity, op authz.Operation, key string) ([]applications.Summary, error) {
	if authz.Decide(caller, op, "") != authz.Allow {
		return nil, werrors.AccessDenied(string(op))
	}

	apps, err := s.repos.Applications.List(key)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.list] applications.List")
	}

	summaries := make([]applications.Summary, 0, len(apps))
	for _, app := range apps {
		// The untargeted allow only grants a scope-filtered view; re-run
		// the decision per item so root sees everything and a delegated
		// admin sees only its own applications.
		if authz.Decide(caller, authz.OpApplicationGet, app.ID) != authz.Allow {
			continue
		}
		summaries = append(summaries, app.Summarize())
	}
	return summaries, nil
}

// Delete removes an application. Root only. Users scoped to the id keep the
// stale reference; it simply never matches anything again.
func (s *Service) Delete(caller authz.Identity, id string) error {
	if authz.Decide(caller, authz.OpApplicationDelete, id) != authz.Allow {
		return werrors.AccessDenied(string(authz.OpApplicationDelete))
	}

	if err := s.repos.Applications.Delete(id); err != nil {
		return errors.Wrap(err, "[Service.Delete] applications.Delete")
	}
	return nil
}

// Diagram renders a visualization of the application's grant and redirect
// configuration. Same read gate as Get.
func (s *Service) Diagram(caller authz.Identity, id string) (string, error) {
	if authz.Decide(caller, authz.OpApplicationDiagram, id) != authz.Allow {
		return "", werrors.AccessDenied(string(authz.OpApplicationDiagram))
	}

	app, err := s.repos.Applications.Get(id)
	if err != nil {
		return "", errors.Wrap(err, "[Service.Diagram] applications.Get")
	}
	return renderDiagram(app), nil
}
