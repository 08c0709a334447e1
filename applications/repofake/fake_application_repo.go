package fakeapplicationrepo

import (
	"sort"
	"strings"
	"sync"

	"github.com/eiasy/wolf/applications"
	werrors "github.com/eiasy/wolf/internal/errors"
)

var _ applications.Repo = (*FakeApplicationRepo)(nil)

type FakeApplicationRepo struct {
	apps map[string]*applications.Application
	lock sync.RWMutex
}

func NewFakeApplicationRepo() *FakeApplicationRepo {
	return &FakeApplicationRepo{
		apps: make(map[string]*applications.Application),
	}
}

func (r *FakeApplicationRepo) Create(app *applications.Application) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.apps[app.ID]; ok {
		return werrors.Duplicate("application", app.ID)
	}
	stored := *app
	r.apps[app.ID] = &stored
	return nil
}

func (r *FakeApplicationRepo) Update(app *applications.Application) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	existing, ok := r.apps[app.ID]
	if !ok {
		return werrors.NotFound("application", app.ID)
	}
	stored := *app
	stored.CreateTime = existing.CreateTime
	r.apps[app.ID] = &stored
	return nil
}

func (r *FakeApplicationRepo) Get(id string) (*applications.Application, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, werrors.NotFound("application", id)
	}
	copied := *app
	return &copied, nil
}

func (r *FakeApplicationRepo) List(key string) ([]*applications.Application, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	key = strings.ToLower(key)
	apps := make([]*applications.Application, 0)
	for _, a := range r.apps {
		if key != "" && !strings.Contains(strings.ToLower(a.Name), key) {
			continue
		}
		copied := *a
		apps = append(apps, &copied)
	}

	sort.Slice(apps, func(i, j int) bool {
		return apps[i].ID < apps[j].ID
	})
	return apps, nil
}

func (r *FakeApplicationRepo) Delete(id string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.apps[id]; !ok {
		return werrors.NotFound("application", id)
	}
	delete(r.apps, id)
	return nil
}
