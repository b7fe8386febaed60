// doubles_test.go provides the in-memory fakes and spies used across the
// category interactor tests.
package category

import (
	"context"
	"errors"
	"sync"
	"testing"

	"inkpress/internal/apperr"
	"inkpress/internal/models"
)

// assertAs fails the test when err is not a classified application error.
func assertAs(t *testing.T, err error, target **apperr.Error) bool {
	t.Helper()
	if !errors.As(err, target) {
		t.Fatalf("expected a classified error, got %v", err)
		return false
	}
	return true
}

// fakeRepo is an in-memory Repository. When err is set every call fails
// with it, simulating a broken collaborator.
type fakeRepo struct {
	mu         sync.Mutex
	categories []models.Category
	err        error
}

func newFakeRepo(seed ...models.Category) *fakeRepo {
	return &fakeRepo{categories: seed}
}

func (r *fakeRepo) GetByID(_ context.Context, id models.CategoryID) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.categories {
		if r.categories[i].ID == id {
			c := r.categories[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) GetBySlug(_ context.Context, slug string) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.categories {
		if r.categories[i].Slug == slug {
			c := r.categories[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) GetAll(_ context.Context) ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return append([]models.Category(nil), r.categories...), nil
}

func (r *fakeRepo) Create(_ context.Context, c *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.categories = append(r.categories, *c)
	return nil
}

func (r *fakeRepo) Update(_ context.Context, c *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for i := range r.categories {
		if r.categories[i].ID == c.ID {
			r.categories[i] = *c
			return nil
		}
	}
	return nil
}

func (r *fakeRepo) all() []models.Category {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Category(nil), r.categories...)
}

func (r *fakeRepo) byID(id models.CategoryID) *models.Category {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.categories {
		if r.categories[i].ID == id {
			c := r.categories[i]
			return &c
		}
	}
	return nil
}

// deleterSpy records DeletionUtility calls.
type deleterSpy struct {
	mu       sync.Mutex
	deleted  []models.CategoryID
	replaced [][2]models.CategoryID
}

func (d *deleterSpy) DeleteRecursive(_ context.Context, id models.CategoryID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.deleted = append(d.deleted, id)
	return nil
}

func (d *deleterSpy) ReplaceWith(_ context.Context, source, replacement models.CategoryID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.replaced = append(d.replaced, [2]models.CategoryID{source, replacement})
	return nil
}

// metaStub returns a fixed meta value, or (nil, nil) when meta is nil.
type metaStub struct {
	meta *models.CategoryMeta
}

func (m *metaStub) GetMeta(context.Context, models.CategoryID) (*models.CategoryMeta, error) {
	return m.meta, nil
}

const generatedID = "generated-id"

// idStub mints the fixed generatedID and counts invocations.
type idStub struct {
	mu    sync.Mutex
	calls int
}

func (g *idStub) RandomID(context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	return generatedID, nil
}
