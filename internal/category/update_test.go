package category

import (
	"context"
	"testing"
	"time"

	"inkpress/internal/access"
	"inkpress/internal/access/accesstest"
	"inkpress/internal/apperr"
	"inkpress/internal/models"
)

func anotherCategory() models.Category {
	return models.Category{
		ID:        "another",
		Name:      "another slug",
		Slug:      "another-slug",
		CreatedAt: time.Now().UTC(),
	}
}

func updateSetup() (*Service, *fakeRepo) {
	repo := newFakeRepo(existingCategory(), anotherCategory())
	svc := NewService(repo, &deleterSpy{}, &metaStub{}, &idStub{})
	return svc, repo
}

func validUpdateInput() UpdateInput {
	return UpdateInput{
		ID:          "existing",
		Name:        "New Name",
		Description: "new description",
		Slug:        str("new-slug"),
	}
}

func TestUpdateRejectsDeniedPayload(t *testing.T) {
	svc, _ := updateSetup()
	p := accesstest.Denied("u1")

	err := svc.Update(context.Background(), p, validUpdateInput())
	if !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("got %v, want forbidden", err)
	}
	called := p.Called()
	if len(called) != 1 || called[0] != access.ActionCategoryUpdate {
		t.Errorf("actions checked: got %v, want [category-update]", called)
	}
}

func TestUpdateValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*UpdateInput)
		wantKey string
	}{
		{"self parent", func(in *UpdateInput) { in.ParentID = str(in.ID) }, "parent_id"},
		{"self parent wins over empty name", func(in *UpdateInput) {
			in.ParentID = str(in.ID)
			in.Name = ""
		}, "parent_id"},
		{"empty name", func(in *UpdateInput) { in.Name = "" }, "name"},
		{"empty slug", func(in *UpdateInput) { in.Slug = str("") }, "slug"},
		{"empty id", func(in *UpdateInput) { in.ID = "" }, "id"},
	}

	svc, _ := updateSetup()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validUpdateInput()
			tt.mutate(&in)

			err := svc.Update(context.Background(), accesstest.Allowed("u1"), in)

			var appErr *apperr.Error
			if assertAs(t, err, &appErr) {
				if appErr.Kind != apperr.KindValidation {
					t.Fatalf("kind: got %s, want validation", appErr.Kind)
				}
				if appErr.Key != tt.wantKey {
					t.Errorf("key: got %q, want %q", appErr.Key, tt.wantKey)
				}
			}
		})
	}
}

func TestUpdateRejectsMissingTarget(t *testing.T) {
	svc, _ := updateSetup()

	in := validUpdateInput()
	in.ID = "missing"

	err := svc.Update(context.Background(), accesstest.Allowed("u1"), in)
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("got %v, want not_found", err)
	}
}

func TestUpdateRejectsMissingParent(t *testing.T) {
	svc, repo := updateSetup()

	in := validUpdateInput()
	in.ParentID = str("missing")

	err := svc.Update(context.Background(), accesstest.Allowed("u1"), in)
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("got %v, want not_found", err)
	}
	if got := repo.byID("existing"); got.Name != existingCategory().Name {
		t.Error("target must be left untouched on failure")
	}
}

func TestUpdateRejectsSlugOwnedByAnother(t *testing.T) {
	svc, _ := updateSetup()

	in := validUpdateInput()
	in.Slug = str(anotherCategory().Slug)

	err := svc.Update(context.Background(), accesstest.Allowed("u1"), in)
	var appErr *apperr.Error
	if assertAs(t, err, &appErr) {
		if appErr.Kind != apperr.KindDuplication || appErr.Key != "slug" {
			t.Fatalf("got %v, want duplication on slug", err)
		}
	}
}

func TestUpdateRejectsDerivedSlugOwnedByAnother(t *testing.T) {
	svc, _ := updateSetup()

	in := validUpdateInput()
	in.Slug = nil
	in.Name = "another slug" // derives to another-slug

	err := svc.Update(context.Background(), accesstest.Allowed("u1"), in)
	if !apperr.IsKind(err, apperr.KindDuplication) {
		t.Fatalf("got %v, want duplication", err)
	}
}

func TestUpdateKeepingOwnSlugIsNotADuplicate(t *testing.T) {
	svc, repo := updateSetup()

	in := validUpdateInput()
	in.Slug = str(existingCategory().Slug)

	if err := svc.Update(context.Background(), accesstest.Allowed("u1"), in); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := repo.byID("existing"); got.Slug != existingCategory().Slug {
		t.Errorf("slug: got %q", got.Slug)
	}
}

func TestUpdateAppliesAllFields(t *testing.T) {
	svc, repo := updateSetup()

	in := validUpdateInput()
	in.ParentID = str("another")

	if err := svc.Update(context.Background(), accesstest.Allowed("u1"), in); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got := repo.byID("existing")
	if got.Name != in.Name || got.Description != in.Description || got.Slug != *in.Slug {
		t.Errorf("fields not applied: %+v", got)
	}
	if got.ParentID == nil || *got.ParentID != "another" {
		t.Errorf("parent not applied: %v", got.ParentID)
	}
}

func TestUpdateRejectsAncestorCycle(t *testing.T) {
	parent := models.CategoryID("a")
	child := models.CategoryID("b")
	grandchild := models.CategoryID("c")
	repo := newFakeRepo(
		models.Category{ID: parent, Name: "a", Slug: "a"},
		models.Category{ID: child, Name: "b", Slug: "b", ParentID: &parent},
		models.Category{ID: grandchild, Name: "c", Slug: "c", ParentID: &child},
	)
	svc := NewService(repo, &deleterSpy{}, &metaStub{}, &idStub{})

	// Re-parenting "a" under its own grandchild would close a cycle.
	in := UpdateInput{ID: "a", Name: "a", Slug: str("a"), ParentID: str("c")}

	err := svc.Update(context.Background(), accesstest.Allowed("u1"), in)
	var appErr *apperr.Error
	if assertAs(t, err, &appErr) {
		if appErr.Kind != apperr.KindValidation || appErr.Key != "parent_id" {
			t.Fatalf("got %v, want validation on parent_id", err)
		}
	}
}
