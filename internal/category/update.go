// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package category

import (
	"context"

	gosslug "github.com/gosimple/slug"

	"inkpress/internal/access"
	"inkpress/internal/apperr"
	"inkpress/internal/models"
)

// UpdateInput carries a full category rewrite: name, description, parent,
// and optionally an explicit slug.
type UpdateInput struct {
	ID          string
	Name        string
	Description string
	ParentID    *string
	Slug        *string
}

// Validate checks the input shape before any collaborator is touched.
func (in UpdateInput) Validate() error {
	if in.ParentID != nil && *in.ParentID == in.ID {
		return apperr.Validation("parent_id", *in.ParentID, "circular parent id")
	}
	if in.Name == "" {
		return apperr.Validation("name", in.Name, "name is empty")
	}
	if in.Slug != nil && *in.Slug == "" {
		return apperr.Validation("slug", *in.Slug, "slug is empty")
	}
	if in.ID == "" {
		return apperr.Validation("id", in.ID, "id is empty")
	}
	return nil
}

// Update rewrites an existing category. The new parent must exist and must
// not create a cycle anywhere in its ancestor chain; the effective slug
// must not belong to any other category.
func (s *Service) Update(ctx context.Context, p access.Payload, in UpdateInput) error {
	if err := access.CanOrFail(p, access.ActionCategoryUpdate); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}

	id := models.CategoryID(in.ID)

	var parentID *models.CategoryID
	if in.ParentID != nil {
		parent, err := GetByIDOrFail(ctx, s.repo, models.CategoryID(*in.ParentID))
		if err != nil {
			return err
		}
		parentID = &parent.ID
	}

	c, err := GetByIDOrFail(ctx, s.repo, id)
	if err != nil {
		return err
	}

	if parentID != nil {
		if err := s.ensureNoCycle(ctx, id, *parentID, *in.ParentID); err != nil {
			return err
		}
	}

	slug := gosslug.Make(in.Name)
	if in.Slug != nil {
		slug = *in.Slug
	}

	owner, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return apperr.From(err)
	}
	if owner != nil && owner.ID != id {
		return apperr.Duplication("slug", slug)
	}

	c.Name = in.Name
	c.Slug = slug
	c.Description = in.Description
	c.ParentID = parentID
	if err := s.repo.Update(ctx, c); err != nil {
		return apperr.From(err)
	}
	return nil
}

// ensureNoCycle walks the ancestor chain starting at the proposed parent
// and rejects the update if the chain reaches the category being updated.
// A visited set guards against pre-existing corrupt chains.
func (s *Service) ensureNoCycle(ctx context.Context, id, parent models.CategoryID, rawParent string) error {
	seen := map[models.CategoryID]bool{}
	current := parent
	for {
		if current == id {
			return apperr.Validation("parent_id", rawParent, "circular parent id")
		}
		if seen[current] {
			return nil
		}
		seen[current] = true

		ancestor, err := s.repo.GetByID(ctx, current)
		if err != nil {
			return apperr.From(err)
		}
		if ancestor == nil || ancestor.ParentID == nil {
			return nil
		}
		current = *ancestor.ParentID
	}
}
