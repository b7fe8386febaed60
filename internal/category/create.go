// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package category

import (
	"context"
	"time"

	gosslug "github.com/gosimple/slug"

	"inkpress/internal/access"
	"inkpress/internal/apperr"
	"inkpress/internal/models"
)

// CreateInput carries the fields for a new category. Slug is optional; when
// absent a URL-safe slug is derived from Name.
type CreateInput struct {
	Name        string
	Slug        *string
	Description string
	ParentID    *string
}

// CreateOutput is the projection of the category that was persisted.
type CreateOutput struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	ParentID    *string `json:"parent_id"`
	CreatedAt   string  `json:"created_at"`
}

// Create persists a new category after checking the caller's capability,
// slug uniqueness, and parent existence.
func (s *Service) Create(ctx context.Context, p access.Payload, in CreateInput) (*CreateOutput, error) {
	if err := access.CanOrFail(p, access.ActionCategoryCreate); err != nil {
		return nil, err
	}

	slug := gosslug.Make(in.Name)
	if in.Slug != nil {
		slug = *in.Slug
	}

	existing, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, apperr.From(err)
	}
	if existing != nil {
		return nil, apperr.Duplication("slug", slug)
	}

	var parentID *models.CategoryID
	if in.ParentID != nil {
		parent, err := s.repo.GetByID(ctx, models.CategoryID(*in.ParentID))
		if err != nil {
			return nil, apperr.From(err)
		}
		if parent == nil {
			return nil, apperr.NotFound("parent id not found")
		}
		parentID = &parent.ID
	}

	id, err := s.ids.RandomID(ctx)
	if err != nil {
		return nil, apperr.From(err)
	}

	c := &models.Category{
		ID:          models.CategoryID(id),
		Name:        in.Name,
		Slug:        slug,
		Description: in.Description,
		ParentID:    parentID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, apperr.From(err)
	}

	return &CreateOutput{
		ID:          c.ID.String(),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		ParentID:    in.ParentID,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}, nil
}
