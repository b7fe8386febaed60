// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package category implements the category-tree use cases: creating,
// updating, inspecting, listing, recursively deleting, and replacing
// categories. Each use case is one Service method that authorizes,
// validates, checks the tree invariants, and delegates persistence to the
// injected collaborators.
package category

import (
	"context"
	"fmt"

	"inkpress/internal/apperr"
	"inkpress/internal/models"
)

// Repository is the persistence contract for categories. Lookups return
// (nil, nil) when no row matches; uniqueness of slugs is additionally
// enforced by the backing store, since the pre-checks in this package are
// check-then-act.
type Repository interface {
	GetByID(ctx context.Context, id models.CategoryID) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, c *models.Category) error
}

// DeletionUtility removes whole subtrees or merges one category into
// another. Descendant handling is the utility's contract; callers only
// guarantee that the referenced categories exist.
type DeletionUtility interface {
	DeleteRecursive(ctx context.Context, id models.CategoryID) error
	ReplaceWith(ctx context.Context, source, replacement models.CategoryID) error
}

// MetaCalculator produces the aggregate counts for one category. Returns
// (nil, nil) when no meta is available for the id.
type MetaCalculator interface {
	GetMeta(ctx context.Context, id models.CategoryID) (*models.CategoryMeta, error)
}

// IDGenerator mints identifiers for new categories.
type IDGenerator interface {
	RandomID(ctx context.Context) (string, error)
}

// GetByIDOrFail resolves a category by id, classifying a miss as NotFound.
func GetByIDOrFail(ctx context.Context, r Repository, id models.CategoryID) (*models.Category, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.From(err)
	}
	if c == nil {
		return nil, apperr.NotFound(fmt.Sprintf("Category with id %s not found", id))
	}
	return c, nil
}

// GetBySlugOrFail resolves a category by slug, classifying a miss as NotFound.
func GetBySlugOrFail(ctx context.Context, r Repository, slug string) (*models.Category, error) {
	c, err := r.GetBySlug(ctx, slug)
	if err != nil {
		return nil, apperr.From(err)
	}
	if c == nil {
		return nil, apperr.NotFound(fmt.Sprintf("Category with slug %s not found", slug))
	}
	return c, nil
}
