// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package category

import (
	"time"

	"inkpress/internal/models"
)

// Service bundles the category use cases. It is stateless and safe for
// concurrent use; collaborators are injected once and never swapped.
type Service struct {
	repo    Repository
	deleter DeletionUtility
	meta    MetaCalculator
	ids     IDGenerator
}

// NewService creates a category Service with its collaborators.
func NewService(repo Repository, deleter DeletionUtility, meta MetaCalculator, ids IDGenerator) *Service {
	return &Service{
		repo:    repo,
		deleter: deleter,
		meta:    meta,
		ids:     ids,
	}
}

// VisibleCategory is the externally safe read projection of a category.
type VisibleCategory struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	ParentID    *string `json:"parent_id"`
	CreatedAt   string  `json:"created_at"`
}

func visibleCategory(c models.Category) VisibleCategory {
	var parent *string
	if c.ParentID != nil {
		s := c.ParentID.String()
		parent = &s
	}
	return VisibleCategory{
		ID:          c.ID.String(),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		ParentID:    parent,
		CreatedAt:   c.CreatedAt.Format(time.RFC1123Z),
	}
}
