// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package category

import (
	"context"

	"inkpress/internal/apperr"
	"inkpress/internal/models"
)

// InfoOutput merges a category's fields with its computed meta counts.
type InfoOutput struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Slug             string  `json:"slug"`
	Description      string  `json:"description"`
	ParentID         *string `json:"parent_id"`
	DirectPostsCount int     `json:"direct_posts_count"`
	ChildrenCount    int     `json:"children_count"`
	TotalPostCount   int     `json:"total_post_count"`
}

// Info returns a category together with its aggregate counts. Missing meta
// for an existing category is a NotFound condition.
func (s *Service) Info(ctx context.Context, id string) (*InfoOutput, error) {
	c, err := GetByIDOrFail(ctx, s.repo, models.CategoryID(id))
	if err != nil {
		return nil, err
	}

	meta, err := s.meta.GetMeta(ctx, c.ID)
	if err != nil {
		return nil, apperr.From(err)
	}
	if meta == nil {
		return nil, apperr.NotFound("Category meta not found")
	}

	var parent *string
	if c.ParentID != nil {
		p := c.ParentID.String()
		parent = &p
	}
	return &InfoOutput{
		ID:               c.ID.String(),
		Name:             c.Name,
		Slug:             c.Slug,
		Description:      c.Description,
		ParentID:         parent,
		DirectPostsCount: meta.DirectPostsCount,
		ChildrenCount:    meta.ChildrenCount,
		TotalPostCount:   meta.TotalPostCount,
	}, nil
}
