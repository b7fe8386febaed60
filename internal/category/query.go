// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package category

import (
	"context"

	"inkpress/internal/apperr"
)

// All returns every category as a visible projection. The listing is
// public: no capability check applies.
func (s *Service) All(ctx context.Context) ([]VisibleCategory, error) {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperr.From(err)
	}

	out := make([]VisibleCategory, 0, len(categories))
	for _, c := range categories {
		out = append(out, visibleCategory(c))
	}
	return out, nil
}

// BySlug returns the category with the given slug, or nil when no category
// matches. A miss is not an error.
func (s *Service) BySlug(ctx context.Context, slug string) (*VisibleCategory, error) {
	c, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, apperr.From(err)
	}
	if c == nil {
		return nil, nil
	}
	v := visibleCategory(*c)
	return &v, nil
}
