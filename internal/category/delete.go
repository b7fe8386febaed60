// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package category

import (
	"context"

	"inkpress/internal/access"
	"inkpress/internal/apperr"
	"inkpress/internal/models"
)

// DeleteRecursive removes a category and its whole subtree. The deletion
// utility owns the descendant semantics; this use case only authorizes the
// caller and confirms the root exists.
func (s *Service) DeleteRecursive(ctx context.Context, p access.Payload, id string) error {
	if err := access.CanOrFail(p, access.ActionCategoryDeleteRecursive); err != nil {
		return err
	}

	c, err := GetByIDOrFail(ctx, s.repo, models.CategoryID(id))
	if err != nil {
		return err
	}

	if err := s.deleter.DeleteRecursive(ctx, c.ID); err != nil {
		return apperr.From(err)
	}
	return nil
}

// ReplaceInput names the category to remove and the one that absorbs its
// references.
type ReplaceInput struct {
	ID            string
	ReplacementID string
}

// Replace reassigns everything referencing the source category to the
// replacement, then removes the source. Both categories must exist.
func (s *Service) Replace(ctx context.Context, p access.Payload, in ReplaceInput) error {
	if err := access.CanOrFail(p, access.ActionCategoryReplace); err != nil {
		return err
	}

	source, err := GetByIDOrFail(ctx, s.repo, models.CategoryID(in.ID))
	if err != nil {
		return err
	}
	replacement, err := GetByIDOrFail(ctx, s.repo, models.CategoryID(in.ReplacementID))
	if err != nil {
		return err
	}

	if err := s.deleter.ReplaceWith(ctx, source.ID, replacement.ID); err != nil {
		return apperr.From(err)
	}
	return nil
}
