// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package user

import (
	"context"

	"inkpress/internal/access"
	"inkpress/internal/apperr"
)

// DeleteInput names the account to remove and carries the caller's own
// password as confirmation.
type DeleteInput struct {
	ID       string
	Password string
}

// Delete removes a user account. Every active session of the target is
// revoked before the repository delete, so a deleted account can never keep
// an authenticated session.
func (s *Service) Delete(ctx context.Context, p access.Payload, in DeleteInput) error {
	if err := access.CanOrFail(p, access.ActionUserDelete); err != nil {
		return err
	}
	if err := ValidateOrFail(ctx, s.deps.Passwords, p, in.Password); err != nil {
		return err
	}

	u, err := GetByIDOrFail(ctx, s.deps.Repo, in.ID)
	if err != nil {
		return err
	}

	if err := s.deps.Revoker.RevokeAllForUser(ctx, u.ID); err != nil {
		return apperr.From(err)
	}
	if err := s.deps.Repo.Delete(ctx, u.ID); err != nil {
		return apperr.From(err)
	}
	return nil
}
