// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package user

import (
	"context"

	"inkpress/internal/access"
	"inkpress/internal/apperr"
)

// ChangeMyPasswordInput carries the caller's current and replacement
// passwords.
type ChangeMyPasswordInput struct {
	OldPassword string
	NewPassword string
}

// Validate checks the input shape. Password values are masked in the
// validation error.
func (in ChangeMyPasswordInput) Validate() error {
	if in.NewPassword == "" {
		return apperr.Validation("new_password", "*****", "new password is empty")
	}
	return nil
}

// ChangeMyPassword replaces the caller's own password after verifying the
// old one. Self-service: no capability check applies.
func (s *Service) ChangeMyPassword(ctx context.Context, p access.Payload, in ChangeMyPasswordInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	u, err := s.deps.Resolver.Resolve(ctx, p)
	if err != nil {
		return apperr.From(err)
	}

	ok, err := s.deps.Authorizer.Authorize(ctx, u, in.OldPassword)
	if err != nil {
		return apperr.From(err)
	}
	if !ok {
		return apperr.BadRequest("invalid password")
	}

	hash, err := s.deps.Crypto.Hash(ctx, in.NewPassword)
	if err != nil {
		return apperr.From(err)
	}
	u.PasswordHash = hash
	if err := s.deps.Repo.Update(ctx, u); err != nil {
		return apperr.From(err)
	}
	return nil
}

// ChangeUsersPasswordInput names the target user and carries the caller's
// own password as confirmation.
type ChangeUsersPasswordInput struct {
	UserID      string
	NewPassword string
	Password    string
}

// ChangeUsersPassword sets a new password on another account. The caller
// must hold the change-others-password capability and confirm their own
// password.
func (s *Service) ChangeUsersPassword(ctx context.Context, p access.Payload, in ChangeUsersPasswordInput) error {
	if err := access.CanOrFail(p, access.ActionChangeOthersPassword); err != nil {
		return err
	}
	if err := ValidateOrFail(ctx, s.deps.Passwords, p, in.Password); err != nil {
		return err
	}

	target, err := s.deps.Repo.GetByID(ctx, in.UserID)
	if err != nil {
		return apperr.From(err)
	}
	if target == nil {
		return apperr.NotFound("User not found")
	}

	hash, err := s.deps.Crypto.Hash(ctx, in.NewPassword)
	if err != nil {
		return apperr.From(err)
	}
	target.PasswordHash = hash
	if err := s.deps.Repo.Update(ctx, target); err != nil {
		return apperr.From(err)
	}
	return nil
}
