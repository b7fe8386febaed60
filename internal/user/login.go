// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package user

import (
	"context"

	"inkpress/internal/access"
	"inkpress/internal/apperr"
)

// LoginInput carries the submitted credentials.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput identifies the authenticated user and their role name, and
// tells the client whether 2FA enrollment is still pending.
type LoginOutput struct {
	UserID              string `json:"user_id"`
	Role                string `json:"role"`
	NeedsTwoFactorSetup bool   `json:"needs_2fa_setup"`
}

// Login checks the credentials against the directory. A wrong email and a
// wrong password yield the identical BadRequest so the response carries no
// signal about account existence.
func (s *Service) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	u, err := s.deps.Repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperr.From(err)
	}
	if u == nil {
		return nil, apperr.BadRequest("invalid credentials")
	}

	ok, err := s.deps.Authorizer.Authorize(ctx, u, in.Password)
	if err != nil {
		return nil, apperr.From(err)
	}
	if !ok {
		return nil, apperr.BadRequest("invalid credentials")
	}

	return &LoginOutput{
		UserID:              u.ID,
		Role:                s.deps.RoleNames.NameRole(u.Role),
		NeedsTwoFactorSetup: u.NeedsTwoFactorSetup(),
	}, nil
}

// Logout revokes the calling payload's active session.
func (s *Service) Logout(ctx context.Context, p access.Payload) error {
	if err := s.deps.Revoker.RevokePayload(ctx, p); err != nil {
		return apperr.From(err)
	}
	return nil
}
