// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package user

import (
	"inkpress/internal/access"
	"inkpress/internal/models"
)

// Deps bundles the collaborators of the user Service. All fields are
// required except TwoFactor, which is only needed when two-factor
// enrollment is enabled.
type Deps struct {
	Repo       Repository
	Crypto     CryptoService
	Random     RandomService
	Authorizer Authorizer
	Passwords  PasswordValidator
	Resolver   PayloadResolver
	Revoker    Revoker
	Roles      access.RoleFactory
	RoleNames  access.RoleNamer
	TwoFactor  TwoFactorService
}

// Service bundles the user and auth use cases. It is stateless and safe
// for concurrent use; collaborators are injected once and never swapped.
type Service struct {
	deps Deps
}

// NewService creates a user Service with its collaborators.
func NewService(deps Deps) *Service {
	return &Service{deps: deps}
}

// VisibleUser is the externally safe read projection of a user: the
// password hash and 2FA secret are never part of it.
type VisibleUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (s *Service) visibleUser(u *models.User) VisibleUser {
	return VisibleUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  s.deps.RoleNames.NameRole(u.Role),
	}
}
