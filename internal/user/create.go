// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package user

import (
	"context"
	"net/mail"
	"time"

	"inkpress/internal/access"
	"inkpress/internal/apperr"
	"inkpress/internal/models"
)

// CreateInput carries the fields for a new account. The password is not
// part of the input: it is generated server-side and returned once.
type CreateInput struct {
	Name     string
	Email    string
	RoleName string
}

// Validate checks the input shape before any collaborator is touched.
func (in CreateInput) Validate() error {
	if in.RoleName == "" {
		return apperr.Validation("role", in.RoleName, "role is empty")
	}
	if in.Email == "" {
		return apperr.Validation("email", in.Email, "email is empty")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return apperr.Validation("email", in.Email, "email is malformed")
	}
	if in.Name == "" {
		return apperr.Validation("name", in.Name, "name is empty")
	}
	return nil
}

// CreateOutput returns the new account's id and its generated plaintext
// password. This is the only point where the plaintext is observable; it is
// meant for out-of-band delivery to the account holder.
type CreateOutput struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

// Create registers a new user with a generated password and a role built
// from the given role name.
func (s *Service) Create(ctx context.Context, p access.Payload, in CreateInput) (*CreateOutput, error) {
	if err := access.CanOrFail(p, access.ActionUserCreate); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if !s.deps.Roles.IsValidRoleName(in.RoleName) {
		return nil, apperr.Validation("role", in.RoleName, "unknown role name")
	}

	taken, err := EmailExists(ctx, s.deps.Repo, in.Email)
	if err != nil {
		return nil, apperr.From(err)
	}
	if taken {
		return nil, apperr.Duplication("email", in.Email)
	}

	password, err := s.deps.Random.SecureRandomPassword(ctx)
	if err != nil {
		return nil, apperr.From(err)
	}
	hash, err := s.deps.Crypto.Hash(ctx, password)
	if err != nil {
		return nil, apperr.From(err)
	}
	id, err := s.deps.Random.RandomID(ctx)
	if err != nil {
		return nil, apperr.From(err)
	}

	u := &models.User{
		ID:           id,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         s.deps.Roles.CreateRole(in.RoleName),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.deps.Repo.Create(ctx, u); err != nil {
		return nil, apperr.From(err)
	}

	return &CreateOutput{UserID: id, Password: password}, nil
}
