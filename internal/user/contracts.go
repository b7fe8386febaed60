// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package user implements the user-directory and authentication use cases:
// account creation, password changes, deletion, login/logout, listing, and
// two-factor enrollment. Authorization, hashing, randomness, session
// revocation, and persistence are all injected collaborators.
package user

import (
	"context"

	"inkpress/internal/access"
	"inkpress/internal/apperr"
	"inkpress/internal/models"
)

// Repository is the persistence contract for users. Lookups return
// (nil, nil) when no row matches; email uniqueness is additionally enforced
// by the backing store.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id string) error
}

// CryptoService hashes passwords and verifies plaintext against a hash.
type CryptoService interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Verify(ctx context.Context, plaintext, hash string) (bool, error)
}

// RandomService generates identifiers and initial passwords.
type RandomService interface {
	SecureRandomPassword(ctx context.Context) (string, error)
	RandomID(ctx context.Context) (string, error)
}

// Authorizer checks a plaintext password against a resolved user.
type Authorizer interface {
	Authorize(ctx context.Context, u *models.User, password string) (bool, error)
}

// PasswordValidator checks the calling identity's own password.
type PasswordValidator interface {
	Validate(ctx context.Context, p access.Payload, password string) (bool, error)
}

// PayloadResolver loads the full User behind an authenticated payload.
type PayloadResolver interface {
	Resolve(ctx context.Context, p access.Payload) (*models.User, error)
}

// Revoker invalidates active sessions, either the calling payload's own or
// every session belonging to a user id.
type Revoker interface {
	RevokePayload(ctx context.Context, p access.Payload) error
	RevokeAllForUser(ctx context.Context, id string) error
}

// TwoFactorService issues and verifies TOTP enrollment secrets.
type TwoFactorService interface {
	// GenerateSecret returns a new secret and its provisioning URL for the
	// given account name.
	GenerateSecret(ctx context.Context, account string) (secret, url string, err error)
	// VerifyCode reports whether code is currently valid for secret.
	VerifyCode(code, secret string) bool
}

// GetByIDOrFail resolves a user by id, classifying a miss as NotFound.
func GetByIDOrFail(ctx context.Context, r Repository, id string) (*models.User, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.From(err)
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	return u, nil
}

// GetByEmailOrFail resolves a user by email, classifying a miss as NotFound.
func GetByEmailOrFail(ctx context.Context, r Repository, email string) (*models.User, error) {
	u, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperr.From(err)
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	return u, nil
}

// EmailExists reports whether an account with the given email exists.
func EmailExists(ctx context.Context, r Repository, email string) (bool, error) {
	u, err := r.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

// ValidateOrFail checks the caller's password and classifies a mismatch as
// BadRequest. All password-validation failures in this package use this one
// kind and message.
func ValidateOrFail(ctx context.Context, v PasswordValidator, p access.Payload, password string) error {
	ok, err := v.Validate(ctx, p, password)
	if err != nil {
		return apperr.From(err)
	}
	if !ok {
		return apperr.BadRequest("invalid password")
	}
	return nil
}
