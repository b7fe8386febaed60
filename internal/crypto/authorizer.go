// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package crypto

import (
	"context"

	"inkpress/internal/access"
	"inkpress/internal/models"
)

type verifier interface {
	Verify(ctx context.Context, plaintext, hash string) (bool, error)
}

type userResolver interface {
	Resolve(ctx context.Context, p access.Payload) (*models.User, error)
}

// Authorizer checks a password against a user's stored hash.
type Authorizer struct {
	crypto verifier
}

// NewAuthorizer returns an Authorizer backed by the given hash verifier.
func NewAuthorizer(crypto verifier) *Authorizer {
	return &Authorizer{crypto: crypto}
}

// Authorize reports whether password matches the user's password hash.
func (a *Authorizer) Authorize(ctx context.Context, u *models.User, password string) (bool, error) {
	return a.crypto.Verify(ctx, password, u.PasswordHash)
}

// PasswordValidator checks a password against the account behind an
// authenticated payload.
type PasswordValidator struct {
	resolver   userResolver
	authorizer *Authorizer
}

// NewPasswordValidator returns a PasswordValidator.
func NewPasswordValidator(resolver userResolver, authorizer *Authorizer) *PasswordValidator {
	return &PasswordValidator{resolver: resolver, authorizer: authorizer}
}

// Validate resolves the payload to its user record and checks the password
// against it.
func (v *PasswordValidator) Validate(ctx context.Context, p access.Payload, password string) (bool, error) {
	u, err := v.resolver.Resolve(ctx, p)
	if err != nil {
		return false, err
	}
	return v.authorizer.Authorize(ctx, u, password)
}
