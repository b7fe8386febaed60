// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package session

import (
	"context"

	"inkpress/internal/access"
	"inkpress/internal/apperr"
	"inkpress/internal/models"
)

type userSource interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Resolver loads the full user record behind an authenticated payload. A
// payload whose user no longer exists resolves to NotFound, which happens
// when the account was deleted while a session was still live.
type Resolver struct {
	users userSource
}

// NewResolver returns a Resolver reading from the given user source.
func NewResolver(users userSource) *Resolver {
	return &Resolver{users: users}
}

// Resolve returns the user identified by the payload.
func (r *Resolver) Resolve(ctx context.Context, p access.Payload) (*models.User, error) {
	u, err := r.users.GetByID(ctx, p.UserID())
	if err != nil {
		return nil, apperr.From(err)
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	return u, nil
}
