// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package user

import (
	"context"

	"inkpress/internal/access"
	"inkpress/internal/apperr"
)

// List returns every user as a visible projection. Requires the list-users
// capability.
func (s *Service) List(ctx context.Context, p access.Payload) ([]VisibleUser, error) {
	if err := access.CanOrFail(p, access.ActionListUsers); err != nil {
		return nil, err
	}

	users, err := s.deps.Repo.GetAll(ctx)
	if err != nil {
		return nil, apperr.From(err)
	}

	out := make([]VisibleUser, 0, len(users))
	for i := range users {
		out = append(out, s.visibleUser(&users[i]))
	}
	return out, nil
}

// GetMe returns the calling user's own visible projection.
func (s *Service) GetMe(ctx context.Context, p access.Payload) (*VisibleUser, error) {
	u, err := s.deps.Resolver.Resolve(ctx, p)
	if err != nil {
		return nil, apperr.From(err)
	}
	v := s.visibleUser(u)
	return &v, nil
}
