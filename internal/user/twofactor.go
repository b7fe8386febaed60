// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package user

import (
	"context"

	"inkpress/internal/access"
	"inkpress/internal/apperr"
)

// TwoFactorSetupOutput carries the enrollment secret and its provisioning
// URL for the authenticator app.
type TwoFactorSetupOutput struct {
	Secret string `json:"secret"`
	URL    string `json:"url"`
}

// SetupTwoFactor starts 2FA enrollment for the calling user: a fresh TOTP
// secret is generated and stored, replacing any earlier unconfirmed one.
// Enrollment stays incomplete until ConfirmTwoFactor succeeds.
func (s *Service) SetupTwoFactor(ctx context.Context, p access.Payload) (*TwoFactorSetupOutput, error) {
	u, err := s.deps.Resolver.Resolve(ctx, p)
	if err != nil {
		return nil, apperr.From(err)
	}

	secret, url, err := s.deps.TwoFactor.GenerateSecret(ctx, u.Email)
	if err != nil {
		return nil, apperr.From(err)
	}

	u.TOTPSecret = &secret
	u.TwoFactorEnabled = false
	if err := s.deps.Repo.Update(ctx, u); err != nil {
		return nil, apperr.From(err)
	}

	return &TwoFactorSetupOutput{Secret: secret, URL: url}, nil
}

// ConfirmTwoFactorInput carries the code from the authenticator app.
type ConfirmTwoFactorInput struct {
	Code string
}

// ConfirmTwoFactor completes enrollment by verifying a code against the
// stored secret.
func (s *Service) ConfirmTwoFactor(ctx context.Context, p access.Payload, in ConfirmTwoFactorInput) error {
	u, err := s.deps.Resolver.Resolve(ctx, p)
	if err != nil {
		return apperr.From(err)
	}

	if u.TOTPSecret == nil {
		return apperr.BadRequest("two-factor setup not started")
	}
	if !s.deps.TwoFactor.VerifyCode(in.Code, *u.TOTPSecret) {
		return apperr.BadRequest("invalid code")
	}

	u.TwoFactorEnabled = true
	if err := s.deps.Repo.Update(ctx, u); err != nil {
		return apperr.From(err)
	}
	return nil
}
