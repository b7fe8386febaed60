// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package crypto

import (
	"context"
	"fmt"

	"github.com/pquerna/otp/totp"
)

// TOTPService issues and validates time-based one-time codes.
type TOTPService struct {
	issuer string
}

// NewTOTPService returns a TOTPService. The issuer shows up in
// authenticator apps next to the account name.
func NewTOTPService(issuer string) *TOTPService {
	return &TOTPService{issuer: issuer}
}

// GenerateSecret creates a new TOTP key for account and returns the shared
// secret together with its otpauth:// provisioning URL.
func (s *TOTPService) GenerateSecret(_ context.Context, account string) (string, string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.issuer,
		AccountName: account,
	})
	if err != nil {
		return "", "", fmt.Errorf("generate totp key: %w", err)
	}
	return key.Secret(), key.URL(), nil
}

// VerifyCode reports whether code is currently valid for secret.
func (s *TOTPService) VerifyCode(code, secret string) bool {
	return totp.Validate(code, secret)
}
