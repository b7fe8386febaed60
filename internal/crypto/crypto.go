// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package crypto provides the bcrypt-backed password hashing, secure random
// generation, and TOTP services consumed by the user interactors.
package crypto

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptService hashes and verifies passwords with bcrypt.
type BcryptService struct {
	cost int
}

// NewBcryptService returns a BcryptService with the default cost.
func NewBcryptService() *BcryptService {
	return &BcryptService{cost: bcrypt.DefaultCost}
}

// Hash derives a bcrypt hash from the plaintext.
func (s *BcryptService) Hash(_ context.Context, plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the bcrypt hash. A mismatch is
// not an error; only unexpected failures (malformed hash) are.
func (s *BcryptService) Verify(_ context.Context, plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}
	return false, fmt.Errorf("verify password: %w", err)
}
