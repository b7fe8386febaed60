// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"inkpress/internal/access"
)

// User represents a CMS user. PasswordHash always holds a hash produced by
// the crypto service, never plaintext.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         access.Role
	// TOTPSecret is set during 2FA enrollment; nil until then.
	TOTPSecret       *string
	TwoFactorEnabled bool
	CreatedAt        time.Time
}

// NeedsTwoFactorSetup returns true if the user has not completed 2FA
// enrollment.
func (u *User) NeedsTwoFactorSetup() bool {
	return !u.TwoFactorEnabled
}
