// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package session provides Valkey-backed API session management. Sessions
// are identified by a bearer token and stored as JSON in Valkey with
// automatic TTL expiry. A per-user index supports revoking every session
// of one account at once.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"inkpress/internal/access"
)

const (
	// DefaultTTL is how long a session lives in Valkey before automatic expiry.
	DefaultTTL = 24 * time.Hour

	// keyPrefix namespaces session keys in Valkey to avoid collisions.
	keyPrefix = "session:"

	// userKeyPrefix namespaces the per-user token index.
	userKeyPrefix = "user_sessions:"

	// tokenLength is the byte length of the random token (32 bytes = 64 hex chars).
	tokenLength = 32
)

// data is the session payload stored in Valkey.
type data struct {
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Payload is an authenticated identity resolved from a session token. It
// carries the token it was loaded from so the session can later revoke
// exactly itself.
type Payload struct {
	userID string
	token  string
	role   access.Role
}

// NewPayload builds a payload directly from its parts. Production code
// receives payloads from Store.Get; this constructor exists for tests and
// tooling that need a payload without a live Valkey.
func NewPayload(userID, token string, role access.Role) *Payload {
	return &Payload{userID: userID, token: token, role: role}
}

// UserID returns the authenticated user's id.
func (p *Payload) UserID() string { return p.userID }

// Can reports whether the session's role permits the action.
func (p *Payload) Can(action access.Action) bool { return p.role.Can(action) }

// Store manages session lifecycle in Valkey.
type Store struct {
	client *redis.Client
	roles  access.RoleFactory
	ttl    time.Duration
}

// NewStore creates a session store backed by the given Valkey client.
func NewStore(client *redis.Client, roles access.RoleFactory) *Store {
	return &Store{
		client: client,
		roles:  roles,
		ttl:    DefaultTTL,
	}
}

// Create opens a new session for the user and returns its bearer token.
// The token is also added to the user's session index so RevokeAllForUser
// can find it later.
func (s *Store) Create(ctx context.Context, userID, roleName string) (string, error) {
	if !s.roles.IsValidRoleName(roleName) {
		return "", fmt.Errorf("session create: role %q unknown", roleName)
	}

	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}

	payload, err := json.Marshal(data{
		UserID:    userID,
		Role:      roleName,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return "", fmt.Errorf("session marshal: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("session store: %w", err)
	}

	// Index the token under the user and keep the index alive at least as
	// long as the longest-lived session.
	if err := s.client.SAdd(ctx, userKeyPrefix+userID, token).Err(); err != nil {
		return "", fmt.Errorf("session index: %w", err)
	}
	if err := s.client.Expire(ctx, userKeyPrefix+userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("session index expire: %w", err)
	}

	return token, nil
}

// Get resolves a bearer token into a Payload. Returns nil if the token is
// unknown or the session expired.
func (s *Store) Get(ctx context.Context, token string) (*Payload, error) {
	raw, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, nil // Session expired or doesn't exist
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}

	var d data
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("session unmarshal: %w", err)
	}
	if !s.roles.IsValidRoleName(d.Role) {
		return nil, fmt.Errorf("session role %q unknown", d.Role)
	}

	return &Payload{
		userID: d.UserID,
		token:  token,
		role:   s.roles.CreateRole(d.Role),
	}, nil
}

// RevokePayload destroys the single session behind the payload. The
// payload must have been produced by this store's Get.
func (s *Store) RevokePayload(ctx context.Context, p access.Payload) error {
	sp, ok := p.(*Payload)
	if !ok {
		return errors.New("payload carries no session token")
	}

	if err := s.client.Del(ctx, keyPrefix+sp.token).Err(); err != nil {
		return fmt.Errorf("session revoke: %w", err)
	}
	if err := s.client.SRem(ctx, userKeyPrefix+sp.userID, sp.token).Err(); err != nil {
		return fmt.Errorf("session index remove: %w", err)
	}
	return nil
}

// RevokeAllForUser destroys every active session of the user.
func (s *Store) RevokeAllForUser(ctx context.Context, id string) error {
	tokens, err := s.client.SMembers(ctx, userKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("session index read: %w", err)
	}

	for _, token := range tokens {
		if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
			return fmt.Errorf("session revoke %s: %w", token, err)
		}
	}

	if err := s.client.Del(ctx, userKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("session index delete: %w", err)
	}
	return nil
}

// generateToken creates a cryptographically random session token.
func generateToken() (string, error) {
	b := make([]byte, tokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
