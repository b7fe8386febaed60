// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"inkpress/internal/access"
	"inkpress/internal/models"
)

// UserStore manages user accounts in the database. Roles are persisted by
// name and rehydrated through the injected role factory.
type UserStore struct {
	db    *sql.DB
	roles access.RoleFactory
}

// NewUserStore returns a new UserStore.
func NewUserStore(db *sql.DB, roles access.RoleFactory) *UserStore {
	return &UserStore{db: db, roles: roles}
}

const userColumns = `id, name, email, password_hash, role, totp_secret, totp_enabled, created_at`

func (s *UserStore) scanUser(scanner interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	var roleName string
	err := scanner.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &roleName,
		&u.TOTPSecret, &u.TwoFactorEnabled, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if !s.roles.IsValidRoleName(roleName) {
		return nil, fmt.Errorf("unknown role %q for user %s", roleName, u.ID)
	}
	u.Role = s.roles.CreateRole(roleName)
	return &u, nil
}

// GetByID retrieves a user by id. Returns nil if not found.
func (s *UserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := s.scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetByEmail retrieves a user by email. Returns nil if not found.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	u, err := s.scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// GetAll returns all users ordered by creation date.
func (s *UserStore) GetAll(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		u, err := s.scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// Create inserts a new user.
func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, totp_secret, totp_enabled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, u.ID, u.Name, u.Email, u.PasswordHash, s.roleName(u.Role),
		u.TOTPSecret, u.TwoFactorEnabled, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Update modifies an existing user.
func (s *UserStore) Update(ctx context.Context, u *models.User) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE users SET name = $1, email = $2, password_hash = $3, role = $4,
			totp_secret = $5, totp_enabled = $6
		WHERE id = $7
	`, u.Name, u.Email, u.PasswordHash, s.roleName(u.Role),
		u.TOTPSecret, u.TwoFactorEnabled, u.ID)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete removes a user by id.
func (s *UserStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (s *UserStore) roleName(role access.Role) string {
	if namer, ok := s.roles.(access.RoleNamer); ok {
		return namer.NameRole(role)
	}
	return access.RoleNameAuthor
}
