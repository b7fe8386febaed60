// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides PostgreSQL-backed persistence for inkpress
// entities. Each store struct wraps a *sql.DB and exposes typed query
// methods; lookups return (nil, nil) when no row matches.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"inkpress/internal/models"
)

// CategoryStore manages the category tree in the database. It backs the
// category repository, the deletion utility, and the meta calculator.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, name, slug, description, parent_id, created_at`

// scanCategory scans a row into a Category struct.
func scanCategory(scanner interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	var parentID sql.NullString
	err := scanner.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &parentID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	if parentID.Valid {
		pid := models.CategoryID(parentID.String)
		c.ParentID = &pid
	}
	return &c, nil
}

// GetByID retrieves a category by id. Returns nil if not found.
func (s *CategoryStore) GetByID(ctx context.Context, id models.CategoryID) (*models.Category, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id.String())
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get category by id: %w", err)
	}
	return c, nil
}

// GetBySlug retrieves a category by slug. Returns nil if not found.
func (s *CategoryStore) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, slug)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get category by slug: %w", err)
	}
	return c, nil
}

// GetAll returns all categories ordered by name.
func (s *CategoryStore) GetAll(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// Create inserts a new category.
func (s *CategoryStore) Create(ctx context.Context, c *models.Category) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, slug, description, parent_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, c.ID.String(), c.Name, c.Slug, c.Description, parentIDValue(c.ParentID), c.CreatedAt)
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

// Update modifies an existing category.
func (s *CategoryStore) Update(ctx context.Context, c *models.Category) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE categories SET name = $1, slug = $2, description = $3, parent_id = $4
		WHERE id = $5
	`, c.Name, c.Slug, c.Description, parentIDValue(c.ParentID), c.ID.String())
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// parentIDValue converts an optional parent id to a driver-friendly value.
func parentIDValue(id *models.CategoryID) any {
	if id == nil {
		return nil
	}
	return id.String()
}

// DeleteRecursive removes a category together with its whole subtree.
// Posts referencing a removed category are detached (ON DELETE SET NULL).
func (s *CategoryStore) DeleteRecursive(ctx context.Context, id models.CategoryID) error {
	_, err := s.db.ExecContext(ctx, `
		WITH RECURSIVE subtree AS (
			SELECT id FROM categories WHERE id = $1
			UNION ALL
			SELECT c.id FROM categories c
			JOIN subtree s ON c.parent_id = s.id
		)
		DELETE FROM categories WHERE id IN (SELECT id FROM subtree)
	`, id.String())
	if err != nil {
		return fmt.Errorf("delete category subtree: %w", err)
	}
	return nil
}

// ReplaceWith deletes the source category after moving its posts and child
// categories over to the replacement. If the replacement was itself a child
// of the source it first takes over the source's position in the tree.
func (s *CategoryStore) ReplaceWith(ctx context.Context, source, replacement models.CategoryID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE categories SET parent_id = (SELECT parent_id FROM categories WHERE id = $1)
		WHERE id = $2 AND parent_id = $1
	`, source.String(), replacement.String())
	if err != nil {
		return fmt.Errorf("reparent replacement: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE categories SET parent_id = $2 WHERE parent_id = $1 AND id <> $2
	`, source.String(), replacement.String())
	if err != nil {
		return fmt.Errorf("reparent children: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE content SET category_id = $2 WHERE category_id = $1
	`, source.String(), replacement.String())
	if err != nil {
		return fmt.Errorf("move content: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, source.String()); err != nil {
		return fmt.Errorf("delete replaced category: %w", err)
	}

	return tx.Commit()
}

// GetMeta computes the aggregate counts for one category. Returns nil if
// the category does not exist.
func (s *CategoryStore) GetMeta(ctx context.Context, id models.CategoryID) (*models.CategoryMeta, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, id.String()).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}
	if !exists {
		return nil, nil
	}

	var meta models.CategoryMeta
	err = s.db.QueryRowContext(ctx, `
		WITH RECURSIVE subtree AS (
			SELECT id FROM categories WHERE id = $1
			UNION ALL
			SELECT c.id FROM categories c
			JOIN subtree s ON c.parent_id = s.id
		)
		SELECT
			(SELECT COUNT(*) FROM content WHERE category_id = $1 AND type = 'post'),
			(SELECT COUNT(*) FROM categories WHERE parent_id = $1),
			(SELECT COUNT(*) FROM content
			 WHERE category_id IN (SELECT id FROM subtree) AND type = 'post')
	`, id.String()).Scan(&meta.DirectPostsCount, &meta.ChildrenCount, &meta.TotalPostCount)
	if err != nil {
		return nil, fmt.Errorf("category meta: %w", err)
	}
	return &meta, nil
}
