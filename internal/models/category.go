// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// CategoryID is the opaque identifier of a category, compared by value.
type CategoryID string

func (id CategoryID) String() string { return string(id) }

// Category represents a node in the hierarchical category tree. Posts can
// have at most one category assigned.
type Category struct {
	ID          CategoryID
	Name        string
	Slug        string
	Description string
	ParentID    *CategoryID
	CreatedAt   time.Time
}

// CategoryMeta holds the computed aggregate counts for one category. It is
// produced on demand and never persisted.
type CategoryMeta struct {
	DirectPostsCount int
	ChildrenCount    int
	TotalPostCount   int
}
