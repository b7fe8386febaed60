// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package access implements the capability model that gates every mutating
// use case. A Role answers "can this identity perform this action"; a
// Payload couples a Role with the authenticated user's id and is built per
// request by the transport layer.
package access

import (
	"inkpress/internal/apperr"
)

// Action identifies one guarded operation. The set is closed: interactors
// only ever pass one of the constants below, so a capability check can never
// be made against a misspelled token.
type Action string

const (
	ActionCategoryCreate          Action = "category-create"
	ActionCategoryUpdate          Action = "category-update"
	ActionCategoryDeleteRecursive Action = "category-delete-recursive"
	ActionCategoryReplace         Action = "category-replace"
	ActionUserCreate              Action = "user-create"
	ActionUserDelete              Action = "user-delete"
	ActionChangeOthersPassword    Action = "change-others-password"
	ActionListUsers               Action = "list-users"
)

// Role is the capability predicate carried by every user. Implementations
// are stateless values, safe to copy and share.
type Role interface {
	Can(action Action) bool
}

// Payload is the per-request identity handed to interactors by the
// transport layer.
type Payload interface {
	Role
	UserID() string
}

// CanOrFail checks the payload's capability for the given action and
// returns a Forbidden error on denial. The error carries no detail about
// the action or the caller.
func CanOrFail(p Payload, action Action) error {
	if !p.Can(action) {
		return apperr.Forbidden("forbidden")
	}
	return nil
}

// RoleFactory constructs Role values from their persisted names.
type RoleFactory interface {
	// IsValidRoleName reports whether a role can be built from name.
	IsValidRoleName(name string) bool
	// CreateRole builds the Role for name. It must only be called with a
	// name accepted by IsValidRoleName.
	CreateRole(name string) Role
}

// RoleNamer maps a Role value back to its persisted name.
type RoleNamer interface {
	NameRole(role Role) string
}
