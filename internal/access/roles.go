// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package access

// Built-in role names. These are the values persisted in the users table.
const (
	RoleNameAdmin  = "admin"
	RoleNameEditor = "editor"
	RoleNameAuthor = "author"
)

// AdminRole may perform every action.
type AdminRole struct{}

func (AdminRole) Can(Action) bool { return true }

// EditorRole manages the category tree but not the user directory.
type EditorRole struct{}

func (EditorRole) Can(action Action) bool {
	switch action {
	case ActionCategoryCreate, ActionCategoryUpdate,
		ActionCategoryDeleteRecursive, ActionCategoryReplace:
		return true
	}
	return false
}

// AuthorRole holds no gated capabilities; authors only use the self-service
// operations (own profile, own password).
type AuthorRole struct{}

func (AuthorRole) Can(Action) bool { return false }

// StaticRoles is the RoleFactory and RoleNamer over the built-in role set.
type StaticRoles struct{}

// IsValidRoleName reports whether name is one of the built-in roles.
func (StaticRoles) IsValidRoleName(name string) bool {
	switch name {
	case RoleNameAdmin, RoleNameEditor, RoleNameAuthor:
		return true
	}
	return false
}

// CreateRole builds the Role value for a built-in role name. Unknown names
// yield the least-privileged role; callers are expected to have checked
// IsValidRoleName first.
func (StaticRoles) CreateRole(name string) Role {
	switch name {
	case RoleNameAdmin:
		return AdminRole{}
	case RoleNameEditor:
		return EditorRole{}
	}
	return AuthorRole{}
}

// NameRole maps a Role value back to its persisted name.
func (StaticRoles) NameRole(role Role) string {
	switch role.(type) {
	case AdminRole:
		return RoleNameAdmin
	case EditorRole:
		return RoleNameEditor
	case AuthorRole:
		return RoleNameAuthor
	}
	return ""
}
