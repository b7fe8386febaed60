// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkpress/internal/middleware"
	"inkpress/internal/user"
)

// Users groups the user-directory HTTP handlers.
type Users struct {
	users *user.Service
}

// NewUsers creates a new Users handler group.
func NewUsers(users *user.Service) *Users {
	return &Users{users: users}
}

// List returns every user's visible profile.
func (h *Users) List(w http.ResponseWriter, r *http.Request) {
	p := middleware.PayloadFromCtx(r.Context())
	all, err := h.users.List(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, all)
}

// Create adds an account and answers with its generated password. The
// password appears in this response only and is never retrievable again.
func (h *Users) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	p := middleware.PayloadFromCtx(r.Context())
	out, err := h.users.Create(r.Context(), p, user.CreateInput{
		Name:     body.Name,
		Email:    body.Email,
		RoleName: body.Role,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// Delete removes an account. The caller confirms with their own password.
func (h *Users) Delete(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	p := middleware.PayloadFromCtx(r.Context())
	err := h.users.Delete(r.Context(), p, user.DeleteInput{
		ID:       chi.URLParam(r, "id"),
		Password: body.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// ChangePassword sets a new password on another account. The caller
// confirms with their own password.
func (h *Users) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		NewPassword string `json:"new_password"`
		Password    string `json:"password"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	p := middleware.PayloadFromCtx(r.Context())
	err := h.users.ChangeUsersPassword(r.Context(), p, user.ChangeUsersPasswordInput{
		UserID:      chi.URLParam(r, "id"),
		NewPassword: body.NewPassword,
		Password:    body.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
