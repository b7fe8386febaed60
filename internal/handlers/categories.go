// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkpress/internal/category"
	"inkpress/internal/middleware"
)

// Categories groups the category-tree HTTP handlers.
type Categories struct {
	categories *category.Service
}

// NewCategories creates a new Categories handler group.
func NewCategories(categories *category.Service) *Categories {
	return &Categories{categories: categories}
}

// List returns every category. Public, no authentication required.
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.categories.All(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, all)
}

// BySlug returns a single category by slug. Public; an unknown slug is 404.
func (h *Categories) BySlug(w http.ResponseWriter, r *http.Request) {
	c, err := h.categories.BySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	if c == nil {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not_found"})
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Info returns a category merged with its aggregate counts.
func (h *Categories) Info(w http.ResponseWriter, r *http.Request) {
	out, err := h.categories.Info(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// Create adds a category to the tree.
func (h *Categories) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string  `json:"name"`
		Slug        *string `json:"slug"`
		Description string  `json:"description"`
		ParentID    *string `json:"parent_id"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	p := middleware.PayloadFromCtx(r.Context())
	out, err := h.categories.Create(r.Context(), p, category.CreateInput{
		Name:        body.Name,
		Slug:        body.Slug,
		Description: body.Description,
		ParentID:    body.ParentID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// Update rewrites a category's fields.
func (h *Categories) Update(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string  `json:"name"`
		Slug        *string `json:"slug"`
		Description string  `json:"description"`
		ParentID    *string `json:"parent_id"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	p := middleware.PayloadFromCtx(r.Context())
	err := h.categories.Update(r.Context(), p, category.UpdateInput{
		ID:          chi.URLParam(r, "id"),
		Name:        body.Name,
		Slug:        body.Slug,
		Description: body.Description,
		ParentID:    body.ParentID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Delete removes a category together with its whole subtree.
func (h *Categories) Delete(w http.ResponseWriter, r *http.Request) {
	p := middleware.PayloadFromCtx(r.Context())
	if err := h.categories.DeleteRecursive(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Replace removes a category after moving its references to another one.
func (h *Categories) Replace(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ReplacementID string `json:"replacement_id"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	p := middleware.PayloadFromCtx(r.Context())
	err := h.categories.Replace(r.Context(), p, category.ReplaceInput{
		ID:            chi.URLParam(r, "id"),
		ReplacementID: body.ReplacementID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
