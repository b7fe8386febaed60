// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// inkpress API. It organizes routes into public and authenticated groups
// with appropriate middleware stacks.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkpress/internal/config"
	"inkpress/internal/handlers"
	"inkpress/internal/middleware"
	"inkpress/internal/session"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(cfg *config.Config, sessions *session.Store, auth *handlers.Auth, categories *handlers.Categories, users *handlers.Users) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadPayload(sessions))

	// Health check — no auth.
	r.Get("/health", healthHandler)

	// Login is rate-limited per IP to slow down credential guessing.
	loginLimiter := middleware.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)
	r.With(loginLimiter.Middleware).Post("/auth/login", auth.Login)

	// Public category reads.
	r.Get("/categories", categories.List)
	r.Get("/categories/slug/{slug}", categories.BySlug)
	r.Get("/categories/{id}/info", categories.Info)

	// Authenticated routes.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Post("/auth/logout", auth.Logout)
		r.Get("/auth/me", auth.Me)
		r.Put("/auth/password", auth.ChangeMyPassword)
		r.Post("/auth/2fa/setup", auth.TwoFASetup)
		r.Post("/auth/2fa/confirm", auth.TwoFAConfirm)

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", categories.Create)
			r.Put("/{id}", categories.Update)
			r.Delete("/{id}", categories.Delete)
			r.Post("/{id}/replace", categories.Replace)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", users.List)
			r.Post("/", users.Create)
			r.Delete("/{id}", users.Delete)
			r.Put("/{id}/password", users.ChangePassword)
		})
	})

	return r
}

// healthHandler answers liveness probes.
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
