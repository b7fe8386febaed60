// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"inkpress/internal/access"
	"inkpress/internal/session"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// payloadKey is the context key for the authenticated payload.
	payloadKey contextKey = "payload"
)

// PayloadSource resolves a bearer token into an authenticated payload.
// Returns (nil, nil) when the token is unknown or expired.
type PayloadSource interface {
	Get(ctx context.Context, token string) (*session.Payload, error)
}

// LoadPayload resolves the Authorization bearer token into a payload and
// stores it in the request context. Downstream handlers can access it via
// PayloadFromCtx(). This middleware does NOT enforce authentication — it
// just loads the payload if a valid token is present.
func LoadPayload(source PayloadSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			p, err := source.Get(r.Context(), token)
			if err != nil {
				// Log but don't block — treat as unauthenticated.
				slog.Warn("payload load failed", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if p != nil {
				ctx := context.WithValue(r.Context(), payloadKey, access.Payload(p))
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth returns 401 for requests without an authenticated payload.
// Must be applied after LoadPayload in the middleware chain.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if PayloadFromCtx(r.Context()) == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// PayloadFromCtx returns the authenticated payload stored in the context,
// or nil if the request is unauthenticated.
func PayloadFromCtx(ctx context.Context) access.Payload {
	p, _ := ctx.Value(payloadKey).(access.Payload)
	return p
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
