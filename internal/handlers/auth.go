// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"net/http"

	qrcode "github.com/skip2/go-qrcode"

	"inkpress/internal/middleware"
	"inkpress/internal/session"
	"inkpress/internal/user"
)

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	users    *user.Service
	sessions *session.Store
}

// NewAuth creates a new Auth handler group.
func NewAuth(users *user.Service, sessions *session.Store) *Auth {
	return &Auth{users: users, sessions: sessions}
}

// Login checks credentials and answers with a bearer token.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	out, err := a.users.Login(r.Context(), user.LoginInput{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := a.sessions.Create(r.Context(), out.UserID, out.Role)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token":           token,
		"user_id":         out.UserID,
		"role":            out.Role,
		"needs_2fa_setup": out.NeedsTwoFactorSetup,
	})
}

// Logout revokes the calling session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	p := middleware.PayloadFromCtx(r.Context())
	if err := a.users.Logout(r.Context(), p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Me returns the calling user's visible profile.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	p := middleware.PayloadFromCtx(r.Context())
	me, err := a.users.GetMe(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, me)
}

// ChangeMyPassword replaces the caller's own password.
func (a *Auth) ChangeMyPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	p := middleware.PayloadFromCtx(r.Context())
	err := a.users.ChangeMyPassword(r.Context(), p, user.ChangeMyPasswordInput{
		OldPassword: body.OldPassword,
		NewPassword: body.NewPassword,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// TwoFASetup starts 2FA enrollment and answers with the secret, its
// provisioning URL, and a base64-encoded QR code PNG of that URL.
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	p := middleware.PayloadFromCtx(r.Context())
	out, err := a.users.SetupTwoFactor(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}

	qrPNG, err := qrcode.Encode(out.URL, qrcode.Medium, 256)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"secret": out.Secret,
		"url":    out.URL,
		"qr_png": base64.StdEncoding.EncodeToString(qrPNG),
	})
}

// TwoFAConfirm completes 2FA enrollment with a code from the
// authenticator app.
func (a *Auth) TwoFAConfirm(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	p := middleware.PayloadFromCtx(r.Context())
	if err := a.users.ConfirmTwoFactor(r.Context(), p, user.ConfirmTwoFactorInput{Code: body.Code}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
