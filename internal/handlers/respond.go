// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers exposes the inkpress use cases as a JSON HTTP API.
// Handlers decode requests, call the services, and translate the error
// taxonomy into HTTP status codes.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"inkpress/internal/apperr"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Key     string `json:"key,omitempty"`
	Value   string `json:"value,omitempty"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// writeError maps a classified error to its HTTP status. Internal errors
// are logged with their cause and answered with a generic body so nothing
// about the failure leaks to the client.
func writeError(w http.ResponseWriter, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		ae = apperr.Internal(err)
	}

	switch ae.Kind {
	case apperr.KindNotFound:
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not_found", Message: ae.Message})
	case apperr.KindBadRequest:
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad_request", Message: ae.Message})
	case apperr.KindDuplication:
		writeJSON(w, http.StatusBadRequest, errorBody{
			Error: "duplication", Key: ae.Key, Value: ae.Value,
		})
	case apperr.KindValidation:
		writeJSON(w, http.StatusBadRequest, errorBody{
			Error: "validation", Key: ae.Key, Value: ae.Value, Message: ae.Message,
		})
	case apperr.KindForbidden:
		writeJSON(w, http.StatusForbidden, errorBody{Error: "forbidden", Message: ae.Message})
	default:
		slog.Error("internal error", "error", ae.Unwrap())
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal"})
	}
}

// decodeJSON reads the request body into dst. A malformed body is a
// BadRequest, consistent with the service-level taxonomy.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.BadRequest("malformed request body")
	}
	return nil
}
