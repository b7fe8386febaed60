// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"inkpress/internal/apperr"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"not found", apperr.NotFound("Category with id x not found"), 404, "not_found"},
		{"bad request", apperr.BadRequest("invalid credentials"), 400, "bad_request"},
		{"duplication", apperr.Duplication("slug", "news"), 400, "duplication"},
		{"validation", apperr.Validation("name", "", "name is empty"), 400, "validation"},
		{"forbidden", apperr.Forbidden("forbidden"), 403, "forbidden"},
		{"internal", apperr.Internal(errors.New("pg down")), 500, "internal"},
		{"unclassified", errors.New("plain error"), 500, "internal"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeError(w, tc.err)

			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tc.wantStatus)
			}

			var body errorBody
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal body: %v", err)
			}
			if body.Error != tc.wantError {
				t.Errorf("error = %q, want %q", body.Error, tc.wantError)
			}
		})
	}
}

func TestWriteErrorHidesInternalCause(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, apperr.Internal(errors.New("password=hunter2 dsn leaked")))

	if strings.Contains(w.Body.String(), "hunter2") {
		t.Error("internal error details leaked into the response body")
	}
}

func TestWriteErrorCarriesValidationFields(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, apperr.Validation("parent_id", "abc", "circular parent id"))

	var body errorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body.Key != "parent_id" || body.Value != "abc" || body.Message != "circular parent id" {
		t.Errorf("body = %+v", body)
	}
}

func TestDecodeJSONMalformedBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader("{not json"))
	var dst struct{}

	err := decodeJSON(r, &dst)
	if !apperr.IsKind(err, apperr.KindBadRequest) {
		t.Errorf("expected BadRequest, got %v", err)
	}
}
