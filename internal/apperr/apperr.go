// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package apperr defines the closed set of classified failures returned by
// the application core. Every interactor returns either a success value or
// exactly one *apperr.Error; collaborator failures that are not already
// classified are wrapped as Internal with the original cause preserved.
package apperr

import (
	"errors"
	"fmt"
)

// Kind identifies one of the classified failure categories.
type Kind int

const (
	// KindNotFound signals that a referenced entity does not exist.
	KindNotFound Kind = iota
	// KindBadRequest signals a semantically invalid request, such as wrong
	// credentials or a wrong password.
	KindBadRequest
	// KindDuplication signals a uniqueness violation on a named key.
	KindDuplication
	// KindValidation signals a field-level input validation failure.
	KindValidation
	// KindForbidden signals a capability check denial.
	KindForbidden
	// KindInternal signals an unclassified collaborator failure.
	KindInternal
)

// String returns the kind's name for logs and tests.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindDuplication:
		return "duplication"
	case KindValidation:
		return "validation"
	case KindForbidden:
		return "forbidden"
	case KindInternal:
		return "internal"
	}
	return "unknown"
}

// Error is a classified application failure. It is immutable once
// constructed; callers propagate or map it, never mutate it.
type Error struct {
	Kind    Kind
	Message string
	// Key and Value are set for Duplication and Validation kinds only.
	Key   string
	Value string
	// Cause holds the wrapped collaborator error for Internal kind.
	Cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindDuplication:
		return fmt.Sprintf("duplicate %s: %s", e.Key, e.Value)
	case KindValidation:
		if e.Message != "" {
			return fmt.Sprintf("invalid %s: %s", e.Key, e.Message)
		}
		return fmt.Sprintf("invalid %s", e.Key)
	case KindInternal:
		if e.Cause != nil {
			return fmt.Sprintf("internal error: %v", e.Cause)
		}
		return "internal error"
	}
	return e.Message
}

// Unwrap exposes the cause of an Internal error to errors.Is/As chains.
func (e *Error) Unwrap() error { return e.Cause }

// NotFound returns a NotFound error with the given message.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// BadRequest returns a BadRequest error with the given message.
func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// Duplication returns a Duplication error for the given key and value.
func Duplication(key, value string) *Error {
	return &Error{Kind: KindDuplication, Key: key, Value: value}
}

// Validation returns a Validation error for the given field key, the
// offending value, and a human-readable message.
func Validation(key, value, message string) *Error {
	return &Error{Kind: KindValidation, Key: key, Value: value, Message: message}
}

// Forbidden returns a Forbidden error. The message must not reveal
// existence or state of any entity.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// Internal wraps an unclassified collaborator error.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Cause: cause}
}

// From classifies an arbitrary error. Classified errors pass through
// untouched; anything else is wrapped as Internal. A nil error maps to nil.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// IsKind reports whether err is a classified error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
