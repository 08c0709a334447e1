// Package errors defines the domain error kinds for the RBAC service and
// helpers for classifying wrapped errors. Every failure that crosses a
// component boundary carries one of these kinds; anything unclassified is
// treated as an internal store failure.
package errors

import (
	"errors"
	"fmt"
)

// Kind is the machine-readable error code carried in the failure envelope.
type Kind string

const (
	KindNotFound           Kind = "ERR_OBJECT_NOT_FOUND"
	KindAccessDenied       Kind = "ERR_ACCESS_DENIED"
	KindDuplicateKey       Kind = "ERR_DUPLICATE_KEY"
	KindInvalidCredentials Kind = "ERR_INVALID_CREDENTIALS"
	KindTokenInvalid       Kind = "ERR_TOKEN_INVALID"
	KindInvalidParam       Kind = "ERR_INVALID_PARAM"
	KindInternal           Kind = "ERR_INTERNAL"
)

// Error is a domain error with a classification kind.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New creates a classified domain error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a classified domain error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports an absent entity. Only surfaced after an allow decision.
func NotFound(entity, key string) *Error {
	return Newf(KindNotFound, "%s %q not found", entity, key)
}

// AccessDenied reports a deny decision from the authorization engine.
func AccessDenied(operation string) *Error {
	return Newf(KindAccessDenied, "access denied for %s", operation)
}

// Duplicate reports a unique-key collision on creation.
func Duplicate(entity, key string) *Error {
	return Newf(KindDuplicateKey, "%s %q already exists", entity, key)
}

// KindOf walks err's chain and returns the first classified kind.
// Unclassified errors map to KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err's chain carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
