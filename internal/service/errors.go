package service

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the machine-checkable class of a request failure.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindDuplicateUsername Kind = "duplicate_username"
	KindInvalidCreds      Kind = "invalid_credentials"
	KindMissingToken      Kind = "missing_token"
	KindInvalidToken      Kind = "invalid_or_expired_token"
	KindUserNotFound      Kind = "user_not_found"
	KindNotFound          Kind = "not_found"
	KindMethodNotAllowed  Kind = "method_not_allowed"
	KindInternal          Kind = "internal"
)

var kindStatus = map[Kind]int{
	KindValidation:        http.StatusBadRequest,
	KindDuplicateUsername: http.StatusBadRequest,
	KindInvalidCreds:      http.StatusUnauthorized,
	KindMissingToken:      http.StatusUnauthorized,
	KindInvalidToken:      http.StatusUnauthorized,
	KindUserNotFound:      http.StatusNotFound,
	KindNotFound:          http.StatusNotFound,
	KindMethodNotAllowed:  http.StatusMethodNotAllowed,
	KindInternal:          http.StatusInternalServerError,
}

// Error is a terminal request failure. Message is safe to show to clients;
// Err (if any) is the underlying cause and is only logged or shown in debug mode.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Status is the HTTP status code for the error's kind.
func (e *Error) Status() int {
	if s, ok := kindStatus[e.Kind]; ok {
		return s
	}
	return http.StatusInternalServerError
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func validationError(msg string) *Error {
	return newError(KindValidation, msg)
}

func internalError(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// AsError extracts a *Error from err; anything else is reported as internal.
func AsError(err error) *Error {
	var se *Error
	if errors.As(err, &se) {
		return se
	}
	return internalError("internal server error", err)
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == kind
}
