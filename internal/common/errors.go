// Package common defines shared constants and sentinel errors used across
// the filevault components. Callers should use errors.Is to match the
// sentinel values and errors.As to extract ValidationError.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorAlreadyExists = errors.New("already exists")
)

// ValidationError signals a malformed or missing request field. The message
// is part of the external contract ("Missing name", "Parent not found", ...)
// and is returned to the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError wraps a contractual validation message into an error.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
