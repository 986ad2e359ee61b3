package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors raised by domain services. The API layer maps each one to
// a deterministic HTTP status; anything outside this set renders as a
// generic 500.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrFlagNotFound       = errors.New("feature flag not found")
	ErrFlagNameExists     = errors.New("feature flag name already exists")
	ErrUnauthenticated    = errors.New("authentication required")
)

// ValidationError carries field-level messages for a malformed request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d invalid field(s)", len(e.Fields))
}

// NewValidationError builds a ValidationError from field/message pairs.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
