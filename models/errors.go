package models

import (
	"errors"
	"fmt"
)

var (
	ErrLoadFailed      = errors.New("failed to load data from the Holidaze API")
	ErrBookingFailed   = errors.New("booking was rejected by the Holidaze API")
	ErrNotFound        = errors.New("resource not found")
	ErrUnauthenticated = errors.New("not logged in")
	ErrForbidden       = errors.New("not allowed to modify this resource")
	ErrSessionNotFound = errors.New("session not found or expired")
	ErrMissingToken    = errors.New("access token is missing in the response")
	ErrMissingUserName = errors.New("user name is missing in the response")
)

// ValidationError is a user-facing rejection of some input, raised before any request is sent.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is, or wraps, a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
