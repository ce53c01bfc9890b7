package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrOrderCreationFailed = errors.New("order creation failed")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrSessionExpired      = errors.New("session expired")
)

// ValidationError is a local pre-flight failure. It surfaces to the
// caller immediately and never switches the repository to demo mode.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Reason }

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
