package models

import (
	"errors"
	"fmt"
)

var (
	// ErrRiskActive blocks ledger appends while the cooling-off period is on.
	ErrRiskActive = errors.New("risk control active: new entries are blocked until the next day")

	// ErrNotFound reports an update or remove against an unknown identifier.
	ErrNotFound = errors.New("transaction not found")

	// ErrInvalidConfirmation reports a full reset attempted with a wrong token.
	ErrInvalidConfirmation = errors.New("invalid confirmation code")
)

// ValidationError reports a malformed transaction candidate. Raised before
// any state mutation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Message)
}

// NewValidationError creates a field-level validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
