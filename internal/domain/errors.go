package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when input or a domain entity fails validation.
	// It is usually wrapped in a *ValidationError naming the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyField is returned when a required field is missing or blank.
	ErrEmptyField = errors.New("field is required")

	// ErrEmptyItems is returned when an order carries no cart entries.
	ErrEmptyItems = errors.New("order must contain at least one item")

	// ErrInvalidQuantity is returned when an item quantity is not positive.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInvalidItemID is returned when an item id is neither a string nor a number.
	ErrInvalidItemID = errors.New("item id must be a string or a number")

	// ErrInvalidAddress is returned when an address is neither a string nor an object.
	ErrInvalidAddress = errors.New("address must be a string or an object")
)

// ValidationError describes a single invalid field.
// errors.Is(err, ErrValidation) holds for every ValidationError.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap exposes both the specific cause and ErrValidation.
func (e *ValidationError) Unwrap() []error {
	if e.Err == nil || errors.Is(e.Err, ErrValidation) {
		return []error{ErrValidation}
	}
	return []error{e.Err, ErrValidation}
}
