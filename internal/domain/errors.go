package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	// ErrUnavailable marks transient persistence failures. Operations that
	// fail with it are safe to retry; the distributor treats it as a
	// per-charity partial failure rather than aborting the fan-out.
	ErrUnavailable = errors.New("temporarily unavailable")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// AllocationTotalError reports a bulk percentage update whose active total
// deviates from 100 by more than AllocationTolerance.
type AllocationTotalError struct {
	Total float64
}

func (e *AllocationTotalError) Error() string {
	return fmt.Sprintf("total allocation must equal 100%%, current total: %.1f%%", e.Total)
}

func (e *AllocationTotalError) Unwrap() error { return ErrValidation }

// PreferenceLimitError reports an attempt to exceed the active-preference ceiling.
type PreferenceLimitError struct {
	Limit int
}

func (e *PreferenceLimitError) Error() string {
	return fmt.Sprintf("at most %d active charities are allowed", e.Limit)
}

func (e *PreferenceLimitError) Unwrap() error { return ErrValidation }
