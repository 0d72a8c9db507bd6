package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound means the word or feedback pair is unknown.
	ErrNotFound = errors.New("not found")
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation error")
	// ErrNotInitialized marks a component that is disabled by configuration
	// or was never started.
	ErrNotInitialized = errors.New("not initialized")
	// ErrUnavailable marks a configured component that cannot serve right now.
	ErrUnavailable = errors.New("unavailable")
)

// FieldError is one rejected input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects rejected input fields. The zero value is ready
// to use:
//
//	var v domain.ValidationError
//	if word == "" {
//		v.Add("word", "required")
//	}
//	return v.Err()
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError returns a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, message)
	return v
}

// Add records a rejected field.
func (e *ValidationError) Add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

// Err returns nil when no field was rejected.
func (e *ValidationError) Err() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
