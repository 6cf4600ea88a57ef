package flower

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind represents the category of a record error
type ErrorKind int

const (
	// ErrMissingRequiredField indicates at least one field was empty after trimming
	ErrMissingRequiredField ErrorKind = iota
)

// MissingFieldsMessage is the alert text shown when a submission is incomplete.
const MissingFieldsMessage = "All fields are required!"

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrMissingRequiredField:
		return "Missing Required Field"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// ValidationError is returned when form values cannot become a Flower.
// Message is the user-facing text; Fields lists the empty attributes for logging
// only and is never shown to the user.
type ValidationError struct {
	Kind    ErrorKind
	Message string
	Fields  []Field
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Key())
	}
	return fmt.Sprintf("%s: %s (empty: %s)", e.Kind, e.Message, strings.Join(names, ", "))
}

// NewMissingFieldError creates a validation error for the given empty fields
func NewMissingFieldError(fields ...Field) *ValidationError {
	return &ValidationError{
		Kind:    ErrMissingRequiredField,
		Message: MissingFieldsMessage,
		Fields:  fields,
	}
}

// IsMissingRequiredField checks if an error is a missing-field validation error
func IsMissingRequiredField(err error) bool {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Kind == ErrMissingRequiredField
	}
	return false
}

// UserMessage returns the text to put in front of the user for err.
// Validation errors yield their alert message; anything else its Error string.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	return err.Error()
}
