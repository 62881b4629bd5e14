package services

import (
	"errors"
	"fmt"
)

// Sentinel errors for the service layer. Controllers translate these to
// HTTP statuses; anything else is treated as an internal persistence
// failure and hidden behind a generic message.
var (
	ErrNotFound     = errors.New("record not found")
	ErrAccessDenied = errors.New("access denied")
	ErrConflict     = errors.New("conflict")
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError is returned before any persistence write when input is
// malformed or out of range.
type ValidationError struct {
	Message string       `json:"message"`
	Fields  []FieldError `json:"errors,omitempty"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (%d field errors)", e.Message, len(e.Fields))
}

// NewValidationError builds a ValidationError with an overall message and
// optional field details.
func NewValidationError(message string, fields ...FieldError) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// AsValidationError unwraps err into a *ValidationError if possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
