package errors

import (
	"errors"
	"fmt"
)

// ValidationError rejects one option field. It carries the field name
// and the offending value so callers can log them as structured
// fields instead of parsing a message.
type ValidationError struct {
	Field string
	Value any
	Err   error
}

// NewValidationError wraps err with the field and value it rejects.
func NewValidationError(field string, value any, err error) *ValidationError {
	return &ValidationError{
		Field: field,
		Value: value,
		Err:   err,
	}
}

func (e *ValidationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid %s: %v: %s", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err has a ValidationError anywhere
// in its chain.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsValidationError returns the ValidationError in err's chain, or nil.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
