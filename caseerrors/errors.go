package caseerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidInput indicates a conversion input was present but not textual.
	ErrInvalidInput = errors.New("invalid input type")
)

// InvalidInputError represents a value that was passed to a conversion
// function but is neither textual nor absent. The error message embeds the
// runtime type name and a rendering of the offending value so callers and
// tests can match on message content.
type InvalidInputError struct {
	// TypeName is the Go type of the offending value (fmt %T rendering)
	TypeName string
	// Value is the offending value itself (may be nil inside a non-nil wrapper)
	Value any
	// Message provides additional context about the failure
	Message string
}

// NewInvalidInputError builds an InvalidInputError for the given value,
// capturing its runtime type name.
func NewInvalidInputError(value any) *InvalidInputError {
	return &InvalidInputError{
		TypeName: fmt.Sprintf("%T", value),
		Value:    value,
	}
}

// Error returns a human-readable error message.
func (e *InvalidInputError) Error() string {
	msg := fmt.Sprintf("invalid input type %s (value: %v)", e.TypeName, e.Value)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as InvalidInputError has no underlying cause.
func (e *InvalidInputError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
