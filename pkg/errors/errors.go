package errors

import (
	"errors"
	"fmt"
)

// Error codes as constants
const (
	// ErrCodeLookupFailure indicates a requested column or key does not exist.
	ErrCodeLookupFailure = "LOOKUP_FAILURE"

	// ErrCodeInvalidConfig indicates malformed vocabulary or metadata input.
	ErrCodeInvalidConfig = "INVALID_CONFIG"

	// ErrCodeIO indicates a failure reading or writing external data.
	ErrCodeIO = "IO_ERROR"

	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal = "INTERNAL_ERROR"
)

// StructuredError is an error with a stable machine-readable code.
type StructuredError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error, if any.
func (e *StructuredError) Unwrap() error {
	return e.Err
}

// New creates a StructuredError with the given code and message.
func New(code, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message}
}

// Newf creates a StructuredError with a formatted message.
func Newf(code, format string, args ...any) *StructuredError {
	return &StructuredError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a StructuredError that wraps an underlying error.
func Wrap(code string, err error, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message, Err: err}
}

// IsCode reports whether err (or any error it wraps) is a StructuredError
// with the given code.
func IsCode(err error, code string) bool {
	var se *StructuredError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}
