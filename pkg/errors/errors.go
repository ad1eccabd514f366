// Package errors provides typed errors for domtrim
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrConfig indicates a configuration or rule-table error
	ErrConfig ErrorType = iota
	// ErrParse indicates malformed JSON input
	ErrParse
	// ErrUnsupportedValue indicates a value outside the tree data model
	ErrUnsupportedValue
	// ErrValidation indicates an input validation error
	ErrValidation
	// ErrIO indicates a file read/write error
	ErrIO
)

// ToolkitError is the base error type for all domtrim errors
type ToolkitError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns the error message
func (e *ToolkitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", errorTypeString(e.Type), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", errorTypeString(e.Type), e.Message)
}

// Unwrap returns the underlying cause
func (e *ToolkitError) Unwrap() error {
	return e.Cause
}

// New creates a new ToolkitError
func New(errType ErrorType, message string, cause error) *ToolkitError {
	return &ToolkitError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context to the error
func (e *ToolkitError) WithContext(key string, value interface{}) *ToolkitError {
	e.Context[key] = value
	return e
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var tkErr *ToolkitError
	if err == nil {
		return false
	}
	if errors.As(err, &tkErr) {
		return tkErr.Type == errType
	}
	return false
}

func errorTypeString(et ErrorType) string {
	switch et {
	case ErrConfig:
		return "CONFIG"
	case ErrParse:
		return "PARSE"
	case ErrUnsupportedValue:
		return "UNSUPPORTED"
	case ErrValidation:
		return "VALIDATION"
	case ErrIO:
		return "IO"
	default:
		return "UNKNOWN"
	}
}

// Convenience functions for common errors

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *ToolkitError {
	return New(ErrConfig, message, cause)
}

// ParseError creates a parse error carrying a line:column location
func ParseError(message string, line, col int, cause error) *ToolkitError {
	e := New(ErrParse, fmt.Sprintf("%s at line %d, column %d", message, line, col), cause)
	e.Context["line"] = line
	e.Context["column"] = col
	return e
}

// UnsupportedValue creates an error for values outside the tree data model
func UnsupportedValue(message string) *ToolkitError {
	return New(ErrUnsupportedValue, message, nil)
}

// ValidationError creates a validation error
func ValidationError(message string, cause error) *ToolkitError {
	return New(ErrValidation, message, cause)
}

// IOError creates a file I/O error
func IOError(message string, cause error) *ToolkitError {
	return New(ErrIO, message, cause)
}
