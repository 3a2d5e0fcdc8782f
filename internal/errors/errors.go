// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInvalidParameter indicates an enumerated lookup key outside its
	// recognized domain (exposure, aggregate size, zone, grade)
	TypeInvalidParameter Type = "INVALID_PARAMETER"

	// TypeInvalidCementContent indicates a computed cementitious content <= 0
	TypeInvalidCementContent Type = "INVALID_CEMENT_CONTENT"

	// TypeFlyAshInfeasible indicates the fly-ash replacement search exhausted
	// its range without meeting the minimum cement floor
	TypeFlyAshInfeasible Type = "FLYASH_MIX_INFEASIBLE"

	// TypeStorage indicates a history or design-file persistence error
	TypeStorage Type = "STORAGE_ERROR"

	// TypeExport indicates a report or spreadsheet generation error
	TypeExport Type = "EXPORT_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// InvalidParameter creates an invalid parameter error naming the field
func InvalidParameter(field string, value interface{}) *Error {
	return Newf(TypeInvalidParameter, "invalid %s: %v", field, value).
		WithContext("field", field).
		WithContext("value", value)
}

// InvalidCementContent creates an invalid cement content error
func InvalidCementContent(content float64) *Error {
	return Newf(TypeInvalidCementContent, "cementitious content must be positive, got %.2f kg/m3", content).
		WithContext("content", content)
}

// FlyAshInfeasible creates an infeasible fly-ash blend error
func FlyAshInfeasible(grossCementitious float64) *Error {
	return Newf(TypeFlyAshInfeasible, "no fly-ash replacement fraction keeps cement above 270 kg/m3 for gross content %.2f kg/m3", grossCementitious).
		WithContext("gross_cementitious", grossCementitious)
}

// Storage creates a storage error
func Storage(message string, cause error) *Error {
	return Wrap(TypeStorage, message, cause)
}

// Export creates an export error
func Export(message string, cause error) *Error {
	return Wrap(TypeExport, message, cause)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}
