// Package errors defines the structured error type used across folio.
//
// Only failures that abort a single output format (loading inputs, saving an
// artifact, the external paginator) are returned as errors. Degraded content
// such as unknown blocks or unresolvable colours is logged and skipped by the
// renderers instead.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Input errors
	ErrThemeLoad  ErrorCode = "THEME_LOAD"
	ErrLayoutLoad ErrorCode = "LAYOUT_LOAD"
	ErrStoreLoad  ErrorCode = "STORE_LOAD"

	// Rendering errors
	ErrRender ErrorCode = "RENDER"
	ErrSave   ErrorCode = "SAVE"

	// External paginator errors
	ErrPaginatorMissing ErrorCode = "PAGINATOR_MISSING"
	ErrPaginatorFailed  ErrorCode = "PAGINATOR_FAILED"

	// FileSystem errors
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// FolioError represents a structured error with code and details
type FolioError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FolioError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FolioError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FolioError) Is(target error) bool {
	var targetErr *FolioError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FolioError with the given code and message
func New(code ErrorCode, message string) *FolioError {
	return &FolioError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FolioError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FolioError {
	return &FolioError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FolioError
func Wrap(err error, code ErrorCode, message string) *FolioError {
	if err == nil {
		return nil
	}
	return &FolioError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FolioError {
	if err == nil {
		return nil
	}
	return &FolioError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FolioError) WithDetail(key string, value interface{}) *FolioError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *FolioError) WithDetails(details map[string]interface{}) *FolioError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var folioErr *FolioError
	if errors.As(err, &folioErr) {
		return folioErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FolioError
func GetErrorCode(err error) ErrorCode {
	var folioErr *FolioError
	if errors.As(err, &folioErr) {
		return folioErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FolioError
func GetErrorDetails(err error) map[string]interface{} {
	var folioErr *FolioError
	if errors.As(err, &folioErr) {
		return folioErr.Details
	}
	return nil
}
