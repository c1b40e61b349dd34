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
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"
	ErrConfigExists  ErrorCode = "CONFIG_EXISTS"

	// Theme errors
	ErrUnknownTheme ErrorCode = "UNKNOWN_THEME"
	ErrAliasMissing ErrorCode = "ALIAS_MISSING"

	// Target file errors
	ErrFileUnreadable ErrorCode = "FILE_UNREADABLE"
	ErrFileWrite      ErrorCode = "FILE_WRITE"
	ErrMarkerNotFound ErrorCode = "MARKER_NOT_FOUND"

	// Template errors
	ErrUnresolvedVariable  ErrorCode = "UNRESOLVED_VARIABLE"
	ErrMalformedImport     ErrorCode = "MALFORMED_IMPORT"
	ErrImportUnreadable    ErrorCode = "IMPORT_UNREADABLE"
	ErrImportDepthExceeded ErrorCode = "IMPORT_DEPTH_EXCEEDED"

	// Post-update errors
	ErrReloadFailed ErrorCode = "RELOAD_FAILED"
)

// ThemerError represents a structured error with code and details
type ThemerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ThemerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ThemerError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ThemerError) Is(target error) bool {
	var targetErr *ThemerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ThemerError with the given code and message
func New(code ErrorCode, message string) *ThemerError {
	return &ThemerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ThemerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ThemerError {
	return &ThemerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ThemerError
func Wrap(err error, code ErrorCode, message string) *ThemerError {
	if err == nil {
		return nil
	}
	return &ThemerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ThemerError {
	if err == nil {
		return nil
	}
	return &ThemerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ThemerError) WithDetail(key string, value interface{}) *ThemerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var themerErr *ThemerError
	if errors.As(err, &themerErr) {
		return themerErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ThemerError
func GetErrorCode(err error) ErrorCode {
	var themerErr *ThemerError
	if errors.As(err, &themerErr) {
		return themerErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ThemerError
func GetErrorDetails(err error) map[string]interface{} {
	var themerErr *ThemerError
	if errors.As(err, &themerErr) {
		return themerErr.Details
	}
	return nil
}
