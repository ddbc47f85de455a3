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

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// Path resolution errors
	ErrSourceResolve ErrorCode = "SOURCE_RESOLVE"

	// Traversal errors
	ErrTraversal ErrorCode = "TRAVERSAL"

	// Linking errors
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrTargetIsDir   ErrorCode = "TARGET_IS_DIR"

	// Run outcome errors
	ErrPartialFailure ErrorCode = "PARTIAL_FAILURE"
)

// CfglinkError represents a structured error with code and details
type CfglinkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CfglinkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CfglinkError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CfglinkError) Is(target error) bool {
	var targetErr *CfglinkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CfglinkError with the given code and message
func New(code ErrorCode, message string) *CfglinkError {
	return &CfglinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CfglinkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CfglinkError {
	return &CfglinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CfglinkError
func Wrap(err error, code ErrorCode, message string) *CfglinkError {
	if err == nil {
		return nil
	}
	return &CfglinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CfglinkError {
	if err == nil {
		return nil
	}
	return &CfglinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CfglinkError) WithDetail(key string, value interface{}) *CfglinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cfgErr *CfglinkError
	if errors.As(err, &cfgErr) {
		return cfgErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CfglinkError
func GetErrorCode(err error) ErrorCode {
	var cfgErr *CfglinkError
	if errors.As(err, &cfgErr) {
		return cfgErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CfglinkError
func GetErrorDetails(err error) map[string]interface{} {
	var cfgErr *CfglinkError
	if errors.As(err, &cfgErr) {
		return cfgErr.Details
	}
	return nil
}
