// Package errors provides structured error handling for the ranking
// backend. It defines error types with codes, messages, causes, and
// contextual information shared across the gateway and usecase layers.
package errors

import (
	"fmt"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

const (
	ErrCodeDatabase    ErrorCode = "DATABASE_ERROR"
	ErrCodeValidation  ErrorCode = "VALIDATION_ERROR"
	ErrCodeExternalAPI ErrorCode = "EXTERNAL_API_ERROR"
	ErrCodeTimeout     ErrorCode = "TIMEOUT_ERROR"
	ErrCodeUnknown     ErrorCode = "UNKNOWN_ERROR"
)

// AppError represents a structured application error with code,
// message, cause, and context. It implements the error interface and
// supports error unwrapping.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns a string representation of the AppError.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// DatabaseError creates an AppError for database-related errors.
func DatabaseError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeDatabase,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// ValidationError creates an AppError for input validation failures.
func ValidationError(message string, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Context: context,
	}
}

// ExternalAPIError creates an AppError for external API call failures.
func ExternalAPIError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeExternalAPI,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// TimeoutError creates an AppError for operation timeouts.
func TimeoutError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeTimeout,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}
