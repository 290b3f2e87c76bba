package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrValidation represents validation errors
	ErrValidation ErrorType = "VALIDATION"
	// ErrNotFound represents not found errors
	ErrNotFound ErrorType = "NOT_FOUND"
	// ErrConflict represents conflict errors
	ErrConflict ErrorType = "CONFLICT"
	// ErrUnauthorized represents authorization errors
	ErrUnauthorized ErrorType = "UNAUTHORIZED"
	// ErrInternal represents internal server errors
	ErrInternal ErrorType = "INTERNAL"
	// ErrTimeout represents timeout errors
	ErrTimeout ErrorType = "TIMEOUT"
	// ErrAnalysis represents failures of the conversation analysis step
	ErrAnalysis ErrorType = "ANALYSIS"
	// ErrDatabase represents database errors
	ErrDatabase ErrorType = "DATABASE"
	// ErrNetwork represents upstream network failures
	ErrNetwork ErrorType = "NETWORK"
)

// AppError represents an application error with context
type AppError struct {
	Type       ErrorType
	Message    string
	Cause      error
	HTTPStatus int
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Type:       ErrNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewConflictError creates a conflict error
func NewConflictError(message string) *AppError {
	return &AppError{
		Type:       ErrConflict,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

// NewUnauthorizedError creates an authorization error
func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Type:       ErrUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewInternalError creates an internal error wrapping a cause
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrInternal,
		Message:    message,
		Cause:      cause,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewTimeoutError creates a timeout error
func NewTimeoutError(message string) *AppError {
	return &AppError{
		Type:       ErrTimeout,
		Message:    message,
		HTTPStatus: http.StatusGatewayTimeout,
	}
}

// NewAnalysisError creates an analysis failure error
func NewAnalysisError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrAnalysis,
		Message:    message,
		Cause:      cause,
		HTTPStatus: http.StatusBadGateway,
	}
}

// NewDatabaseError creates a database error wrapping a cause
func NewDatabaseError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrDatabase,
		Message:    message,
		Cause:      cause,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewNetworkError creates an upstream network error
func NewNetworkError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrNetwork,
		Message:    message,
		Cause:      cause,
		HTTPStatus: http.StatusBadGateway,
	}
}

// GetAppError extracts an AppError from an error chain
func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsType checks whether the error chain contains an AppError of the given type
func IsType(err error, errType ErrorType) bool {
	if appErr, ok := GetAppError(err); ok {
		return appErr.Type == errType
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return IsType(err, ErrNotFound)
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return IsType(err, ErrValidation)
}

// IsUnauthorized checks if the error is an authorization error
func IsUnauthorized(err error) bool {
	return IsType(err, ErrUnauthorized)
}

// IsConflict checks if the error is a conflict error
func IsConflict(err error) bool {
	return IsType(err, ErrConflict)
}

// IsNetwork checks if the error is an upstream network error
func IsNetwork(err error) bool {
	return IsType(err, ErrNetwork)
}

// IsAnalysis checks if the error is an analysis failure
func IsAnalysis(err error) bool {
	return IsType(err, ErrAnalysis)
}

// Wrap wraps an error with an additional message, preserving the AppError
// type and status when one is present in the chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := GetAppError(err); ok {
		return &AppError{
			Type:       appErr.Type,
			Message:    message,
			Cause:      err,
			HTTPStatus: appErr.HTTPStatus,
		}
	}
	return fmt.Errorf("%s: %w", message, err)
}
