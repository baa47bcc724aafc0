package errors

import "fmt"

// Error codes
const (
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeInvalidParameter  = "INVALID_PARAMETER"
	ErrCodeUnauthorized      = "AUTHENTICATION_REQUIRED"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	ErrCodeStore             = "STORE_ERROR"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "NOT_FOUND", "INVALID_PARAMETER")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  404,
	}
}

// NewInvalidParameterError creates a new INVALID_PARAMETER error
func NewInvalidParameterError(param string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidParameter,
		Message: fmt.Sprintf("invalid %s: %s", param, reason),
		Status:  400,
	}
}

// NewUnauthorizedError creates a new AUTHENTICATION_REQUIRED error
func NewUnauthorizedError() *AppError {
	return &AppError{
		Code:    ErrCodeUnauthorized,
		Message: "authentication required",
		Status:  401,
	}
}

// NewForbiddenError creates a new FORBIDDEN error
func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeForbidden,
		Message: message,
		Status:  403,
	}
}

// NewUnsupportedFormatError creates a new UNSUPPORTED_FORMAT error for
// format/report-type combinations the serializers cannot render.
func NewUnsupportedFormatError(format string, reportType string) *AppError {
	return &AppError{
		Code:    ErrCodeUnsupportedFormat,
		Message: fmt.Sprintf("%s output is not supported for %s reports", format, reportType),
		Status:  400,
	}
}

// NewStoreError creates a new STORE_ERROR wrapping an attempt-store failure
func NewStoreError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeStore,
		Message: "attempt store query failed",
		Status:  500,
		Err:     err,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  500,
		Err:     err,
	}
}
