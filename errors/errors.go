package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an error class returned to clients
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken       ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeForbidden          ErrorCode = "FORBIDDEN"
	ErrCodeRateLimited        ErrorCode = "RATE_LIMITED"

	// Lookup errors
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Server errors
	ErrCodeDBError  ErrorCode = "DB_ERROR"
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError is an error that knows how it should be reported over HTTP.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status maps the error code onto an HTTP status code.
func (e *AppError) Status() int {
	switch e.Code {
	case ErrCodeValidation, ErrCodeRequiredField, ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case ErrCodeUnauthorized, ErrCodeInvalidToken, ErrCodeMissingToken, ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func Validation(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, nil)
}

func Required(message string) *AppError {
	return NewAppError(ErrCodeRequiredField, message, nil)
}

func InvalidFormat(message string, err error) *AppError {
	return NewAppError(ErrCodeInvalidFormat, message, err)
}

func NotFound(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, nil)
}

func Database(message string, err error) *AppError {
	return NewAppError(ErrCodeDBError, message, err)
}

func Internal(message string, err error) *AppError {
	return NewAppError(ErrCodeInternal, message, err)
}

// IsAppError reports whether err is or wraps an AppError.
func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

// GetAppError extracts the AppError from err, if any
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	ErrSessionNotFound    = NotFound("Session not found")
	ErrChildNotFound      = NotFound("Child not found")
	ErrHomeVisitNotFound  = NotFound("Home visit not found")
	ErrAssessmentNotFound = NotFound("Assessment not found")
	ErrInvalidCredentials = NewAppError(ErrCodeInvalidCredentials, "Invalid credentials", nil)
	ErrMissingToken       = NewAppError(ErrCodeMissingToken, "Authorization token required", nil)
	ErrInvalidToken       = NewAppError(ErrCodeInvalidToken, "Invalid or expired token", nil)
	ErrForbidden          = NewAppError(ErrCodeForbidden, "Insufficient permissions", nil)
)
