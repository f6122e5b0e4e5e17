package errors

import (
	"net/http"
	"strings"

	"github.com/JeffJagr/SmartBar-v3/internal/errors"
)

// Callable status codes surfaced to clients.
const (
	StatusInvalidArgument  = "INVALID_ARGUMENT"
	StatusPermissionDenied = "PERMISSION_DENIED"
	StatusNotFound         = "NOT_FOUND"
	StatusInternal         = "INTERNAL"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Callable status, e.g. "PERMISSION_DENIED"
	Message() string   // Message returned to the caller
	Details() any      // Structured error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the callable status
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the caller-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns structured error information
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails adds structured error information
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy of the error carrying a different message
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is matches errors of the same status and message, so copies made by
// WithDetails still match their predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.message == t.message
}

// Predefined error types
var (
	// ErrInvalidArgument is the generic malformed-request error
	ErrInvalidArgument = NewBaseError(
		http.StatusBadRequest,
		StatusInvalidArgument,
		"Invalid argument",
		nil,
	)

	// ErrInvalidCredentials is returned for both unknown company codes and wrong PINs
	ErrInvalidCredentials = NewBaseError(
		http.StatusForbidden,
		StatusPermissionDenied,
		"Invalid company code or PIN",
		nil,
	)

	// ErrForbidden is returned when a shared secret is missing, wrong or unconfigured
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		StatusPermissionDenied,
		"Forbidden",
		nil,
	)

	// ErrNotificationFailed is returned when the messaging backend rejects a message
	ErrNotificationFailed = NewBaseError(
		http.StatusInternalServerError,
		StatusInternal,
		"Failed to send notification",
		nil,
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		StatusNotFound,
		"Not found",
		nil,
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		StatusInternal,
		"Internal error",
		nil,
	)
)

// NewNotificationFailedError embeds the backend's error detail into the message
func NewNotificationFailedError(cause error) *BaseError {
	return ErrNotificationFailed.WithMessage(ErrNotificationFailed.Message() + ": " + cause.Error())
}

// FieldError describes a single rejected input field
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError lists every missing or invalid field of a request
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError creates a validation error for the given fields
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message()
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the callable status
func (e *ValidationError) ErrorCode() string {
	return StatusInvalidArgument
}

// Message renders "companyCode and pin are required" style messages.
func (e *ValidationError) Message() string {
	var required, invalid []string
	for _, field := range e.Fields {
		if field.Reason == "required" {
			required = append(required, field.Field)
		} else {
			invalid = append(invalid, field.Field)
		}
	}

	parts := make([]string, 0, 2)
	if len(required) > 0 {
		parts = append(parts, joinFields(required)+pluralize(len(required), " is required", " are required"))
	}
	if len(invalid) > 0 {
		parts = append(parts, joinFields(invalid)+pluralize(len(invalid), " is invalid", " are invalid"))
	}
	if len(parts) == 0 {
		return ErrInvalidArgument.Message()
	}

	return strings.Join(parts, "; ")
}

// Details returns the rejected fields
func (e *ValidationError) Details() any {
	return e.Fields
}

func joinFields(fields []string) string {
	if len(fields) == 1 {
		return fields[0]
	}

	return strings.Join(fields[:len(fields)-1], ", ") + " and " + fields[len(fields)-1]
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}
