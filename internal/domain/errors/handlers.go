package errors

import "github.com/JeffJagr/SmartBar-v3/internal/errors"

// ErrorInfo is the error object of the callable protocol
type ErrorInfo struct {
	Status  string `json:"status"`            // Callable status, e.g. "PERMISSION_DENIED"
	Message string `json:"message"`           // Caller-facing message
	Details any    `json:"details,omitempty"` // Structured information (optional)
}

// ErrorResponse is the callable protocol error envelope
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
}

// SuccessResponse is the callable protocol success envelope
type SuccessResponse struct {
	Result any `json:"result"`
}

// AsAppError extracts an AppError from err's tree
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}
