package middleware

import (
	"log/slog"
	"net/http"

	"github.com/JeffJagr/SmartBar-v3/internal/delivery/api/response"
	deliverycontext "github.com/JeffJagr/SmartBar-v3/internal/delivery/context"
	domainerrors "github.com/JeffJagr/SmartBar-v3/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Attempt to parse as AppError
	if appErr, ok := domainerrors.AsAppError(err); ok {
		_ = response.AppError(c, appErr)

		return
	}

	// Routing, body limit and other framework errors
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, statusForHTTPCode(httpErr.Code), message, nil)

		return
	}

	// Default to internal error, log the error but return a generic message (do not expose internal details)
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.AppError(c, domainerrors.ErrInternalError)
}

// statusForHTTPCode maps framework HTTP errors onto callable statuses.
func statusForHTTPCode(code int) string {
	switch code {
	case http.StatusForbidden, http.StatusUnauthorized:
		return domainerrors.StatusPermissionDenied
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return domainerrors.StatusNotFound
	default:
		return domainerrors.StatusInvalidArgument
	}
}
