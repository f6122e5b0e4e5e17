// Package response writes the callable protocol envelopes.
package response

import (
	"bytes"
	"encoding/json"
	"mime"
	"net/http"

	domainerrors "github.com/JeffJagr/SmartBar-v3/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Request is the callable protocol request envelope.
type Request struct {
	Data json.RawMessage `json:"data"`
}

// Success returns a successful response
func Success(c echo.Context, result any) error {
	return c.JSON(http.StatusOK, domainerrors.SuccessResponse{
		Result: result,
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, status string, message string, details any) error {
	// Details should not be included for 5xx errors or authorization errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Status:  status,
			Message: message,
			Details: details,
		},
	})
}

// AppError writes appErr as a callable error
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses.
// Anything else is returned for the error middleware to log.
func HandleAppError(c echo.Context, err error) error {
	if appErr, ok := domainerrors.AsAppError(err); ok {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}

// Bind decodes the data field of a callable request into v.
// A missing body, missing data or null data leaves v untouched.
func Bind(c echo.Context, v any) error {
	httpReq := c.Request()
	if httpReq.ContentLength != 0 && !isJSON(httpReq.Header.Get(echo.HeaderContentType)) {
		return domainerrors.ErrInvalidArgument.WithMessage("Request body must be application/json")
	}

	var req Request
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return domainerrors.ErrInvalidArgument.WithMessage("Invalid request body")
	}

	if len(req.Data) == 0 || bytes.Equal(req.Data, []byte("null")) {
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(req.Data))
	decoder.UseNumber()
	if err := decoder.Decode(v); err != nil {
		return domainerrors.ErrInvalidArgument.WithMessage("Invalid request data")
	}

	return nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)

	return err == nil && mediaType == echo.MIMEApplicationJSON
}
