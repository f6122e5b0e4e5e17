package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "github.com/JeffJagr/SmartBar-v3/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindTarget struct {
	CompanyCode LooseString    `json:"companyCode"`
	Pin         LooseString    `json:"pin"`
	Data        map[string]any `json:"data"`
}

func newContext(body, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/verify_staff_pin", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestBind(t *testing.T) {
	c, _ := newContext(`{"data":{"companyCode":"vue123","pin":420,"data":{"n":12345678901234567890}}}`, echo.MIMEApplicationJSON)

	var target bindTarget
	require.NoError(t, Bind(c, &target))

	assert.Equal(t, LooseString("vue123"), target.CompanyCode)
	assert.Equal(t, "420", target.Pin.String())
	assert.Equal(t, json.Number("12345678901234567890"), target.Data["n"])
}

func TestBind_MissingOrNullData(t *testing.T) {
	for _, body := range []string{`{}`, `{"data":null}`, ``} {
		c, _ := newContext(body, echo.MIMEApplicationJSON)

		var target bindTarget
		require.NoError(t, Bind(c, &target), body)
		assert.Equal(t, bindTarget{}, target)
	}
}

func TestBind_Rejects(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		wantMsg     string
	}{
		{name: "not json", body: `companyCode=VUE123`, contentType: echo.MIMEApplicationForm, wantMsg: "Request body must be application/json"},
		{name: "no content type", body: `{"data":{}}`, contentType: "", wantMsg: "Request body must be application/json"},
		{name: "malformed", body: `{"data":`, contentType: echo.MIMEApplicationJSON, wantMsg: "Invalid request body"},
		{name: "object pin", body: `{"data":{"pin":{"a":1}}}`, contentType: echo.MIMEApplicationJSON, wantMsg: "Invalid request data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(tt.body, tt.contentType)

			var target bindTarget
			err := Bind(c, &target)

			appErr, ok := domainerrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, domainerrors.StatusInvalidArgument, appErr.ErrorCode())
			assert.Equal(t, tt.wantMsg, appErr.Message())
		})
	}
}

func TestHandleAppError(t *testing.T) {
	c, rec := newContext(``, "")

	require.NoError(t, HandleAppError(c, domainerrors.NewValidationError(
		domainerrors.FieldError{Field: "companyCode", Reason: "required"},
		domainerrors.FieldError{Field: "pin", Reason: "required"},
	)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"status":"INVALID_ARGUMENT","message":"companyCode and pin are required",
		"details":[{"field":"companyCode","reason":"required"},{"field":"pin","reason":"required"}]}}`, rec.Body.String())
}

func TestHandleAppError_HidesDetailsOfForbidden(t *testing.T) {
	c, rec := newContext(``, "")

	require.NoError(t, HandleAppError(c, domainerrors.ErrForbidden.WithDetails("secret mismatch")))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":{"status":"PERMISSION_DENIED","message":"Forbidden"}}`, rec.Body.String())
}

func TestSuccess(t *testing.T) {
	c, rec := newContext(``, "")

	require.NoError(t, Success(c, map[string]string{"topic": "c_1234_lowStock"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"result":{"topic":"c_1234_lowStock"}}`, rec.Body.String())
}
