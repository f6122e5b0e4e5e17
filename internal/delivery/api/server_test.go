package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JeffJagr/SmartBar-v3/config"
	"github.com/JeffJagr/SmartBar-v3/internal/delivery/api/router"
	"github.com/JeffJagr/SmartBar-v3/internal/delivery/api/router/handler"
	deliverycontext "github.com/JeffJagr/SmartBar-v3/internal/delivery/context"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/entity"
	domainerrors "github.com/JeffJagr/SmartBar-v3/internal/domain/errors"
	mockUC "github.com/JeffJagr/SmartBar-v3/internal/mocks/usecase"
	"github.com/JeffJagr/SmartBar-v3/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type testServer struct {
	echo           *echo.Echo
	staffAuthUC    *mockUC.MockStaffAuthUsecase
	backfillUC     *mockUC.MockPinBackfillUsecase
	notificationUC *mockUC.MockCompanyNotificationUsecase
}

func newTestServer(t *testing.T) *testServer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	ts := &testServer{
		staffAuthUC:    mockUC.NewMockStaffAuthUsecase(t),
		backfillUC:     mockUC.NewMockPinBackfillUsecase(t),
		notificationUC: mockUC.NewMockCompanyNotificationUsecase(t),
	}
	ts.echo = NewEcho(cfg, logger, router.RouterParams{
		StaffHandler: handler.NewStaffHandler(handler.StaffHandlerParams{
			StaffAuthUC: ts.staffAuthUC,
			BackfillUC:  ts.backfillUC,
			Logger:      logger,
		}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{
			NotificationUC: ts.notificationUC,
			Logger:         logger,
		}),
	})

	return ts
}

func (ts *testServer) call(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_VerifyStaffPin(t *testing.T) {
	ts := newTestServer(t)
	ts.staffAuthUC.EXPECT().
		VerifyStaffPin(mock.Anything, &usecase.VerifyStaffPinInput{CompanyCode: "vue123", Pin: "420"}).
		Return(&entity.StaffProfile{
			StaffID:     "nikita",
			CompanyID:   "1234",
			DisplayName: "Nikita",
			Role:        entity.RoleManager,
			Permissions: entity.Permissions{"editProducts": true},
		}, nil)

	rec := ts.call(http.MethodPost, "/verify_staff_pin", `{"data":{"companyCode":"vue123","pin":420}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"result":{"staffId":"nikita","companyId":"1234","displayName":"Nikita","role":"manager","permissions":{"editProducts":true}}}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_VerifyStaffPin_InvalidCredentials(t *testing.T) {
	ts := newTestServer(t)
	ts.staffAuthUC.EXPECT().VerifyStaffPin(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := ts.call(http.MethodPost, "/verify_staff_pin", `{"data":{"companyCode":"VUE123","pin":"0000"}}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":{"status":"PERMISSION_DENIED","message":"Invalid company code or PIN"}}`, rec.Body.String())
}

func TestServer_BackfillPinHashes(t *testing.T) {
	ts := newTestServer(t)
	ts.backfillUC.EXPECT().
		BackfillPinHashes(mock.Anything, &usecase.BackfillInput{Token: "secret"}).
		Return(&usecase.BackfillResult{UpdatedCount: 2, CleanedCount: 1, Message: "Backfilled 2 staffPins; cleaned 1"}, nil)

	rec := ts.call(http.MethodPost, "/backfill_staff_pin_hashes", `{"data":{"token":"secret"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"result":{"updatedCount":2,"cleanedCount":1,"message":"Backfilled 2 staffPins; cleaned 1"}}`, rec.Body.String())
}

func TestServer_BackfillPinHashes_NullData(t *testing.T) {
	ts := newTestServer(t)
	ts.backfillUC.EXPECT().
		BackfillPinHashes(mock.Anything, &usecase.BackfillInput{}).
		Return(nil, domainerrors.ErrForbidden)

	rec := ts.call(http.MethodPost, "/backfill_staff_pin_hashes", `{"data":null}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":{"status":"PERMISSION_DENIED","message":"Forbidden"}}`, rec.Body.String())
}

func TestServer_SendCompanyNotification(t *testing.T) {
	ts := newTestServer(t)
	ts.notificationUC.EXPECT().
		SendCompanyNotification(mock.Anything, mock.MatchedBy(func(in *usecase.SendCompanyNotificationInput) bool {
			return in.Token == "n" && in.CompanyID == "Acme Co" && in.Event == "lowStock" && in.Data["productId"] == "gin"
		})).
		Return(&usecase.SendCompanyNotificationResult{MessageID: "m-1", Topic: "c_Acme_Co_lowStock"}, nil)

	rec := ts.call(http.MethodPost, "/send_company_notification",
		`{"data":{"token":"n","companyId":"Acme Co","event":"lowStock","data":{"productId":"gin"}}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"result":{"messageId":"m-1","topic":"c_Acme_Co_lowStock"}}`, rec.Body.String())
}

func TestServer_SendCompanyNotification_ValidationDetails(t *testing.T) {
	ts := newTestServer(t)
	ts.notificationUC.EXPECT().
		SendCompanyNotification(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "event", Reason: "required"}))

	rec := ts.call(http.MethodPost, "/send_company_notification", `{"data":{"token":"n","companyId":"1234"}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"status":"INVALID_ARGUMENT","message":"event is required","details":[{"field":"event","reason":"required"}]}}`, rec.Body.String())
}

func TestServer_UnhandledErrorIsHidden(t *testing.T) {
	ts := newTestServer(t)
	ts.notificationUC.EXPECT().
		SendCompanyNotification(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset by peer"))

	rec := ts.call(http.MethodPost, "/send_company_notification", `{"data":{}}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"status":"INTERNAL","message":"Internal error"}}`, rec.Body.String())
}

func TestServer_TransportErrors(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantCode   int
		wantStatus string
	}{
		{name: "malformed body", method: http.MethodPost, path: "/verify_staff_pin", body: `{"data":`, wantCode: http.StatusBadRequest, wantStatus: "INVALID_ARGUMENT"},
		{name: "unknown function", method: http.MethodPost, path: "/delete_everything", body: `{}`, wantCode: http.StatusNotFound, wantStatus: "NOT_FOUND"},
		{name: "body too large", method: http.MethodPost, path: "/verify_staff_pin", body: `{"data":{"pin":"` + strings.Repeat("1", 2048) + `"}}`, wantCode: http.StatusRequestEntityTooLarge, wantStatus: "INVALID_ARGUMENT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)

			rec := ts.call(tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), `"status":"`+tt.wantStatus+`"`)
		})
	}
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.call(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
