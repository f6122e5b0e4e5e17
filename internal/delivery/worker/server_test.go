package worker

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/JeffJagr/SmartBar-v3/config"
	"github.com/JeffJagr/SmartBar-v3/internal/delivery/worker/handler"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/constants"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/service"
	mockRepo "github.com/JeffJagr/SmartBar-v3/internal/mocks/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T, cfg *config.Config) (*echo.Echo, *mockRepo.MockAuditEventRepository) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := mockRepo.NewMockAuditEventRepository(t)
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:    cfg,
		Logger:    logger,
		AuditRepo: repo,
	})

	return NewEcho(cfg, logger, pushHandler), repo
}

func developConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop

	return cfg
}

func pushBody(t *testing.T, event *service.AuditEvent, attributes map[string]string) string {
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg handler.PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/audit-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func post(e *echo.Echo, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestPush_StoresAuditEvent(t *testing.T) {
	e, repo := newTestEcho(t, developConfig())
	event := &service.AuditEvent{
		EventID:    "evt-1",
		Type:       service.AuditEventNotificationSent,
		Subject:    "c_Acme_Co_lowStock",
		Attributes: map[string]string{"message_id": "projects/p/messages/1"},
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	var saved *service.AuditEvent
	repo.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(_ context.Context, ev *service.AuditEvent) { saved = ev }).
		Return(nil)

	rec := post(e, pushBody(t, event, map[string]string{"request_id": "req-42"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, saved)
	assert.Equal(t, "evt-1", saved.EventID)
	assert.Equal(t, service.AuditEventNotificationSent, saved.Type)
	assert.Equal(t, "c_Acme_Co_lowStock", saved.Subject)
	assert.Equal(t, "req-42", saved.RequestID)
	assert.True(t, event.OccurredAt.Equal(saved.OccurredAt))
}

func TestPush_FallsBackToMessageIDAndHeaderRequestID(t *testing.T) {
	e, repo := newTestEcho(t, developConfig())

	var saved *service.AuditEvent
	repo.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(_ context.Context, ev *service.AuditEvent) { saved = ev }).
		Return(nil)

	header := http.Header{}
	header.Set("X-Request-Id", "req-from-header")
	rec := post(e, pushBody(t, &service.AuditEvent{Type: service.AuditEventPinsBackfilled}, nil), header)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, saved)
	assert.Equal(t, "msg-1", saved.EventID)
	assert.Equal(t, "req-from-header", saved.RequestID)
}

func TestPush_RejectsMalformedMessages(t *testing.T) {
	e, _ := newTestEcho(t, developConfig())

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{"message":`},
		{name: "invalid base64", body: `{"message":{"data":"%%%","messageId":"m"}}`},
		{name: "payload is not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[]")) + `","messageId":"m"}}`},
		{name: "event without type", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte(`{"event_id":"e"}`)) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(e, tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPush_StorageFailureAsksForRedelivery(t *testing.T) {
	e, repo := newTestEcho(t, developConfig())
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("deadline exceeded"))

	rec := post(e, pushBody(t, &service.AuditEvent{EventID: "evt-2", Type: service.AuditEventPinMigrated}, nil), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPush_GoogleProviderRequiresToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction
	e, _ := newTestEcho(t, cfg)

	rec := post(e, pushBody(t, &service.AuditEvent{EventID: "evt-3", Type: service.AuditEventPinMigrated}, nil), nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealth(t *testing.T) {
	e, _ := newTestEcho(t, developConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
