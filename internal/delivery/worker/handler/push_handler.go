package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JeffJagr/SmartBar-v3/config"
	deliverycontext "github.com/JeffJagr/SmartBar-v3/internal/delivery/context"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/constants"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/repository"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PushHandler receives audit events pushed by Pub/Sub and stores them.
type PushHandler struct {
	verifyToken func(*http.Request) error
	logger      *slog.Logger
	auditRepo   repository.AuditEventRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	AuditRepo repository.AuditEventRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:    params.Logger,
		auditRepo: params.AuditRepo,
	}

	// Only Google push requests carry an OIDC token; local development posts unsigned.
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		h.verifyToken = verifyPubSubToken
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages.
// Malformed messages get 400, storage failures 503 so Pub/Sub redelivers.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyToken != nil {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.AuditEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse audit event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	if event.EventID == "" {
		event.EventID = pushMsg.Message.MessageID
	}
	if event.EventID == "" || event.Type == "" {
		h.logger.Error("[Worker] Audit event is missing its ID or type",
			slog.String("message_id", pushMsg.Message.MessageID),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	// Keep the request ID of the call that produced the event for tracing.
	event.RequestID = h.extractRequestID(c, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", event.RequestID))
	ctx = deliverycontext.WithRequestID(ctx, event.RequestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.auditRepo.Save(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to store audit event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Audit event stored",
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
		slog.String("subject", event.Subject),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID picks the request ID from message attributes, the event, the
// push request itself, or generates a new one, in that order.
func (h *PushHandler) extractRequestID(c echo.Context, pushMsg *PubSubMessage, event *service.AuditEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestID(c); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the OIDC token Google attaches to authenticated push requests.
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
