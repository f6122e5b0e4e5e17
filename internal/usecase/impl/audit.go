package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "github.com/JeffJagr/SmartBar-v3/internal/delivery/context"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/service"

	"github.com/google/uuid"
)

// auditRecorder publishes best-effort audit events. Publish failures are logged and dropped.
type auditRecorder struct {
	publisher service.EventPublisher
}

func (r auditRecorder) record(ctx context.Context, logger *slog.Logger, eventType, subject string, attributes map[string]string) {
	if r.publisher == nil {
		return
	}

	event := &service.AuditEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		Subject:    subject,
		Attributes: attributes,
		OccurredAt: time.Now().UTC(),
	}

	if err := r.publisher.PublishAuditEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish audit event",
			slog.String("event_type", eventType),
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}
