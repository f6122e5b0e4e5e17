package model

import (
	"time"

	"github.com/JeffJagr/SmartBar-v3/internal/domain/service"
)

// FromAuditEvent encodes an audit event as an auditEvents document.
func FromAuditEvent(event *service.AuditEvent, receivedAt time.Time) map[string]any {
	attributes := make(map[string]any, len(event.Attributes))
	for key, value := range event.Attributes {
		attributes[key] = value
	}

	return map[string]any{
		"type":       event.Type,
		"subject":    event.Subject,
		"requestId":  event.RequestID,
		"attributes": attributes,
		"occurredAt": event.OccurredAt,
		"receivedAt": receivedAt,
	}
}
