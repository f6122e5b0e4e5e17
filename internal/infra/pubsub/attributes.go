package pubsub

import (
	"github.com/JeffJagr/SmartBar-v3/internal/domain/service"
)

// messageAttributes builds the Pub/Sub attributes used for filtering and tracing.
func messageAttributes(event *service.AuditEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.EventID,
		"event_type": event.Type,
		"subject":    event.Subject,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
