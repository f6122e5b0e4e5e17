package service

import (
	"context"
	"time"
)

// Audit event types
const (
	AuditEventPinMigrated      = "staff.pin.migrated"
	AuditEventPinsBackfilled   = "staff.pins.backfilled"
	AuditEventNotificationSent = "notification.sent"
)

// AuditEvent records a state change or outbound message for later inspection.
// Events never carry PINs or digests.
type AuditEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	EventID    string            `json:"event_id"`
	Type       string            `json:"type"`
	Subject    string            `json:"subject"` // Staff ID, topic or collection the event is about
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing audit events to a message queue
type EventPublisher interface {
	// PublishAuditEvent publishes an audit event
	PublishAuditEvent(ctx context.Context, event *AuditEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
