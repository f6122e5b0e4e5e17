package model

import (
	"testing"
	"time"

	"github.com/JeffJagr/SmartBar-v3/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func TestFromAuditEvent(t *testing.T) {
	occurred := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	received := occurred.Add(time.Second)

	doc := FromAuditEvent(&service.AuditEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		Type:       service.AuditEventPinMigrated,
		Subject:    "staff-1",
		Attributes: map[string]string{"company_code": "ACME"},
		OccurredAt: occurred,
	}, received)

	assert.Equal(t, map[string]any{
		"type":       service.AuditEventPinMigrated,
		"subject":    "staff-1",
		"requestId":  "req-1",
		"attributes": map[string]any{"company_code": "ACME"},
		"occurredAt": occurred,
		"receivedAt": received,
	}, doc)
}
