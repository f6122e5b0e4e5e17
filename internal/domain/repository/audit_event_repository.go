package repository

import (
	"context"

	"github.com/JeffJagr/SmartBar-v3/internal/domain/service"
)

// AuditEventRepository stores audit events delivered by the message queue.
type AuditEventRepository interface {
	// Save writes the event keyed by its event ID. Redelivered events overwrite themselves.
	Save(ctx context.Context, event *service.AuditEvent) error
}
