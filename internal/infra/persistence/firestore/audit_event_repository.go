package firestore

import (
	"context"
	"time"

	"github.com/JeffJagr/SmartBar-v3/internal/domain/constants"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/repository"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/service"
	"github.com/JeffJagr/SmartBar-v3/internal/errors"
	"github.com/JeffJagr/SmartBar-v3/internal/infra/persistence/model"
)

// auditEventRepository implements the repository.AuditEventRepository interface.
type auditEventRepository struct {
	clients ClientProvider
	now     func() time.Time
}

// NewAuditEventRepository is the constructor for auditEventRepository.
func NewAuditEventRepository(clients ClientProvider) repository.AuditEventRepository {
	return &auditEventRepository{
		clients: clients,
		now:     time.Now,
	}
}

// Save writes the event to auditEvents/{eventId}.
func (repo *auditEventRepository) Save(ctx context.Context, event *service.AuditEvent) error {
	if event.EventID == "" {
		return errors.New("audit event has no event ID")
	}

	client, err := repo.clients.Firestore(ctx)
	if err != nil {
		return err
	}

	_, err = client.Collection(constants.CollectionAudit).Doc(event.EventID).
		Set(ctx, model.FromAuditEvent(event, repo.now().UTC()))
	if err != nil {
		return errors.Wrap(err, "failed to save audit event")
	}

	return nil
}
