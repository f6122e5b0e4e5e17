package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/JeffJagr/SmartBar-v3/config"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/entity"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/repository"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/service"
	"github.com/JeffJagr/SmartBar-v3/internal/infra/auth"
)

const (
	testBackfillToken = "backfill-secret"
	testNotifyToken   = "notify-secret"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testConfig() *config.Config {
	return &config.Config{
		Backfill: &config.SharedSecretConfig{Token: testBackfillToken},
		Notify:   &config.NotifyConfig{Token: testNotifyToken, DefaultTitle: "SmartBar Alert"},
	}
}

func testSecrets() service.SecretVerifier {
	return auth.NewSharedSecretVerifier(testConfig())
}

// memStaffPins is an in-memory staffPins collection with the query semantics of the document store.
type memStaffPins struct {
	mu      sync.Mutex
	order   []string
	records map[string]*entity.StaffCredential

	migrateErr error
	removeErr  error
	scanErr    error
	writes     int
}

var _ repository.StaffCredentialRepository = (*memStaffPins)(nil)

func newMemStaffPins(creds ...*entity.StaffCredential) *memStaffPins {
	m := &memStaffPins{records: make(map[string]*entity.StaffCredential)}
	for _, cred := range creds {
		m.put(cred)
	}

	return m
}

func (m *memStaffPins) put(cred *entity.StaffCredential) {
	if _, ok := m.records[cred.ID]; !ok {
		m.order = append(m.order, cred.ID)
	}
	stored := *cred
	m.records[cred.ID] = &stored
}

func (m *memStaffPins) get(id string) *entity.StaffCredential {
	m.mu.Lock()
	defer m.mu.Unlock()

	cred, ok := m.records[id]
	if !ok {
		return nil
	}
	copied := *cred

	return &copied
}

func (m *memStaffPins) find(match func(*entity.StaffCredential) bool) (*entity.StaffCredential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range m.order {
		if cred := m.records[id]; match(cred) {
			copied := *cred

			return &copied, nil
		}
	}

	return nil, repository.ErrStaffCredentialNotFound
}

func (m *memStaffPins) FindByPinHash(_ context.Context, companyCode, pinHash string) (*entity.StaffCredential, error) {
	return m.find(func(c *entity.StaffCredential) bool {
		return c.CompanyCode == companyCode && c.PinHash != "" && c.PinHash == pinHash
	})
}

func (m *memStaffPins) FindByLegacyPin(_ context.Context, companyCode, pin string) (*entity.StaffCredential, error) {
	return m.find(func(c *entity.StaffCredential) bool {
		return c.CompanyCode == companyCode && c.HasLegacyPin && c.LegacyPin == pin
	})
}

func (m *memStaffPins) FindByCompanyID(_ context.Context, companyID string) ([]*entity.StaffCredential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*entity.StaffCredential
	for _, id := range m.order {
		if cred := m.records[id]; cred.CompanyID == companyID {
			copied := *cred
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (m *memStaffPins) MigratePin(_ context.Context, id, pinHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.migrateErr != nil {
		return m.migrateErr
	}
	cred := m.records[id]
	cred.PinHash = pinHash
	cred.LegacyPin = ""
	cred.HasLegacyPin = false
	m.writes++

	return nil
}

func (m *memStaffPins) RemoveLegacyPin(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.removeErr != nil {
		return m.removeErr
	}
	cred := m.records[id]
	cred.LegacyPin = ""
	cred.HasLegacyPin = false
	m.writes++

	return nil
}

func (m *memStaffPins) ForEach(_ context.Context, fn func(cred *entity.StaffCredential) error) error {
	if m.scanErr != nil {
		return m.scanErr
	}

	m.mu.Lock()
	snapshot := make([]entity.StaffCredential, 0, len(m.order))
	for _, id := range m.order {
		snapshot = append(snapshot, *m.records[id])
	}
	m.mu.Unlock()

	for i := range snapshot {
		if err := fn(&snapshot[i]); err != nil {
			return err
		}
	}

	return nil
}

func (m *memStaffPins) Save(_ context.Context, cred *entity.StaffCredential) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.put(cred)
	m.writes++

	return nil
}
