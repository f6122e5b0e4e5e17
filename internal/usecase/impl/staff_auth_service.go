// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/JeffJagr/SmartBar-v3/internal/delivery/context"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/entity"
	domainerrors "github.com/JeffJagr/SmartBar-v3/internal/domain/errors"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/repository"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/service"
	"github.com/JeffJagr/SmartBar-v3/internal/errors"
	"github.com/JeffJagr/SmartBar-v3/internal/usecase"

	"go.uber.org/fx"
)

// MigrationOutcome records what happened to a legacy credential matched during verification.
type MigrationOutcome int

const (
	// MigrationNotNeeded means the credential was matched by its hash.
	MigrationNotNeeded MigrationOutcome = iota
	// MigrationSucceeded means the plaintext PIN was replaced by its hash.
	MigrationSucceeded
	// MigrationFailed means the write failed; the caller was still authenticated.
	MigrationFailed
)

// String returns the log representation of the outcome.
func (o MigrationOutcome) String() string {
	switch o {
	case MigrationNotNeeded:
		return "not_needed"
	case MigrationSucceeded:
		return "succeeded"
	case MigrationFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// staffAuthService implements the StaffAuthUsecase interface.
type staffAuthService struct {
	credentialRepo repository.StaffCredentialRepository
	hasher         service.PinHasher
	audit          auditRecorder
	logger         *slog.Logger
}

// StaffAuthServiceParams holds dependencies for StaffAuthService, injected by Fx.
type StaffAuthServiceParams struct {
	fx.In

	CredentialRepo repository.StaffCredentialRepository
	Hasher         service.PinHasher
	Publisher      service.EventPublisher `optional:"true"`
	Logger         *slog.Logger
}

// NewStaffAuthService is the constructor for staffAuthService.
func NewStaffAuthService(params StaffAuthServiceParams) usecase.StaffAuthUsecase {
	return &staffAuthService{
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		audit:          auditRecorder{publisher: params.Publisher},
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *staffAuthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// VerifyStaffPin looks the credential up by hash first and falls back to the legacy plaintext PIN.
func (srv *staffAuthService) VerifyStaffPin(ctx context.Context, input *usecase.VerifyStaffPinInput) (*entity.StaffProfile, error) {
	in := usecase.VerifyStaffPinInput{}
	if input != nil {
		in = *input
	}
	in.Normalize()
	if err := usecase.Validate(&in); err != nil {
		return nil, err
	}

	pinHash := srv.hasher.Hash(in.CompanyCode, in.Pin)

	cred, err := srv.credentialRepo.FindByPinHash(ctx, in.CompanyCode, pinHash)
	if err == nil {
		return cred.Profile(), nil
	}
	if !errors.Is(err, repository.ErrStaffCredentialNotFound) {
		return nil, srv.lookupFailed(ctx, err)
	}

	cred, err = srv.credentialRepo.FindByLegacyPin(ctx, in.CompanyCode, in.Pin)
	if errors.Is(err, repository.ErrStaffCredentialNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, srv.lookupFailed(ctx, err)
	}

	outcome := srv.migrate(ctx, cred, pinHash)
	srv.log(ctx).Debug("Legacy PIN matched",
		slog.String("staff_id", cred.ID),
		slog.String("migration", outcome.String()),
	)

	return cred.Profile(), nil
}

// migrate replaces the plaintext PIN of cred with pinHash. Failures never reach the caller.
func (srv *staffAuthService) migrate(ctx context.Context, cred *entity.StaffCredential, pinHash string) MigrationOutcome {
	if err := srv.credentialRepo.MigratePin(ctx, cred.ID, pinHash); err != nil {
		srv.log(ctx).Warn("Failed to migrate legacy PIN",
			slog.String("staff_id", cred.ID),
			slog.Any("error", err),
		)

		return MigrationFailed
	}

	srv.audit.record(ctx, srv.log(ctx), service.AuditEventPinMigrated, cred.ID, map[string]string{
		"company_code": cred.CompanyCode,
	})

	return MigrationSucceeded
}

func (srv *staffAuthService) lookupFailed(ctx context.Context, err error) error {
	srv.log(ctx).Error("Staff credential lookup failed", slog.Any("error", err))

	return domainerrors.ErrInternalError
}
