package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	deliverycontext "github.com/JeffJagr/SmartBar-v3/internal/delivery/context"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/constants"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/entity"
	domainerrors "github.com/JeffJagr/SmartBar-v3/internal/domain/errors"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/repository"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/service"
	"github.com/JeffJagr/SmartBar-v3/internal/usecase"

	"go.uber.org/fx"
)

// pinBackfillService implements the PinBackfillUsecase interface.
type pinBackfillService struct {
	credentialRepo repository.StaffCredentialRepository
	hasher         service.PinHasher
	secrets        service.SecretVerifier
	audit          auditRecorder
	logger         *slog.Logger
}

// PinBackfillServiceParams holds dependencies for PinBackfillService, injected by Fx.
type PinBackfillServiceParams struct {
	fx.In

	CredentialRepo repository.StaffCredentialRepository
	Hasher         service.PinHasher
	Secrets        service.SecretVerifier
	Publisher      service.EventPublisher `optional:"true"`
	Logger         *slog.Logger
}

// NewPinBackfillService is the constructor for pinBackfillService.
func NewPinBackfillService(params PinBackfillServiceParams) usecase.PinBackfillUsecase {
	return &pinBackfillService{
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		secrets:        params.Secrets,
		audit:          auditRecorder{publisher: params.Publisher},
		logger:         params.Logger,
	}
}

func (srv *pinBackfillService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BackfillPinHashes checks the backfill token before running a full pass.
func (srv *pinBackfillService) BackfillPinHashes(ctx context.Context, input *usecase.BackfillInput) (*usecase.BackfillResult, error) {
	var token string
	if input != nil {
		token = input.Token
	}
	if !srv.secrets.Verify(service.ScopeBackfill, token) {
		return nil, domainerrors.ErrForbidden
	}

	return srv.BackfillAll(ctx)
}

// BackfillAll hashes every plaintext PIN and strips lingering plaintext fields.
// Per-record write failures are logged and skipped; a failed scan aborts the run.
func (srv *pinBackfillService) BackfillAll(ctx context.Context) (*usecase.BackfillResult, error) {
	logger := srv.log(ctx)
	result := &usecase.BackfillResult{}

	err := srv.credentialRepo.ForEach(ctx, func(cred *entity.StaffCredential) error {
		if !cred.HasCompanyCode() {
			return nil
		}

		switch {
		case cred.NeedsMigration():
			pinHash := srv.hasher.Hash(cred.CompanyCode, cred.LegacyPin)
			if err := srv.credentialRepo.MigratePin(ctx, cred.ID, pinHash); err != nil {
				logger.Warn("Failed to backfill PIN hash",
					slog.String("staff_id", cred.ID),
					slog.Any("error", err),
				)

				return nil
			}
			result.UpdatedCount++

		case cred.NeedsCleanup():
			if err := srv.credentialRepo.RemoveLegacyPin(ctx, cred.ID); err != nil {
				logger.Warn("Failed to remove plaintext PIN",
					slog.String("staff_id", cred.ID),
					slog.Any("error", err),
				)

				return nil
			}
			result.CleanedCount++
		}

		return nil
	})
	if err != nil {
		logger.Error("Staff credential scan failed",
			slog.Int("updated", result.UpdatedCount),
			slog.Int("cleaned", result.CleanedCount),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrInternalError
	}

	result.Message = fmt.Sprintf("Backfilled %d staffPins; cleaned %d", result.UpdatedCount, result.CleanedCount)
	logger.Info(result.Message)

	srv.audit.record(ctx, logger, service.AuditEventPinsBackfilled, constants.CollectionStaffPins, map[string]string{
		"updated_count": strconv.Itoa(result.UpdatedCount),
		"cleaned_count": strconv.Itoa(result.CleanedCount),
	})

	return result, nil
}
