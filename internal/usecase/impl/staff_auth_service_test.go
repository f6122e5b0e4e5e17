package impl

import (
	"context"
	"testing"

	"github.com/JeffJagr/SmartBar-v3/internal/domain/entity"
	domainerrors "github.com/JeffJagr/SmartBar-v3/internal/domain/errors"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/service"
	"github.com/JeffJagr/SmartBar-v3/internal/infra/auth"
	mockRepo "github.com/JeffJagr/SmartBar-v3/internal/mocks/repository"
	mockSvc "github.com/JeffJagr/SmartBar-v3/internal/mocks/service"
	"github.com/JeffJagr/SmartBar-v3/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestStaffAuthService(repo *memStaffPins, publisher service.EventPublisher) usecase.StaffAuthUsecase {
	return NewStaffAuthService(StaffAuthServiceParams{
		CredentialRepo: repo,
		Hasher:         auth.NewSHA256PinHasher(),
		Publisher:      publisher,
		Logger:         discardLogger(),
	})
}

func legacyCredential() *entity.StaffCredential {
	return &entity.StaffCredential{
		ID:           "nikita",
		CompanyCode:  "VUE123",
		CompanyID:    "1234",
		LegacyPin:    "0420",
		HasLegacyPin: true,
		DisplayName:  "Nikita",
		Role:         entity.RoleManager,
		Permissions:  entity.Permissions{"editProducts": true},
	}
}

func TestStaffAuthService_VerifyStaffPin_HashedRecord(t *testing.T) {
	hasher := auth.NewSHA256PinHasher()
	repo := newMemStaffPins(&entity.StaffCredential{
		ID:          "alex",
		CompanyCode: "VUE123",
		CompanyID:   "1234",
		PinHash:     hasher.Hash("VUE123", "7788"),
		DisplayName: "Alex",
		Role:        entity.RoleStaff,
	})
	srv := newTestStaffAuthService(repo, nil)

	profile, err := srv.VerifyStaffPin(context.Background(), &usecase.VerifyStaffPinInput{CompanyCode: " vue123", Pin: "7788 "})

	require.NoError(t, err)
	assert.Equal(t, &entity.StaffProfile{
		StaffID:     "alex",
		CompanyID:   "1234",
		DisplayName: "Alex",
		Role:        entity.RoleStaff,
		Permissions: entity.Permissions{},
	}, profile)
	assert.Zero(t, repo.writes)
}

func TestStaffAuthService_VerifyStaffPin_LegacyRecordIsMigrated(t *testing.T) {
	repo := newMemStaffPins(legacyCredential())
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishAuditEvent(mock.Anything, mock.MatchedBy(func(event *service.AuditEvent) bool {
			return event.Type == service.AuditEventPinMigrated && event.Subject == "nikita" && event.EventID != ""
		})).
		Return(nil).
		Once()
	srv := newTestStaffAuthService(repo, publisher)
	ctx := context.Background()
	input := &usecase.VerifyStaffPinInput{CompanyCode: "vue123", Pin: "0420"}

	profile, err := srv.VerifyStaffPin(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, &entity.StaffProfile{
		StaffID:     "nikita",
		CompanyID:   "1234",
		DisplayName: "Nikita",
		Role:        entity.RoleManager,
		Permissions: entity.Permissions{"editProducts": true},
	}, profile)

	stored := repo.get("nikita")
	assert.Equal(t, auth.NewSHA256PinHasher().Hash("VUE123", "0420"), stored.PinHash)
	assert.False(t, stored.HasLegacyPin)
	assert.Empty(t, stored.LegacyPin)

	again, err := srv.VerifyStaffPin(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, profile, again)
	assert.Equal(t, 1, repo.writes)
}

func TestStaffAuthService_VerifyStaffPin_DoesNotMutateInput(t *testing.T) {
	repo := newMemStaffPins(legacyCredential())
	srv := newTestStaffAuthService(repo, nil)
	input := &usecase.VerifyStaffPinInput{CompanyCode: " vue123 ", Pin: " 0420 "}

	_, err := srv.VerifyStaffPin(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, " vue123 ", input.CompanyCode)
	assert.Equal(t, " 0420 ", input.Pin)
}

func TestStaffAuthService_VerifyStaffPin_MigrationFailureStillAuthenticates(t *testing.T) {
	repo := newMemStaffPins(legacyCredential())
	repo.migrateErr = errors.New("deadline exceeded")
	srv := newTestStaffAuthService(repo, nil)

	profile, err := srv.VerifyStaffPin(context.Background(), &usecase.VerifyStaffPinInput{CompanyCode: "VUE123", Pin: "0420"})

	require.NoError(t, err)
	assert.Equal(t, "nikita", profile.StaffID)
	stored := repo.get("nikita")
	assert.Empty(t, stored.PinHash)
	assert.Equal(t, "0420", stored.LegacyPin)
}

func TestStaffAuthService_VerifyStaffPin_AuditFailureIsIgnored(t *testing.T) {
	repo := newMemStaffPins(legacyCredential())
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(errors.New("topic not found"))
	srv := newTestStaffAuthService(repo, publisher)

	profile, err := srv.VerifyStaffPin(context.Background(), &usecase.VerifyStaffPinInput{CompanyCode: "VUE123", Pin: "0420"})

	require.NoError(t, err)
	assert.Equal(t, "nikita", profile.StaffID)
}

func TestStaffAuthService_VerifyStaffPin_InvalidCredentialsAreIndistinguishable(t *testing.T) {
	repo := newMemStaffPins(legacyCredential())
	srv := newTestStaffAuthService(repo, nil)
	ctx := context.Background()

	_, wrongPinErr := srv.VerifyStaffPin(ctx, &usecase.VerifyStaffPinInput{CompanyCode: "VUE123", Pin: "9999"})
	_, unknownCompanyErr := srv.VerifyStaffPin(ctx, &usecase.VerifyStaffPinInput{CompanyCode: "NOPE", Pin: "0420"})

	require.ErrorIs(t, wrongPinErr, domainerrors.ErrInvalidCredentials)
	require.ErrorIs(t, unknownCompanyErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, wrongPinErr, unknownCompanyErr)
	assert.Equal(t, "Invalid company code or PIN", wrongPinErr.Error())
	assert.Zero(t, repo.writes)
}

func TestStaffAuthService_VerifyStaffPin_PinIsCompanyScoped(t *testing.T) {
	other := legacyCredential()
	other.ID = "sam"
	other.CompanyCode = "BAR999"
	repo := newMemStaffPins(other)
	srv := newTestStaffAuthService(repo, nil)

	_, err := srv.VerifyStaffPin(context.Background(), &usecase.VerifyStaffPinInput{CompanyCode: "VUE123", Pin: "0420"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestStaffAuthService_VerifyStaffPin_MissingFields(t *testing.T) {
	srv := newTestStaffAuthService(newMemStaffPins(), nil)

	_, err := srv.VerifyStaffPin(context.Background(), &usecase.VerifyStaffPinInput{CompanyCode: "   "})

	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.StatusInvalidArgument, appErr.ErrorCode())
	assert.Equal(t, "companyCode and pin are required", appErr.Message())

	_, err = srv.VerifyStaffPin(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, "companyCode and pin are required", err.Error())
}

func TestStaffAuthService_VerifyStaffPin_LookupError(t *testing.T) {
	repo := mockRepo.NewMockStaffCredentialRepository(t)
	repo.EXPECT().
		FindByPinHash(mock.Anything, "VUE123", mock.AnythingOfType("string")).
		Return(nil, errors.New("firestore unavailable"))
	srv := NewStaffAuthService(StaffAuthServiceParams{
		CredentialRepo: repo,
		Hasher:         auth.NewSHA256PinHasher(),
		Logger:         discardLogger(),
	})

	_, err := srv.VerifyStaffPin(context.Background(), &usecase.VerifyStaffPinInput{CompanyCode: "VUE123", Pin: "0420"})

	require.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestMigrationOutcome_String(t *testing.T) {
	assert.Equal(t, "not_needed", MigrationNotNeeded.String())
	assert.Equal(t, "succeeded", MigrationSucceeded.String())
	assert.Equal(t, "failed", MigrationFailed.String())
	assert.Equal(t, "unknown", MigrationOutcome(42).String())
}
