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

// staffAdminService implements the StaffAdminUsecase interface.
type staffAdminService struct {
	credentialRepo repository.StaffCredentialRepository
	companyRepo    repository.CompanyRepository
	staffUserRepo  repository.StaffUserRepository
	hasher         service.PinHasher
	logger         *slog.Logger
}

// StaffAdminServiceParams holds dependencies for StaffAdminService, injected by Fx.
type StaffAdminServiceParams struct {
	fx.In

	CredentialRepo repository.StaffCredentialRepository
	CompanyRepo    repository.CompanyRepository
	StaffUserRepo  repository.StaffUserRepository
	Hasher         service.PinHasher
	Logger         *slog.Logger
}

// NewStaffAdminService is the constructor for staffAdminService.
func NewStaffAdminService(params StaffAdminServiceParams) usecase.StaffAdminUsecase {
	return &staffAdminService{
		credentialRepo: params.CredentialRepo,
		companyRepo:    params.CompanyRepo,
		staffUserRepo:  params.StaffUserRepo,
		hasher:         params.Hasher,
		logger:         params.Logger,
	}
}

func (srv *staffAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DedupeStaff computes the dedupe plan for one company and commits it when asked to.
func (srv *staffAdminService) DedupeStaff(ctx context.Context, input *usecase.DedupeStaffInput) (*usecase.DedupeStaffResult, error) {
	in := usecase.DedupeStaffInput{}
	if input != nil {
		in = *input
	}
	in.Normalize()
	if err := usecase.Validate(&in); err != nil {
		return nil, err
	}

	companyID, err := srv.resolveCompanyID(ctx, &in)
	if err != nil {
		return nil, err
	}

	creds, err := srv.credentialRepo.FindByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	users, err := srv.staffUserRepo.FindCompanyUsers(ctx, companyID)
	if err != nil {
		return nil, err
	}

	plan := planStaffDedupe(companyID, creds, users)
	result := &usecase.DedupeStaffResult{
		CompanyID: companyID,
		Kept:      len(creds),
		Plan:      plan,
	}

	logger := srv.log(ctx).With(slog.String("company_id", companyID))
	logger.Info("Staff dedupe planned",
		slog.Int("kept", result.Kept),
		slog.Int("updates", len(plan.Updates)),
		slog.Int("duplicates", len(plan.Duplicates)),
	)

	if !in.Apply || plan.IsEmpty() {
		return result, nil
	}

	if err := srv.staffUserRepo.ApplyDedupePlan(ctx, plan); err != nil {
		return nil, err
	}
	result.Applied = true
	logger.Info("Staff dedupe applied")

	return result, nil
}

func (srv *staffAdminService) resolveCompanyID(ctx context.Context, in *usecase.DedupeStaffInput) (string, error) {
	if in.CompanyID != "" {
		return in.CompanyID, nil
	}

	companyID, err := srv.companyRepo.FindIDByCode(ctx, in.CompanyCode)
	if errors.Is(err, repository.ErrCompanyNotFound) {
		return "", domainerrors.ErrNotFound.WithMessage("Company not found for code " + in.CompanyCode)
	}
	if err != nil {
		return "", err
	}

	return companyID, nil
}

// SeedStaff stores a hashed credential for the given staff member.
func (srv *staffAdminService) SeedStaff(ctx context.Context, input *usecase.SeedStaffInput) (*entity.StaffProfile, error) {
	in := usecase.SeedStaffInput{}
	if input != nil {
		in = *input
	}
	in.Normalize()
	if err := usecase.Validate(&in); err != nil {
		return nil, err
	}

	cred := &entity.StaffCredential{
		ID:          in.StaffID,
		CompanyCode: in.CompanyCode,
		CompanyID:   in.CompanyID,
		PinHash:     srv.hasher.Hash(in.CompanyCode, in.Pin),
		DisplayName: in.DisplayName,
		Role:        in.Role.OrDefault(),
		Permissions: in.Permissions.Clone(),
	}

	if err := srv.credentialRepo.Save(ctx, cred); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Staff credential seeded",
		slog.String("staff_id", cred.ID),
		slog.String("company_code", cred.CompanyCode),
	)

	return cred.Profile(), nil
}

// planStaffDedupe decides which company user entries are rewritten or removed.
// Entries whose ID is a staff credential are canonical and get missing profile data filled in
// from the credential. Other entries last signed in as a canonical staff member are duplicates;
// their granted permissions are folded into the canonical update.
func planStaffDedupe(companyID string, creds []*entity.StaffCredential, users []*entity.CompanyStaffUser) *entity.StaffDedupePlan {
	canonical := make(map[string]*entity.StaffCredential, len(creds))
	for _, cred := range creds {
		canonical[cred.ID] = cred
	}

	plan := &entity.StaffDedupePlan{
		CompanyID: companyID,
		Updates:   make(map[string]entity.StaffUserPatch),
	}

	for _, user := range users {
		if cred, ok := canonical[user.ID]; ok {
			patch := entity.StaffUserPatch{
				Role:        firstRole(user.Role, cred.Role),
				DisplayName: firstNonEmpty(user.DisplayName, cred.DisplayName, entity.DefaultDisplayName),
				Permissions: user.Permissions.MergeGranted(cred.Permissions),
			}
			if patch.Role != user.Role || patch.DisplayName != user.DisplayName || !patch.Permissions.Equal(user.Permissions) {
				addPatch(plan, user.ID, patch)
			}

			continue
		}

		cred, ok := canonical[user.LastAuthUID]
		if !ok {
			continue
		}

		plan.Duplicates = append(plan.Duplicates, entity.DuplicateStaffUser{
			ID:          user.ID,
			CanonicalID: cred.ID,
			DisplayName: user.DisplayName,
			Role:        user.Role,
		})
		addPatch(plan, cred.ID, entity.StaffUserPatch{
			Role:        firstRole(cred.Role, user.Role),
			DisplayName: firstNonEmpty(cred.DisplayName, user.DisplayName, entity.DefaultDisplayName),
			Permissions: cred.Permissions.MergeGranted(user.Permissions),
		})
	}

	return plan
}

// addPatch records patch for id. A later patch wins on role and display name;
// granted permissions accumulate.
func addPatch(plan *entity.StaffDedupePlan, id string, patch entity.StaffUserPatch) {
	if existing, ok := plan.Updates[id]; ok {
		patch.Permissions = existing.Permissions.MergeGranted(patch.Permissions)
	}
	plan.Updates[id] = patch
}

func firstRole(roles ...entity.Role) entity.Role {
	for _, role := range roles {
		if role != "" {
			return role
		}
	}

	return entity.RoleStaff
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
