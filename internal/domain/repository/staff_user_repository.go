package repository

import (
	"context"

	"github.com/JeffJagr/SmartBar-v3/internal/domain/entity"
)

// StaffUserRepository defines operations on a company's staff user entries.
type StaffUserRepository interface {
	// FindCompanyUsers returns every entry under companies/{companyID}/users.
	FindCompanyUsers(ctx context.Context, companyID string) ([]*entity.CompanyStaffUser, error)

	// ApplyDedupePlan writes a dedupe plan atomically: canonical updates are merged into the
	// company users, global users and staff credentials, duplicates are deleted.
	ApplyDedupePlan(ctx context.Context, plan *entity.StaffDedupePlan) error
}
