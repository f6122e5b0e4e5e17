package usecase

import (
	"context"
	"strings"

	"github.com/JeffJagr/SmartBar-v3/internal/domain/entity"
)

// DedupeStaffInput selects the company whose staff entries are deduplicated.
type DedupeStaffInput struct {
	CompanyID   string `json:"companyId" validate:"required_without=CompanyCode"`
	CompanyCode string `json:"companyCode" validate:"required_without=CompanyID"`
	Apply       bool   `json:"apply"` // Commit the plan instead of only reporting it.
}

// Normalize trims the company ID and normalizes the company code.
func (in *DedupeStaffInput) Normalize() {
	in.CompanyID = strings.TrimSpace(in.CompanyID)
	in.CompanyCode = entity.NormalizeCompanyCode(in.CompanyCode)
}

// DedupeStaffResult reports the computed plan and whether it was committed.
type DedupeStaffResult struct {
	CompanyID string                  `json:"companyId"`
	Kept      int                     `json:"kept"` // Canonical staff credentials found for the company.
	Plan      *entity.StaffDedupePlan `json:"plan"`
	Applied   bool                    `json:"applied"`
}

// SeedStaffInput describes a staff credential to create or overwrite.
type SeedStaffInput struct {
	StaffID     string             `json:"staffId" validate:"required"`
	CompanyCode string             `json:"companyCode" validate:"required"`
	CompanyID   string             `json:"companyId"`
	Pin         string             `json:"pin" validate:"required"`
	DisplayName string             `json:"displayName"`
	Role        entity.Role        `json:"role" validate:"omitempty,oneof=staff manager"`
	Permissions entity.Permissions `json:"permissions"`
}

// Normalize trims identifiers and the PIN and uppercases the company code.
func (in *SeedStaffInput) Normalize() {
	in.StaffID = strings.TrimSpace(in.StaffID)
	in.CompanyCode = entity.NormalizeCompanyCode(in.CompanyCode)
	in.CompanyID = strings.TrimSpace(in.CompanyID)
	in.Pin = strings.TrimSpace(in.Pin)
	in.DisplayName = strings.TrimSpace(in.DisplayName)
}

// StaffAdminUsecase bundles the operator-only staff maintenance tasks.
type StaffAdminUsecase interface {
	// DedupeStaff collapses legacy per-login staff entries onto their canonical staff ID.
	// Without input.Apply nothing is written.
	DedupeStaff(ctx context.Context, input *DedupeStaffInput) (*DedupeStaffResult, error)

	// SeedStaff creates or merges a hashed staff credential. The plaintext PIN is never stored.
	SeedStaff(ctx context.Context, input *SeedStaffInput) (*entity.StaffProfile, error)
}
