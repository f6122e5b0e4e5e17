package usecase

import (
	"context"
	"strings"

	"github.com/JeffJagr/SmartBar-v3/internal/domain/entity"
)

// VerifyStaffPinInput carries the credentials of a PIN login.
type VerifyStaffPinInput struct {
	CompanyCode string `json:"companyCode" validate:"required"`
	Pin         string `json:"pin" validate:"required"`
}

// Normalize trims both fields and uppercases the company code.
func (in *VerifyStaffPinInput) Normalize() {
	in.CompanyCode = entity.NormalizeCompanyCode(in.CompanyCode)
	in.Pin = strings.TrimSpace(in.Pin)
}

// StaffAuthUsecase defines the interface for staff PIN authentication
type StaffAuthUsecase interface {
	// VerifyStaffPin authenticates a staff member by company code and PIN and returns their profile.
	// Unknown companies and wrong PINs fail identically. A match found through a legacy plaintext
	// PIN is migrated to the hashed form on the way out.
	VerifyStaffPin(ctx context.Context, input *VerifyStaffPinInput) (*entity.StaffProfile, error)
}
