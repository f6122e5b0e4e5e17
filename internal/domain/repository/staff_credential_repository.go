// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/JeffJagr/SmartBar-v3/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for staff credential persistence.
var (
	// ErrStaffCredentialNotFound is returned when no credential matches a lookup.
	ErrStaffCredentialNotFound = errors.New("staff credential not found")
)

// StaffCredentialRepository defines the document-store operations on staff PIN credentials.
type StaffCredentialRepository interface {
	// FindByPinHash returns the first credential of the company whose digest matches.
	FindByPinHash(ctx context.Context, companyCode, pinHash string) (*entity.StaffCredential, error)

	// FindByLegacyPin returns the first credential of the company whose plaintext PIN matches exactly.
	FindByLegacyPin(ctx context.Context, companyCode, pin string) (*entity.StaffCredential, error)

	// FindByCompanyID returns every credential belonging to a company.
	FindByCompanyID(ctx context.Context, companyID string) ([]*entity.StaffCredential, error)

	// MigratePin sets pinHash and deletes the plaintext PIN in one merge write.
	MigratePin(ctx context.Context, id, pinHash string) error

	// RemoveLegacyPin deletes a lingering plaintext PIN from an already migrated credential.
	RemoveLegacyPin(ctx context.Context, id string) error

	// ForEach streams every credential of the collection to fn, stopping at the first error fn returns.
	ForEach(ctx context.Context, fn func(cred *entity.StaffCredential) error) error

	// Save merges a hashed credential with its profile. The plaintext PIN is never written.
	Save(ctx context.Context, cred *entity.StaffCredential) error
}
