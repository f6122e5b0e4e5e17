package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrCompanyNotFound is returned when no company matches a company code.
var ErrCompanyNotFound = errors.New("company not found")

// CompanyRepository defines lookups on the companies collection.
type CompanyRepository interface {
	// FindIDByCode resolves a normalized company code to a company ID.
	FindIDByCode(ctx context.Context, companyCode string) (string, error)
}
