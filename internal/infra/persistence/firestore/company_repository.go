package firestore

import (
	"context"

	"github.com/JeffJagr/SmartBar-v3/internal/domain/constants"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/repository"
	"github.com/JeffJagr/SmartBar-v3/internal/errors"
)

// companyRepository implements the repository.CompanyRepository interface.
type companyRepository struct {
	clients ClientProvider
}

// NewCompanyRepository is the constructor for companyRepository.
func NewCompanyRepository(clients ClientProvider) repository.CompanyRepository {
	return &companyRepository{
		clients: clients,
	}
}

// FindIDByCode resolves a normalized company code to a company ID.
func (repo *companyRepository) FindIDByCode(ctx context.Context, companyCode string) (string, error) {
	client, err := repo.clients.Firestore(ctx)
	if err != nil {
		return "", err
	}

	doc, err := firstDocument(ctx, client.Collection(constants.CollectionCompanies).
		Where(constants.FieldCompanyCode, "==", companyCode))
	if err != nil {
		return "", errors.Wrap(err, "failed to query company by code")
	}
	if doc == nil {
		return "", repository.ErrCompanyNotFound
	}

	return doc.Ref.ID, nil
}
