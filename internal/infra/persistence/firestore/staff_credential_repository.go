package firestore

import (
	"context"

	"github.com/JeffJagr/SmartBar-v3/internal/domain/constants"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/entity"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/repository"
	"github.com/JeffJagr/SmartBar-v3/internal/errors"
	"github.com/JeffJagr/SmartBar-v3/internal/infra/persistence/model"

	gcfirestore "cloud.google.com/go/firestore"
)

// staffCredentialRepository implements the repository.StaffCredentialRepository interface.
type staffCredentialRepository struct {
	clients ClientProvider
}

// NewStaffCredentialRepository is the constructor for staffCredentialRepository.
func NewStaffCredentialRepository(clients ClientProvider) repository.StaffCredentialRepository {
	return &staffCredentialRepository{
		clients: clients,
	}
}

func (repo *staffCredentialRepository) collection(ctx context.Context) (*gcfirestore.CollectionRef, error) {
	client, err := repo.clients.Firestore(ctx)
	if err != nil {
		return nil, err
	}

	return client.Collection(constants.CollectionStaffPins), nil
}

// FindByPinHash returns the first credential of the company whose digest matches.
func (repo *staffCredentialRepository) FindByPinHash(ctx context.Context, companyCode, pinHash string) (*entity.StaffCredential, error) {
	return repo.findOne(ctx, companyCode, constants.FieldPinHash, pinHash)
}

// FindByLegacyPin returns the first credential of the company whose plaintext PIN matches exactly.
func (repo *staffCredentialRepository) FindByLegacyPin(ctx context.Context, companyCode, pin string) (*entity.StaffCredential, error) {
	return repo.findOne(ctx, companyCode, constants.FieldPin, pin)
}

func (repo *staffCredentialRepository) findOne(ctx context.Context, companyCode, field, value string) (*entity.StaffCredential, error) {
	col, err := repo.collection(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := firstDocument(ctx, col.
		Where(constants.FieldCompanyCode, "==", companyCode).
		Where(field, "==", value))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query staff credential by %s", field)
	}
	if doc == nil {
		return nil, repository.ErrStaffCredentialNotFound
	}

	return model.ToStaffCredential(doc.Ref.ID, doc.Data()), nil
}

// FindByCompanyID returns every credential belonging to a company.
func (repo *staffCredentialRepository) FindByCompanyID(ctx context.Context, companyID string) ([]*entity.StaffCredential, error) {
	col, err := repo.collection(ctx)
	if err != nil {
		return nil, err
	}

	var creds []*entity.StaffCredential
	err = forEachDocument(ctx, col.Where(constants.FieldCompanyID, "==", companyID), func(doc *gcfirestore.DocumentSnapshot) error {
		creds = append(creds, model.ToStaffCredential(doc.Ref.ID, doc.Data()))

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list staff credentials by company")
	}

	return creds, nil
}

// MigratePin sets pinHash and deletes the plaintext PIN in one merge write.
func (repo *staffCredentialRepository) MigratePin(ctx context.Context, id, pinHash string) error {
	col, err := repo.collection(ctx)
	if err != nil {
		return err
	}

	_, err = col.Doc(id).Set(ctx, map[string]any{
		constants.FieldPinHash: pinHash,
		constants.FieldPin:     gcfirestore.Delete,
	}, gcfirestore.MergeAll)
	if err != nil {
		return errors.Wrapf(err, "failed to migrate PIN of %s", id)
	}

	return nil
}

// RemoveLegacyPin deletes a lingering plaintext PIN.
func (repo *staffCredentialRepository) RemoveLegacyPin(ctx context.Context, id string) error {
	col, err := repo.collection(ctx)
	if err != nil {
		return err
	}

	_, err = col.Doc(id).Update(ctx, []gcfirestore.Update{
		{Path: constants.FieldPin, Value: gcfirestore.Delete},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrStaffCredentialNotFound
		}

		return errors.Wrapf(err, "failed to remove plaintext PIN of %s", id)
	}

	return nil
}

// ForEach streams every credential of the collection to fn.
func (repo *staffCredentialRepository) ForEach(ctx context.Context, fn func(cred *entity.StaffCredential) error) error {
	col, err := repo.collection(ctx)
	if err != nil {
		return err
	}

	return forEachDocument(ctx, col.Query, func(doc *gcfirestore.DocumentSnapshot) error {
		return fn(model.ToStaffCredential(doc.Ref.ID, doc.Data()))
	})
}

// Save merges a hashed credential with its profile.
func (repo *staffCredentialRepository) Save(ctx context.Context, cred *entity.StaffCredential) error {
	if cred.PinHash == "" {
		return errors.New("refusing to save a credential without pinHash")
	}

	col, err := repo.collection(ctx)
	if err != nil {
		return err
	}

	if _, err := col.Doc(cred.ID).Set(ctx, model.FromStaffCredential(cred), gcfirestore.MergeAll); err != nil {
		return errors.Wrapf(err, "failed to save staff credential %s", cred.ID)
	}

	return nil
}
