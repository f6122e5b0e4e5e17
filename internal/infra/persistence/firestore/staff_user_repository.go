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

// staffUserRepository implements the repository.StaffUserRepository interface.
type staffUserRepository struct {
	clients ClientProvider
}

// NewStaffUserRepository is the constructor for staffUserRepository.
func NewStaffUserRepository(clients ClientProvider) repository.StaffUserRepository {
	return &staffUserRepository{
		clients: clients,
	}
}

func companyUsers(client *gcfirestore.Client, companyID string) *gcfirestore.CollectionRef {
	return client.Collection(constants.CollectionCompanies).Doc(companyID).Collection(constants.CollectionUsers)
}

// FindCompanyUsers returns every entry under companies/{companyID}/users.
func (repo *staffUserRepository) FindCompanyUsers(ctx context.Context, companyID string) ([]*entity.CompanyStaffUser, error) {
	client, err := repo.clients.Firestore(ctx)
	if err != nil {
		return nil, err
	}

	var users []*entity.CompanyStaffUser
	err = forEachDocument(ctx, companyUsers(client, companyID).Query, func(doc *gcfirestore.DocumentSnapshot) error {
		users = append(users, model.ToCompanyStaffUser(doc.Ref.ID, doc.Data()))

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list users of company %s", companyID)
	}

	return users, nil
}

// ApplyDedupePlan writes the plan in a single transaction.
func (repo *staffUserRepository) ApplyDedupePlan(ctx context.Context, plan *entity.StaffDedupePlan) error {
	if plan.IsEmpty() {
		return nil
	}

	client, err := repo.clients.Firestore(ctx)
	if err != nil {
		return err
	}

	usersCol := companyUsers(client, plan.CompanyID)
	globalUsers := client.Collection(constants.CollectionUsers)
	staffPins := client.Collection(constants.CollectionStaffPins)

	err = client.RunTransaction(ctx, func(ctx context.Context, tx *gcfirestore.Transaction) error {
		for id, patch := range plan.Updates {
			if err := tx.Set(usersCol.Doc(id), model.CompanyUserPatch(id, patch), gcfirestore.MergeAll); err != nil {
				return err
			}
			if err := tx.Set(globalUsers.Doc(id), model.GlobalUserPatch(plan.CompanyID, patch), gcfirestore.MergeAll); err != nil {
				return err
			}
			if err := tx.Set(staffPins.Doc(id), model.FromStaffUserPatch(patch), gcfirestore.MergeAll); err != nil {
				return err
			}
		}
		for _, dup := range plan.Duplicates {
			if err := tx.Delete(usersCol.Doc(dup.ID)); err != nil {
				return err
			}
			if err := tx.Delete(globalUsers.Doc(dup.ID)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to apply dedupe plan for company %s", plan.CompanyID)
	}

	return nil
}

var _ repository.StaffUserRepository = (*staffUserRepository)(nil)
