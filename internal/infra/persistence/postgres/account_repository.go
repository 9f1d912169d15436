// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/persistence/model"
	"accounts/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	q *query.Query
}

// NewAccountRepository is the constructor for accountRepository.
// It initializes the repository with the GORM Gen query builder.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		q: query.Use(db),
	}
}

// Create inserts the account row and its role memberships in one transaction.
// Nested inside txManager.Execute, GORM turns this into a savepoint.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)
	memberships := toMembershipModels(accountM.Roles)
	accountM.Roles = nil

	err := repo.q.Transaction(func(tx *query.Query) error {
		if err := tx.AccountModel.WithContext(ctx).Create(accountM); err != nil {
			return err
		}
		if len(memberships) == 0 {
			return nil
		}

		return tx.AccountRoleModel.WithContext(ctx).Create(memberships...)
	})
	if err != nil {
		if isAccountIDConflict(err) {
			return repository.ErrIDConflict
		}
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAccount
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUnknownRole
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindByID retrieves a single account by its identifier, preloading its roles.
func (repo *accountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	return findAccountByID(ctx, repo.q, id)
}

func findAccountByID(ctx context.Context, q *query.Query, id string) (*entity.Account, error) {
	accountM, err := q.AccountModel.WithContext(ctx).
		Preload(q.AccountModel.Roles).
		Where(q.AccountModel.ID.Eq(id)).
		Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by id")
	}

	return toAccountDomain(accountM), nil
}

// FindByEmailOrUsername retrieves the oldest account matching either value. Empty values are ignored.
func (repo *accountRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.Account, error) {
	a := repo.q.AccountModel
	do := a.WithContext(ctx).Preload(a.Roles)

	switch {
	case email != "" && username != "":
		do = do.Where(a.Email.Eq(email)).Or(a.Username.Eq(username))
	case email != "":
		do = do.Where(a.Email.Eq(email))
	case username != "":
		do = do.Where(a.Username.Eq(username))
	default:
		return nil, repository.ErrAccountNotFound
	}

	accountM, err := do.Order(a.CreatedAt.Asc(), a.ID.Asc()).Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by email or username")
	}

	return toAccountDomain(accountM), nil
}

// ListPage returns one page ordered by (created_at, account_id).
func (repo *accountRepository) ListPage(ctx context.Context, page, size int) ([]*entity.Account, error) {
	a := repo.q.AccountModel

	accountModels, err := a.WithContext(ctx).
		Preload(a.Roles).
		Order(a.CreatedAt.Asc(), a.ID.Asc()).
		Offset(size * (page - 1)).
		Limit(size).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// Count returns the number of stored accounts.
func (repo *accountRepository) Count(ctx context.Context) (int64, error) {
	total, err := repo.q.AccountModel.WithContext(ctx).Count()
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count accounts")
	}

	return total, nil
}

// SetDeactivatedAt applies the lifecycle transition with a conditional UPDATE so
// concurrent toggles on the same account cannot both succeed. The read-back runs
// in the same transaction, under the row lock taken by the UPDATE.
func (repo *accountRepository) SetDeactivatedAt(ctx context.Context, id string, at *time.Time) (*entity.Account, error) {
	var updated *entity.Account

	err := repo.q.Transaction(func(tx *query.Query) error {
		a := tx.AccountModel
		do := a.WithContext(ctx).Where(a.ID.Eq(id))

		var value any
		if at != nil {
			do = do.Where(a.DeactivatedAt.IsNull())
			value = *at
		} else {
			do = do.Where(a.DeactivatedAt.IsNotNull())
		}

		info, err := do.Updates(map[string]any{
			"deactivated_at": value,
			"updated_at":     time.Now(),
		})
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update account lifecycle")
		}

		if info.RowsAffected == 0 {
			if _, err := findAccountByID(ctx, tx, id); err != nil {
				return err
			}

			return repository.ErrLifecycleConflict
		}

		updated, err = findAccountByID(ctx, tx, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// --- Mapper Functions ---

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	roles := make(entity.Roles, 0, len(data.Roles))
	for _, r := range data.Roles {
		roles = append(roles, entity.Role(r.RoleID))
	}

	return &entity.Account{
		ID:             data.ID,
		Username:       data.Username,
		Email:          data.Email,
		CredentialHash: data.PasswordHash,
		DeactivatedAt:  data.DeactivatedAt,
		Roles:          roles,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	roles := make([]model.AccountRoleModel, 0, len(data.Roles))
	for _, r := range data.Roles {
		roles = append(roles, model.AccountRoleModel{
			AccountID: data.ID,
			RoleID:    r.String(),
		})
	}

	return &model.AccountModel{
		ID:            data.ID,
		Username:      data.Username,
		Email:         data.Email,
		PasswordHash:  data.CredentialHash,
		DeactivatedAt: data.DeactivatedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		Roles:         roles,
	}
}

func toMembershipModels(roles []model.AccountRoleModel) []*model.AccountRoleModel {
	memberships := make([]*model.AccountRoleModel, 0, len(roles))
	for i := range roles {
		memberships = append(memberships, &roles[i])
	}

	return memberships
}
