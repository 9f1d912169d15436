package postgres

import (
	"context"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/persistence/model"
	"accounts/internal/infra/persistence/postgres/query"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// roleRepository implements the repository.RoleRepository interface.
type roleRepository struct {
	q *query.Query
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{
		q: query.Use(db),
	}
}

// AddRole inserts the membership; the composite primary key rejects duplicates.
func (repo *roleRepository) AddRole(ctx context.Context, accountID string, role entity.Role) error {
	membership := &model.AccountRoleModel{
		AccountID: accountID,
		RoleID:    role.String(),
	}

	if err := repo.q.AccountRoleModel.WithContext(ctx).Create(membership); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRole
		}
		if isForeignKeyConstraintViolation(err) {
			if violatedConstraint(err) == fkAccountRolesRole {
				return repository.ErrUnknownRole
			}

			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add role")
	}

	return nil
}

// DeleteRole removes the membership, reporting ErrRoleNotAssigned when nothing matched.
func (repo *roleRepository) DeleteRole(ctx context.Context, accountID string, role entity.Role) error {
	ar := repo.q.AccountRoleModel

	info, err := ar.WithContext(ctx).
		Where(ar.AccountID.Eq(accountID), ar.RoleID.Eq(role.String())).
		Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete role")
	}

	if info.RowsAffected == 0 {
		return repository.ErrRoleNotAssigned
	}

	return nil
}

// FindRolesByAccount lists the roles assigned to an account in lexical order.
func (repo *roleRepository) FindRolesByAccount(ctx context.Context, accountID string) (entity.Roles, error) {
	ar := repo.q.AccountRoleModel

	var roleIDs []string
	if err := ar.WithContext(ctx).
		Where(ar.AccountID.Eq(accountID)).
		Order(ar.RoleID.Asc()).
		Pluck(ar.RoleID, &roleIDs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find roles by account")
	}

	return toRoles(roleIDs), nil
}

// ListRoles returns the persisted catalog.
func (repo *roleRepository) ListRoles(ctx context.Context) (entity.Roles, error) {
	r := repo.q.RoleModel

	var roleIDs []string
	if err := r.WithContext(ctx).
		Order(r.ID.Asc()).
		Pluck(r.ID, &roleIDs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list roles")
	}

	return toRoles(roleIDs), nil
}

// EnsureCatalog inserts missing catalog rows and ignores existing ones.
func (repo *roleRepository) EnsureCatalog(ctx context.Context, roles entity.Roles) error {
	if len(roles) == 0 {
		return nil
	}

	models := make([]*model.RoleModel, 0, len(roles))
	for _, r := range roles {
		models = append(models, &model.RoleModel{ID: r.String()})
	}

	if err := repo.q.RoleModel.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(models...); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to ensure role catalog")
	}

	return nil
}

func toRoles(roleIDs []string) entity.Roles {
	roles := make(entity.Roles, 0, len(roleIDs))
	for _, id := range roleIDs {
		roles = append(roles, entity.Role(id))
	}

	return roles
}
