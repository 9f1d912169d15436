package impl

import (
	"context"
	"log/slog"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// roleService implements the RoleUsecase interface.
type roleService struct {
	sideEffects

	txManager repository.TransactionManager
	roleRepo  repository.RoleRepository
}

// RoleServiceParams holds dependencies for RoleService, injected by Fx.
type RoleServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	RoleRepo  repository.RoleRepository
	Publisher service.EventPublisher    `optional:"true"`
	Cache     service.AccountCache      `optional:"true"`
	Observer  service.OperationObserver `optional:"true"`
	Logger    *slog.Logger
}

// NewRoleService is the constructor for roleService.
func NewRoleService(params RoleServiceParams) usecase.RoleUsecase {
	return &roleService{
		sideEffects: newSideEffects(params.Publisher, params.Cache, params.Observer, params.Logger),
		txManager:   params.TxManager,
		roleRepo:    params.RoleRepo,
	}
}

func parseRole(roleID string) (entity.Role, error) {
	role := entity.Role(roleID)
	if !role.IsValid() {
		return "", errors.WithStack(domainerrors.ErrInvalidRole.WithDetails("unknown role: " + roleID))
	}

	return role, nil
}

// AddRole assigns a catalog role to an account and returns the updated account.
func (srv *roleService) AddRole(ctx context.Context, accountID, roleID string) (_ *entity.PublicAccount, err error) {
	ctx, span := srv.start(ctx, opAddRole)
	defer func() { srv.finish(span, opAddRole, err) }()

	role, err := parseRole(roleID)
	if err != nil {
		return nil, err
	}

	var updated *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if txErr := repoFactory.NewRoleRepository().AddRole(ctx, accountID, role); txErr != nil {
			return txErr
		}

		var txErr error
		updated, txErr = repoFactory.NewAccountRepository().FindByID(ctx, accountID)

		return txErr
	})
	if err != nil {
		return nil, mapRepositoryError(err, "failed to add role")
	}

	srv.log(ctx).Info("Role added", slog.String("accountID", accountID), slog.String("role", role.String()))
	srv.invalidate(ctx, accountID)
	srv.publish(ctx, service.AccountRoleAdded, accountID, role)

	return updated.Public(), nil
}

// DeleteRole removes a role from an account. The account must exist.
func (srv *roleService) DeleteRole(ctx context.Context, accountID, roleID string) (err error) {
	ctx, span := srv.start(ctx, opDeleteRole)
	defer func() { srv.finish(span, opDeleteRole, err) }()

	role, err := parseRole(roleID)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, txErr := repoFactory.NewAccountRepository().FindByID(ctx, accountID); txErr != nil {
			return txErr
		}

		return repoFactory.NewRoleRepository().DeleteRole(ctx, accountID, role)
	})
	if err != nil {
		return mapRepositoryError(err, "failed to delete role")
	}

	srv.log(ctx).Info("Role removed", slog.String("accountID", accountID), slog.String("role", role.String()))
	srv.invalidate(ctx, accountID)
	srv.publish(ctx, service.AccountRoleRemoved, accountID, role)

	return nil
}

// ListAccountRoles returns the membership list of one account.
func (srv *roleService) ListAccountRoles(ctx context.Context, accountID string) (_ entity.Roles, err error) {
	ctx, span := srv.start(ctx, opListAccountRoles)
	defer func() { srv.finish(span, opListAccountRoles, err) }()

	var roles entity.Roles
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, txErr := repoFactory.NewAccountRepository().FindByID(ctx, accountID); txErr != nil {
			return txErr
		}

		var txErr error
		roles, txErr = repoFactory.NewRoleRepository().FindRolesByAccount(ctx, accountID)

		return txErr
	})
	if err != nil {
		return nil, mapRepositoryError(err, "failed to list account roles")
	}

	return roles, nil
}

// ListRoles returns the persisted role catalog.
func (srv *roleService) ListRoles(ctx context.Context) (_ entity.Roles, err error) {
	ctx, span := srv.start(ctx, opListRoles)
	defer func() { srv.finish(span, opListRoles, err) }()

	roles, err := srv.roleRepo.ListRoles(ctx)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to list roles")
	}

	return roles, nil
}

func (srv *roleService) EnsureCatalog(ctx context.Context) (err error) {
	ctx, span := srv.start(ctx, opEnsureCatalog)
	defer func() { srv.finish(span, opEnsureCatalog, err) }()

	if err := srv.roleRepo.EnsureCatalog(ctx, entity.Catalog()); err != nil {
		return mapRepositoryError(err, "failed to ensure role catalog")
	}

	return nil
}
