package usecase

import (
	"context"

	"accounts/internal/domain/entity"
)

// RoleUsecase manages role memberships of accounts.
type RoleUsecase interface {
	AddRole(ctx context.Context, accountID, roleID string) (*entity.PublicAccount, error)
	DeleteRole(ctx context.Context, accountID, roleID string) error

	// ListAccountRoles returns the roles assigned to an existing account.
	ListAccountRoles(ctx context.Context, accountID string) (entity.Roles, error)
	ListRoles(ctx context.Context) (entity.Roles, error)

	// EnsureCatalog makes sure every catalog role is persisted.
	EnsureCatalog(ctx context.Context) error
}
