package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"
)

var (
	// ErrDuplicateRole is returned when the (account, role) pair already exists.
	ErrDuplicateRole = errors.New("role already assigned")

	// ErrRoleNotAssigned is returned when removing a pair that does not exist.
	ErrRoleNotAssigned = errors.New("role not assigned")

	// ErrUnknownRole is returned when the role is missing from the persisted catalog.
	ErrUnknownRole = errors.New("role not in catalog")
)

// RoleRepository manages the role catalog and account role memberships.
type RoleRepository interface {
	// AddRole creates the (accountID, role) membership.
	AddRole(ctx context.Context, accountID string, role entity.Role) error

	// DeleteRole removes the (accountID, role) membership.
	DeleteRole(ctx context.Context, accountID string, role entity.Role) error

	// FindRolesByAccount lists the roles assigned to an account.
	FindRolesByAccount(ctx context.Context, accountID string) (entity.Roles, error)

	// ListRoles returns the persisted role catalog.
	ListRoles(ctx context.Context) (entity.Roles, error)

	// EnsureCatalog inserts any missing catalog roles; existing rows are left untouched.
	EnsureCatalog(ctx context.Context, roles entity.Roles) error
}
