package memory

import (
	"context"
	"slices"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/repository"
)

type roleRepository struct {
	store *Store
	tx    *state
}

// NewRoleRepository returns a RoleRepository over the committed store state.
func NewRoleRepository(store *Store) repository.RoleRepository {
	return &roleRepository{store: store}
}

func (repo *roleRepository) AddRole(_ context.Context, accountID string, role entity.Role) error {
	return repo.store.view(repo.tx, func(st *state) error {
		if _, ok := st.accounts[accountID]; !ok {
			return repository.ErrAccountNotFound
		}
		if _, ok := st.catalog[role]; !ok {
			return repository.ErrUnknownRole
		}
		if _, ok := st.memberships[accountID][role]; ok {
			return repository.ErrDuplicateRole
		}

		if st.memberships[accountID] == nil {
			st.memberships[accountID] = make(map[entity.Role]struct{})
		}
		st.memberships[accountID][role] = struct{}{}

		return nil
	})
}

func (repo *roleRepository) DeleteRole(_ context.Context, accountID string, role entity.Role) error {
	return repo.store.view(repo.tx, func(st *state) error {
		if _, ok := st.memberships[accountID][role]; !ok {
			return repository.ErrRoleNotAssigned
		}
		delete(st.memberships[accountID], role)

		return nil
	})
}

func (repo *roleRepository) FindRolesByAccount(_ context.Context, accountID string) (entity.Roles, error) {
	var roles entity.Roles
	err := repo.store.view(repo.tx, func(st *state) error {
		roles = st.roles(accountID)

		return nil
	})

	return roles, err
}

func (repo *roleRepository) ListRoles(_ context.Context) (entity.Roles, error) {
	var roles entity.Roles
	err := repo.store.view(repo.tx, func(st *state) error {
		roles = make(entity.Roles, 0, len(st.catalog))
		for r := range st.catalog {
			roles = append(roles, r)
		}
		slices.Sort(roles)

		return nil
	})

	return roles, err
}

func (repo *roleRepository) EnsureCatalog(_ context.Context, roles entity.Roles) error {
	return repo.store.view(repo.tx, func(st *state) error {
		for _, r := range roles {
			st.catalog[r] = struct{}{}
		}

		return nil
	})
}
