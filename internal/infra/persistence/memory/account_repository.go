package memory

import (
	"context"
	"time"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/repository"
)

type accountRepository struct {
	store *Store
	tx    *state
}

// NewAccountRepository returns an AccountRepository over the committed store state.
func NewAccountRepository(store *Store) repository.AccountRepository {
	return &accountRepository{store: store}
}

func (repo *accountRepository) Create(_ context.Context, account *entity.Account) error {
	return repo.store.view(repo.tx, func(st *state) error {
		if _, taken := st.accounts[account.ID]; taken {
			return repository.ErrIDConflict
		}
		if _, taken := st.byUsername[account.Username]; taken {
			return repository.ErrDuplicateAccount
		}
		if _, taken := st.byEmail[account.Email]; taken {
			return repository.ErrDuplicateAccount
		}
		for _, r := range account.Roles {
			if _, ok := st.catalog[r]; !ok {
				return repository.ErrUnknownRole
			}
		}

		now := repo.store.now()
		stored := *account
		stored.Roles = nil
		if account.DeactivatedAt != nil {
			at := *account.DeactivatedAt
			stored.DeactivatedAt = &at
		}
		stored.CreatedAt = now
		stored.UpdatedAt = now

		st.accounts[stored.ID] = &stored
		st.byUsername[stored.Username] = stored.ID
		st.byEmail[stored.Email] = stored.ID
		st.order = append(st.order, stored.ID)

		memberships := make(map[entity.Role]struct{}, len(account.Roles))
		for _, r := range account.Roles {
			memberships[r] = struct{}{}
		}
		st.memberships[stored.ID] = memberships

		account.CreatedAt = now
		account.UpdatedAt = now

		return nil
	})
}

func (repo *accountRepository) FindByID(_ context.Context, id string) (*entity.Account, error) {
	var found *entity.Account
	err := repo.store.view(repo.tx, func(st *state) error {
		acc, ok := st.account(id)
		if !ok {
			return repository.ErrAccountNotFound
		}
		found = acc

		return nil
	})

	return found, err
}

func (repo *accountRepository) FindByEmailOrUsername(_ context.Context, email, username string) (*entity.Account, error) {
	var found *entity.Account
	err := repo.store.view(repo.tx, func(st *state) error {
		// Walk in creation order so the oldest match wins, like the SQL query.
		for _, id := range st.order {
			stored := st.accounts[id]
			if (email != "" && stored.Email == email) || (username != "" && stored.Username == username) {
				found, _ = st.account(id)

				return nil
			}
		}

		return repository.ErrAccountNotFound
	})

	return found, err
}

func (repo *accountRepository) ListPage(_ context.Context, page, size int) ([]*entity.Account, error) {
	accounts := make([]*entity.Account, 0, size)
	err := repo.store.view(repo.tx, func(st *state) error {
		start := size * (page - 1)
		if start >= len(st.order) {
			return nil
		}
		end := min(start+size, len(st.order))

		for _, id := range st.order[start:end] {
			acc, _ := st.account(id)
			accounts = append(accounts, acc)
		}

		return nil
	})

	return accounts, err
}

func (repo *accountRepository) Count(_ context.Context) (int64, error) {
	var total int64
	err := repo.store.view(repo.tx, func(st *state) error {
		total = int64(len(st.order))

		return nil
	})

	return total, err
}

func (repo *accountRepository) SetDeactivatedAt(_ context.Context, id string, at *time.Time) (*entity.Account, error) {
	var updated *entity.Account
	err := repo.store.view(repo.tx, func(st *state) error {
		stored, ok := st.accounts[id]
		if !ok {
			return repository.ErrAccountNotFound
		}
		if (at != nil) != stored.IsActive() {
			return repository.ErrLifecycleConflict
		}

		next := *stored
		if at != nil {
			value := *at
			next.DeactivatedAt = &value
		} else {
			next.DeactivatedAt = nil
		}
		next.UpdatedAt = repo.store.now()
		st.accounts[id] = &next

		updated, _ = st.account(id)

		return nil
	})

	return updated, err
}
