package memory

import (
	"context"

	"accounts/internal/domain/repository"
)

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	store *Store
	tx    *state
}

func (f *repositoryFactory) NewAccountRepository() repository.AccountRepository {
	return &accountRepository{store: f.store, tx: f.tx}
}

func (f *repositoryFactory) NewRoleRepository() repository.RoleRepository {
	return &roleRepository{store: f.store, tx: f.tx}
}

// NewTransactionManager returns a TransactionManager over the store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute holds the store lock for the whole callback and commits by swapping
// in the working copy. Errors and panics leave the committed state untouched.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	work := tm.store.st.clone()
	if err := fn(&repositoryFactory{store: tm.store, tx: work}); err != nil {
		return err
	}

	tm.store.st = work

	return nil
}
