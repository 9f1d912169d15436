// Package persistence selects the account store backend from configuration.
package persistence

import (
	"log/slog"

	"accounts/config"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/persistence/memory"
	"accounts/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of store components handed to the use cases
type Repositories struct {
	fx.Out

	Accounts  repository.AccountRepository
	Roles     repository.RoleRepository
	TxManager repository.TransactionManager
}

// NewRepositories builds the repositories for the configured storage driver.
func NewRepositories(params Params) (Repositories, error) {
	driver := config.StorageDriverPostgres
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}

	switch driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory account store; data is lost on restart")
		store := memory.NewStore()

		return Repositories{
			Accounts:  memory.NewAccountRepository(store),
			Roles:     memory.NewRoleRepository(store),
			TxManager: memory.NewTransactionManager(store),
		}, nil

	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Accounts:  postgres.NewAccountRepository(db),
			Roles:     postgres.NewRoleRepository(db),
			TxManager: postgres.NewTransactionManager(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
)
