// Command seed provisions the role catalog, an administrator and a batch of random accounts.
package main

import (
	"context"
	"log/slog"
	"os"

	"accounts/config"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"
	"accounts/internal/infra/auth"
	"accounts/internal/infra/idgen"
	logs "accounts/internal/infra/log"
	"accounts/internal/infra/persistence"
	"accounts/internal/usecase"
	"accounts/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultRandomDomain = "emawa.io"
	randomLocalPartLen  = 4
)

type seeder struct {
	cfg      *config.Config
	logger   *slog.Logger
	accounts usecase.AccountUsecase
	roles    usecase.RoleUsecase
	ids      service.IDGenerator
}

func main() {
	var s seeder

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			auth.NewBcryptHasher,
			idgen.NewRandomGenerator,
			impl.NewAccountService,
			impl.NewRoleService,
		),
		persistence.Module,
		fx.Populate(&s.cfg, &s.logger, &s.accounts, &s.roles, &s.ids),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		slog.Error("Failed to start seed", slog.Any("error", err))
		os.Exit(1)
	}

	runErr := s.run(ctx)

	if err := app.Stop(ctx); err != nil {
		s.logger.Error("Failed to stop seed", slog.Any("error", err))
	}
	if runErr != nil {
		s.logger.Error("Seed failed", slog.Any("error", runErr))
		os.Exit(1)
	}
}

func (s *seeder) run(ctx context.Context) error {
	if s.cfg.Seed == nil {
		return errors.New("seed configuration is missing")
	}
	seed := s.cfg.Seed

	if err := s.roles.EnsureCatalog(ctx); err != nil {
		return errors.Wrap(err, "failed to seed roles")
	}
	s.logger.Info("Role catalog ready", slog.Any("roles", entity.Catalog().ToStrings()))

	if seed.AdminUsername != "" {
		if err := s.createWithAllRoles(ctx, seed.AdminUsername, seed.AdminEmail, seed.AdminPassword); err != nil {
			return errors.Wrap(err, "failed to seed admin")
		}
	}

	domain := seed.RandomDomain
	if domain == "" {
		domain = defaultRandomDomain
	}
	password := seed.UserPassword
	if password == "" {
		password = seed.AdminPassword
	}

	for range seed.RandomUsers {
		local, err := s.ids.Generate(randomLocalPartLen)
		if err != nil {
			return errors.Wrap(err, "failed to generate random user")
		}
		address := local + "@" + domain

		if err := s.createWithAllRoles(ctx, address, address, password); err != nil {
			return errors.Wrap(err, "failed to seed random user")
		}
	}

	return nil
}

// createWithAllRoles creates the account and grants every catalog role.
// Existing accounts are left as they are.
func (s *seeder) createWithAllRoles(ctx context.Context, username, email, password string) error {
	created, err := s.accounts.Create(ctx, &usecase.CreateAccountInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	if errors.Is(err, domainerrors.ErrDuplicateAccount) {
		s.logger.Warn("Account already exists, skipping", slog.String("username", username))

		return nil
	}
	if err != nil {
		return err
	}

	for _, role := range entity.Catalog() {
		if role == entity.RoleUser {
			continue
		}
		if _, err := s.roles.AddRole(ctx, created.ID, role.String()); err != nil {
			return err
		}
	}

	s.logger.Info("Created account", slog.String("accountID", created.ID), slog.String("email", email))

	return nil
}
