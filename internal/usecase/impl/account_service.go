package impl

import (
	"context"
	"log/slog"
	"strconv"

	"accounts/config"
	"accounts/internal/domain/constants"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxIDAttempts bounds how often Create draws a new id after a collision.
const maxIDAttempts = 3

// accountService implements the AccountUsecase interface.
type accountService struct {
	sideEffects

	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	idGen       service.IDGenerator
	maxTake     int
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	IDGen       service.IDGenerator
	Publisher   service.EventPublisher    `optional:"true"`
	Cache       service.AccountCache      `optional:"true"`
	Observer    service.OperationObserver `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	maxTake := 0
	if params.Config != nil && params.Config.Pagination != nil {
		maxTake = params.Config.Pagination.MaxTake
	}

	return &accountService{
		sideEffects: newSideEffects(params.Publisher, params.Cache, params.Observer, params.Logger),
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		idGen:       params.IDGen,
		maxTake:     maxTake,
	}
}

// Create hashes the credential, assigns a fresh identifier and stores the
// account with the default role in one transaction.
func (srv *accountService) Create(ctx context.Context, input *usecase.CreateAccountInput) (_ *entity.PublicAccount, err error) {
	ctx, span := srv.start(ctx, opCreate)
	defer func() { srv.finish(span, opCreate, err) }()

	if input == nil || input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username, email and password are required")
	}
	if len(input.Password) > constants.MaxPasswordBytes {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
			"password must be at most " + strconv.Itoa(constants.MaxPasswordBytes) + " bytes"))
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash credential", slog.Any("error", err))

		return nil, failWith(domainerrors.ErrHashingFailed, err, "failed to hash credential")
	}

	account := &entity.Account{
		Username:       input.Username,
		Email:          input.Email,
		CredentialHash: hash,
		Roles:          entity.Roles{entity.RoleUser},
	}

	for attempt := 1; ; attempt++ {
		account.ID, err = srv.idGen.Generate(constants.AccountIDLength)
		if err != nil {
			srv.log(ctx).Error("Failed to generate account id", slog.Any("error", err))

			return nil, failWith(domainerrors.ErrIDGenerationFailed, err, "failed to generate account id")
		}

		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return repoFactory.NewAccountRepository().Create(ctx, account)
		})
		if errors.Is(err, repository.ErrIDConflict) && attempt < maxIDAttempts {
			srv.log(ctx).Warn("Generated account id already in use, retrying", slog.Int("attempt", attempt))

			continue
		}

		break
	}
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateAccount) {
			srv.log(ctx).Info("Account already exists", slog.String("username", input.Username), slog.String("email", input.Email))
		} else {
			srv.log(ctx).Error("Failed to create account", slog.Any("error", err))
		}

		return nil, mapRepositoryError(err, "failed to create account")
	}

	srv.log(ctx).Info("Account created", slog.String("accountID", account.ID))
	srv.publish(ctx, service.AccountCreated, account.ID, "")

	return account.Public(), nil
}

// FindByAll returns one page of accounts. A page past the end is empty.
func (srv *accountService) FindByAll(ctx context.Context, input *usecase.PageInput) (_ *usecase.AccountPage, err error) {
	ctx, span := srv.start(ctx, opFindByAll)
	defer func() { srv.finish(span, opFindByAll, err) }()

	if err := srv.validatePage(input); err != nil {
		return nil, err
	}

	var (
		accounts []*entity.Account
		total    int64
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		var txErr error
		if total, txErr = accountRepo.Count(ctx); txErr != nil {
			return txErr
		}
		accounts, txErr = accountRepo.ListPage(ctx, input.Page, input.Take)

		return txErr
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list accounts", slog.Int("page", input.Page), slog.Int("take", input.Take), slog.Any("error", err))

		return nil, mapRepositoryError(err, "failed to list accounts")
	}

	return &usecase.AccountPage{
		Accounts: entity.PublicAccounts(accounts),
		Page:     input.Page,
		Take:     input.Take,
		Total:    total,
	}, nil
}

func (srv *accountService) validatePage(input *usecase.PageInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WrapMessage("pagination is required")
	}
	if input.Page < 1 {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("page must be at least 1"))
	}
	if input.Take < 1 {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("take must be at least 1"))
	}
	if srv.maxTake > 0 && input.Take > srv.maxTake {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("take must be at most " + strconv.Itoa(srv.maxTake)))
	}

	return nil
}

// FindByID returns the public view of a single account, consulting the cache first.
func (srv *accountService) FindByID(ctx context.Context, accountID string) (_ *entity.PublicAccount, err error) {
	ctx, span := srv.start(ctx, opFindByID)
	defer func() { srv.finish(span, opFindByID, err) }()

	cached, generation, cacheErr := srv.cache.Get(ctx, accountID)
	if cacheErr == nil {
		return cached, nil
	}
	cacheable := errors.Is(cacheErr, service.ErrCacheMiss)
	if !cacheable {
		srv.log(ctx).Warn("Account cache lookup failed", slog.String("accountID", accountID), slog.Any("error", cacheErr))
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find account")
	}

	view := account.Public()
	if !cacheable {
		return view, nil
	}

	// generation was read before the store, so a write that committed and
	// invalidated in between makes Set report ErrCacheStale.
	if err := srv.cache.Set(ctx, view, generation); err != nil && !errors.Is(err, service.ErrCacheStale) {
		srv.log(ctx).Warn("Failed to cache account", slog.String("accountID", accountID), slog.Any("error", err))
	}

	return view, nil
}

// FindByEmailOrUsername returns the account matching either identifier.
func (srv *accountService) FindByEmailOrUsername(ctx context.Context, input *usecase.LookupInput) (_ *entity.PublicAccount, err error) {
	ctx, span := srv.start(ctx, opFindByEmailOrUsername)
	defer func() { srv.finish(span, opFindByEmailOrUsername, err) }()

	if input == nil || (input.Email == "" && input.Username == "") {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("email or username is required"))
	}

	account, err := srv.accountRepo.FindByEmailOrUsername(ctx, input.Email, input.Username)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find account by email or username")
	}

	return account.Public(), nil
}

// Activate clears the deactivation timestamp of a deactivated account.
func (srv *accountService) Activate(ctx context.Context, accountID string) (_ *entity.PublicAccount, err error) {
	ctx, span := srv.start(ctx, opActivate)
	defer func() { srv.finish(span, opActivate, err) }()

	account, err := srv.accountRepo.SetDeactivatedAt(ctx, accountID, nil)
	if err != nil {
		if errors.Is(err, repository.ErrLifecycleConflict) {
			return nil, domainerrors.ErrAlreadyActive.WrapMessage("failed to activate account")
		}

		return nil, mapRepositoryError(err, "failed to activate account")
	}

	srv.log(ctx).Info("Account activated", slog.String("accountID", accountID))
	srv.invalidate(ctx, accountID)
	srv.publish(ctx, service.AccountActivated, accountID, "")

	return account.Public(), nil
}

// Deactivate stamps the current time on an active account.
func (srv *accountService) Deactivate(ctx context.Context, accountID string) (_ *entity.PublicAccount, err error) {
	ctx, span := srv.start(ctx, opDeactivate)
	defer func() { srv.finish(span, opDeactivate, err) }()

	now := srv.now().UTC()
	account, err := srv.accountRepo.SetDeactivatedAt(ctx, accountID, &now)
	if err != nil {
		if errors.Is(err, repository.ErrLifecycleConflict) {
			return nil, domainerrors.ErrAlreadyDeactivated.WrapMessage("failed to deactivate account")
		}

		return nil, mapRepositoryError(err, "failed to deactivate account")
	}

	srv.log(ctx).Info("Account deactivated", slog.String("accountID", accountID))
	srv.invalidate(ctx, accountID)
	srv.publish(ctx, service.AccountDeactivated, accountID, "")

	return account.Public(), nil
}
