package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	"accounts/internal/domain/constants"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/infra/auth"
	"accounts/internal/infra/idgen"
	"accounts/internal/infra/persistence/memory"
	mockRepo "accounts/internal/mocks/repository"
	mockService "accounts/internal/mocks/service"
	"accounts/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAccountService_Create(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()

	created, err := fx.accounts.Create(ctx, createInput("alice"))
	require.NoError(t, err)

	assert.Len(t, created.ID, constants.AccountIDLength)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.Nil(t, created.DeactivatedAt)
	assert.Equal(t, []string{"user"}, created.Roles)

	stored, err := memory.NewAccountRepository(fx.store).FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", stored.CredentialHash)
	assert.True(t, auth.NewBcryptHasherWithCost(bcrypt.MinCost).Check("correct horse battery", stored.CredentialHash))

	fx.publisher.AssertCalled(t, "PublishAccountEvent", mock.Anything, mock.MatchedBy(func(e *service.AccountEvent) bool {
		return e.Type == service.AccountCreated && e.AccountID == created.ID
	}))
}

func TestAccountService_Create_ViewNeverCarriesCredential(t *testing.T) {
	fx := createTestServices(t)

	created, err := fx.accounts.Create(context.Background(), createInput("alice"))
	require.NoError(t, err)

	body, err := json.Marshal(created)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "$2a$")
	assert.NotContains(t, string(body), "correct horse battery")
	assert.NotContains(t, string(body), "hash")
}

func TestAccountService_Create_Duplicate(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.CreateAccountInput
	}{
		{
			name:  "same username",
			input: &usecase.CreateAccountInput{Username: "alice", Email: "other@example.com", Password: "password-1"},
		},
		{
			name:  "same email",
			input: &usecase.CreateAccountInput{Username: "alice2", Email: "alice@example.com", Password: "password-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestServices(t)
			ctx := context.Background()

			_, err := fx.accounts.Create(ctx, createInput("alice"))
			require.NoError(t, err)

			_, err = fx.accounts.Create(ctx, tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrDuplicateAccount)

			total, err := memory.NewAccountRepository(fx.store).Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(1), total)
		})
	}
}

func TestAccountService_Create_Validation(t *testing.T) {
	fx := createTestServices(t)

	_, err := fx.accounts.Create(context.Background(), &usecase.CreateAccountInput{Username: "alice"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_Create_PasswordLimitCountsBytes(t *testing.T) {
	hasher := mockService.NewMockPasswordHasher(t)
	srv := NewAccountService(AccountServiceParams{
		Hasher: hasher,
		Logger: newDiscardLogger(),
	})

	input := createInput("alice")
	input.Password = strings.Repeat("日", 25)

	_, err := srv.Create(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.NotErrorIs(t, err, domainerrors.ErrHashingFailed)
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAccountService_Create_HashingFails(t *testing.T) {
	store := memory.NewStore()
	hasher := mockService.NewMockPasswordHasher(t)
	ids := mockService.NewMockIDGenerator(t)
	hasher.On("Hash", "correct horse battery").Return("", errors.New("input too long"))

	srv := NewAccountService(AccountServiceParams{
		TxManager:   memory.NewTransactionManager(store),
		AccountRepo: memory.NewAccountRepository(store),
		Hasher:      hasher,
		IDGen:       ids,
		Logger:      newDiscardLogger(),
	})

	_, err := srv.Create(context.Background(), createInput("alice"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrHashingFailed)
	ids.AssertNotCalled(t, "Generate", mock.Anything)

	total, err := memory.NewAccountRepository(store).Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestAccountService_Create_IDGenerationFails(t *testing.T) {
	store := memory.NewStore()
	hasher := mockService.NewMockPasswordHasher(t)
	ids := mockService.NewMockIDGenerator(t)
	hasher.On("Hash", mock.Anything).Return("hashed", nil)
	ids.On("Generate", constants.AccountIDLength).Return("", errors.New("entropy source closed"))

	srv := NewAccountService(AccountServiceParams{
		TxManager:   memory.NewTransactionManager(store),
		AccountRepo: memory.NewAccountRepository(store),
		Hasher:      hasher,
		IDGen:       ids,
		Logger:      newDiscardLogger(),
	})

	_, err := srv.Create(context.Background(), createInput("alice"))
	assert.ErrorIs(t, err, domainerrors.ErrIDGenerationFailed)
}

func TestAccountService_Create_StoreUnavailable(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.On("Execute", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	srv := NewAccountService(AccountServiceParams{
		TxManager:   txManager,
		AccountRepo: mockRepo.NewMockAccountRepository(t),
		Hasher:      auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		IDGen:       idgen.NewRandomGenerator(),
		Logger:      newDiscardLogger(),
	})

	_, err := srv.Create(context.Background(), createInput("alice"))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrStoreUnavailable.ErrorCode(), appErr.ErrorCode())
	assert.NotContains(t, appErr.Message(), "connection refused")
}

func TestAccountService_Create_IDCollision(t *testing.T) {
	newService := func(t *testing.T, ids ...string) (usecase.AccountUsecase, *memory.Store) {
		store := memory.NewStore()
		require.NoError(t, memory.NewAccountRepository(store).Create(context.Background(), &entity.Account{
			ID: "taken", Username: "existing", Email: "existing@example.com", CredentialHash: "hash",
		}))

		generator := mockService.NewMockIDGenerator(t)
		for _, id := range ids {
			generator.On("Generate", constants.AccountIDLength).Return(id, nil).Once()
		}

		return NewAccountService(AccountServiceParams{
			TxManager:   memory.NewTransactionManager(store),
			AccountRepo: memory.NewAccountRepository(store),
			Hasher:      newStubHasher(),
			IDGen:       generator,
			Logger:      newDiscardLogger(),
		}), store
	}

	t.Run("draws a fresh id", func(t *testing.T) {
		srv, store := newService(t, "taken", "fresh")

		created, err := srv.Create(context.Background(), createInput("alice"))
		require.NoError(t, err)
		assert.Equal(t, "fresh", created.ID)

		total, err := memory.NewAccountRepository(store).Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("persistent collision is a store error, not a duplicate", func(t *testing.T) {
		srv, _ := newService(t, "taken", "taken", "taken")

		_, err := srv.Create(context.Background(), createInput("alice"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrDuplicateAccount)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrStoreUnavailable.ErrorCode(), appErr.ErrorCode())
	})
}

func TestAccountService_Create_PublishFailureIsNotFatal(t *testing.T) {
	store := memory.NewStore()
	publisher := mockService.NewMockEventPublisher(t)
	publisher.On("PublishAccountEvent", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	srv := NewAccountService(AccountServiceParams{
		TxManager:   memory.NewTransactionManager(store),
		AccountRepo: memory.NewAccountRepository(store),
		Hasher:      auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		IDGen:       idgen.NewRandomGenerator(),
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})

	created, err := srv.Create(context.Background(), createInput("alice"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestAccountService_Create_ConcurrentSameUsername(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fx.accounts.Create(ctx, &usecase.CreateAccountInput{
				Username: "racer",
				Email:    fmt.Sprintf("racer%d@example.com", i),
				Password: "password-1",
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domainerrors.ErrDuplicateAccount):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)
}

func TestAccountService_FindByAll(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()

	var ids []string
	for i := range 5 {
		created, err := fx.accounts.Create(ctx, createInput(fmt.Sprintf("user%d", i)))
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	tests := []struct {
		name    string
		page    int
		take    int
		wantIDs []string
	}{
		{name: "first page", page: 1, take: 2, wantIDs: ids[0:2]},
		{name: "second page", page: 2, take: 2, wantIDs: ids[2:4]},
		{name: "partial last page", page: 3, take: 2, wantIDs: ids[4:5]},
		{name: "beyond the data", page: 4, take: 2, wantIDs: []string{}},
		{name: "everything", page: 1, take: 10, wantIDs: ids},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := fx.accounts.FindByAll(ctx, &usecase.PageInput{Page: tt.page, Take: tt.take})
			require.NoError(t, err)

			got := make([]string, 0, len(result.Accounts))
			for _, a := range result.Accounts {
				got = append(got, a.ID)
			}
			assert.Equal(t, tt.wantIDs, got)
			assert.Equal(t, int64(5), result.Total)
			assert.Equal(t, tt.page, result.Page)
		})
	}
}

func TestAccountService_FindByAll_InvalidPagination(t *testing.T) {
	fx := createTestServices(t)

	tests := []struct {
		name  string
		input *usecase.PageInput
	}{
		{name: "nil input", input: nil},
		{name: "page zero", input: &usecase.PageInput{Page: 0, Take: 2}},
		{name: "negative take", input: &usecase.PageInput{Page: 1, Take: -1}},
		{name: "take above maximum", input: &usecase.PageInput{Page: 1, Take: 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.accounts.FindByAll(context.Background(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestAccountService_FindByID(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()

	created, err := fx.accounts.Create(ctx, createInput("alice"))
	require.NoError(t, err)

	found, err := fx.accounts.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = fx.accounts.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_FindByID_Cache(t *testing.T) {
	ctx := context.Background()
	view := &entity.PublicAccount{ID: "cached-id", Username: "alice", Roles: []string{"user"}}

	t.Run("hit skips the store", func(t *testing.T) {
		cache := mockService.NewMockAccountCache(t)
		accountRepo := mockRepo.NewMockAccountRepository(t)
		cache.On("Get", mock.Anything, "cached-id").Return(view, uint64(3), nil).Once()

		srv := NewAccountService(AccountServiceParams{
			AccountRepo: accountRepo,
			Cache:       cache,
			Logger:      newDiscardLogger(),
		})

		found, err := srv.FindByID(ctx, "cached-id")
		require.NoError(t, err)
		assert.Equal(t, view, found)
		accountRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("miss populates the cache", func(t *testing.T) {
		cache := mockService.NewMockAccountCache(t)
		accountRepo := mockRepo.NewMockAccountRepository(t)
		cache.On("Get", mock.Anything, "cached-id").Return(nil, uint64(3), service.ErrCacheMiss).Once()
		accountRepo.On("FindByID", mock.Anything, "cached-id").
			Return(&entity.Account{ID: "cached-id", Username: "alice", CredentialHash: "secret", Roles: entity.Roles{entity.RoleUser}}, nil).Once()
		cache.On("Set", mock.Anything, mock.MatchedBy(func(a *entity.PublicAccount) bool { return a.ID == "cached-id" }), uint64(3)).
			Return(nil).Once()

		srv := NewAccountService(AccountServiceParams{
			AccountRepo: accountRepo,
			Cache:       cache,
			Logger:      newDiscardLogger(),
		})

		found, err := srv.FindByID(ctx, "cached-id")
		require.NoError(t, err)
		assert.Equal(t, "alice", found.Username)
	})

	t.Run("stale set is not reported", func(t *testing.T) {
		cache := mockService.NewMockAccountCache(t)
		accountRepo := mockRepo.NewMockAccountRepository(t)
		cache.On("Get", mock.Anything, "cached-id").Return(nil, uint64(0), service.ErrCacheMiss).Once()
		accountRepo.On("FindByID", mock.Anything, "cached-id").Return(&entity.Account{ID: "cached-id"}, nil).Once()
		cache.On("Set", mock.Anything, mock.Anything, uint64(0)).Return(service.ErrCacheStale).Once()

		srv := NewAccountService(AccountServiceParams{
			AccountRepo: accountRepo,
			Cache:       cache,
			Logger:      newDiscardLogger(),
		})

		found, err := srv.FindByID(ctx, "cached-id")
		require.NoError(t, err)
		assert.Equal(t, "cached-id", found.ID)
	})

	t.Run("cache failure falls back to the store without caching", func(t *testing.T) {
		cache := mockService.NewMockAccountCache(t)
		accountRepo := mockRepo.NewMockAccountRepository(t)
		cache.On("Get", mock.Anything, "cached-id").Return(nil, uint64(0), errors.New("redis timeout")).Once()
		accountRepo.On("FindByID", mock.Anything, "cached-id").Return(&entity.Account{ID: "cached-id"}, nil).Once()

		srv := NewAccountService(AccountServiceParams{
			AccountRepo: accountRepo,
			Cache:       cache,
			Logger:      newDiscardLogger(),
		})

		found, err := srv.FindByID(ctx, "cached-id")
		require.NoError(t, err)
		assert.Equal(t, "cached-id", found.ID)
	})
}

func TestAccountService_FindByID_DoesNotCacheViewReadBeforeDeactivate(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	accountCache := newGenerationCache()

	srv := NewAccountService(AccountServiceParams{
		TxManager:   memory.NewTransactionManager(store),
		AccountRepo: memory.NewAccountRepository(store),
		Hasher:      newStubHasher(),
		IDGen:       newStubIDs("acc-1"),
		Cache:       accountCache,
		Logger:      newDiscardLogger(),
	})

	_, err := srv.Create(ctx, createInput("alice"))
	require.NoError(t, err)

	// The first Set parks after the store read until Deactivate has finished.
	accountCache.holdNextSet()

	done := make(chan error, 1)
	go func() {
		_, err := srv.FindByID(ctx, "acc-1")
		done <- err
	}()

	<-accountCache.setReached
	_, err = srv.Deactivate(ctx, "acc-1")
	require.NoError(t, err)
	close(accountCache.release)
	require.NoError(t, <-done)

	found, err := srv.FindByID(ctx, "acc-1")
	require.NoError(t, err)
	assert.NotNil(t, found.DeactivatedAt)

	cached, _, err := accountCache.Get(ctx, "acc-1")
	require.NoError(t, err)
	assert.NotNil(t, cached.DeactivatedAt)
}

func TestAccountService_FindByEmailOrUsername(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()

	created, err := fx.accounts.Create(ctx, createInput("alice"))
	require.NoError(t, err)

	byEmail, err := fx.accounts.FindByEmailOrUsername(ctx, &usecase.LookupInput{Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byUsername, err := fx.accounts.FindByEmailOrUsername(ctx, &usecase.LookupInput{Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, byUsername.ID)

	_, err = fx.accounts.FindByEmailOrUsername(ctx, &usecase.LookupInput{Username: "Alice"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)

	_, err = fx.accounts.FindByEmailOrUsername(ctx, &usecase.LookupInput{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_Lifecycle(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()

	created, err := fx.accounts.Create(ctx, createInput("alice"))
	require.NoError(t, err)

	_, err = fx.accounts.Activate(ctx, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyActive)

	deactivated, err := fx.accounts.Deactivate(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, deactivated.DeactivatedAt)
	assert.True(t, fixedNow.Equal(*deactivated.DeactivatedAt))

	_, err = fx.accounts.Deactivate(ctx, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyDeactivated)

	activated, err := fx.accounts.Activate(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, activated.DeactivatedAt)

	_, err = fx.accounts.Activate(ctx, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyActive)

	fx.publisher.AssertCalled(t, "PublishAccountEvent", mock.Anything, mock.MatchedBy(func(e *service.AccountEvent) bool {
		return e.Type == service.AccountDeactivated && e.AccountID == created.ID
	}))
	fx.publisher.AssertCalled(t, "PublishAccountEvent", mock.Anything, mock.MatchedBy(func(e *service.AccountEvent) bool {
		return e.Type == service.AccountActivated && e.AccountID == created.ID
	}))
}

func TestAccountService_Lifecycle_NotFound(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()

	_, err := fx.accounts.Activate(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)

	_, err = fx.accounts.Deactivate(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_Deactivate_InvalidatesCache(t *testing.T) {
	cache := mockService.NewMockAccountCache(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	accountRepo.On("SetDeactivatedAt", mock.Anything, "a1", mock.AnythingOfType("*time.Time")).
		Return(&entity.Account{ID: "a1"}, nil).Once()
	cache.On("Delete", mock.Anything, "a1").Return(nil).Once()

	srv := NewAccountService(AccountServiceParams{
		AccountRepo: accountRepo,
		Cache:       cache,
		Logger:      newDiscardLogger(),
	})

	_, err := srv.Deactivate(context.Background(), "a1")
	require.NoError(t, err)
}

func TestAccountService_Deactivate_ConcurrentCallsSucceedOnce(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()

	created, err := fx.accounts.Create(ctx, createInput("alice"))
	require.NoError(t, err)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		rejected  int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fx.accounts.Deactivate(ctx, created.ID)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domainerrors.ErrAlreadyDeactivated):
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, rejected)
}

func TestAccountService_ReportsOperations(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	observer := mockService.NewMockOperationObserver(t)
	accountRepo.On("FindByID", mock.Anything, "missing").Return(nil, repository.ErrAccountNotFound).Once()
	observer.On("ObserveOperation", opFindByID, mock.MatchedBy(func(err error) bool {
		return errors.Is(err, domainerrors.ErrAccountNotFound)
	})).Once()

	srv := NewAccountService(AccountServiceParams{
		AccountRepo: accountRepo,
		Observer:    observer,
		Logger:      newDiscardLogger(),
	})

	_, err := srv.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
