package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"accounts/config"
	"accounts/internal/domain/entity"
	"accounts/internal/domain/service"
	"accounts/internal/infra/auth"
	"accounts/internal/infra/idgen"
	"accounts/internal/infra/persistence/memory"
	mockService "accounts/internal/mocks/service"
	"accounts/internal/usecase"

	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxTake int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: bcrypt.MinCost,
		},
		Pagination: &config.PaginationConfig{
			DefaultTake: 2,
			MaxTake:     maxTake,
		},
	}
}

// serviceFixtures wires both services over one in-memory store.
type serviceFixtures struct {
	accounts  usecase.AccountUsecase
	roles     usecase.RoleUsecase
	store     *memory.Store
	publisher *mockService.MockEventPublisher
}

func createTestServices(t *testing.T) serviceFixtures {
	t.Helper()

	store := memory.NewStore()
	publisher := mockService.NewMockEventPublisher(t)
	publisher.On("PublishAccountEvent", mock.Anything, mock.Anything).Return(nil).Maybe()

	accounts := NewAccountService(AccountServiceParams{
		TxManager:   memory.NewTransactionManager(store),
		AccountRepo: memory.NewAccountRepository(store),
		Hasher:      auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		IDGen:       idgen.NewRandomGenerator(),
		Publisher:   publisher,
		Config:      newTestConfig(10),
		Logger:      newDiscardLogger(),
	})
	accounts.(*accountService).now = func() time.Time { return fixedNow }

	roles := NewRoleService(RoleServiceParams{
		TxManager: memory.NewTransactionManager(store),
		RoleRepo:  memory.NewRoleRepository(store),
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	return serviceFixtures{
		accounts:  accounts,
		roles:     roles,
		store:     store,
		publisher: publisher,
	}
}

func createInput(name string) *usecase.CreateAccountInput {
	return &usecase.CreateAccountInput{
		Username: name,
		Email:    name + "@example.com",
		Password: "correct horse battery",
	}
}

// generationCache is an in-memory AccountCache with the same generation rules
// as the Redis cache. holdNextSet parks the next Set until release is closed.
type generationCache struct {
	mu          sync.Mutex
	views       map[string]*entity.PublicAccount
	generations map[string]uint64

	hold       bool
	setReached chan struct{}
	release    chan struct{}
}

func newGenerationCache() *generationCache {
	return &generationCache{
		views:       make(map[string]*entity.PublicAccount),
		generations: make(map[string]uint64),
	}
}

func (c *generationCache) holdNextSet() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.hold = true
	c.setReached = make(chan struct{})
	c.release = make(chan struct{})
}

func (c *generationCache) Get(_ context.Context, id string) (*entity.PublicAccount, uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	view, ok := c.views[id]
	if !ok {
		return nil, c.generations[id], service.ErrCacheMiss
	}

	return view, c.generations[id], nil
}

func (c *generationCache) Set(_ context.Context, account *entity.PublicAccount, generation uint64) error {
	c.mu.Lock()
	hold := c.hold
	c.hold = false
	c.mu.Unlock()

	if hold {
		close(c.setReached)
		<-c.release
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generations[account.ID] != generation {
		return service.ErrCacheStale
	}
	c.views[account.ID] = account

	return nil
}

func (c *generationCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generations[id]++
	delete(c.views, id)

	return nil
}
