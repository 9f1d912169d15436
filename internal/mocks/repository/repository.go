// Package repository provides testify mocks for the persistence interfaces.
package repository

import (
	"context"
	"time"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository creates a mock whose expectations are asserted on cleanup.
func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func accountArg(args mock.Arguments) *entity.Account {
	if v := args.Get(0); v != nil {
		return v.(*entity.Account)
	}

	return nil
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	args := m.Called(ctx, id)

	return accountArg(args), args.Error(1)
}

func (m *MockAccountRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.Account, error) {
	args := m.Called(ctx, email, username)

	return accountArg(args), args.Error(1)
}

func (m *MockAccountRepository) ListPage(ctx context.Context, page, size int) ([]*entity.Account, error) {
	args := m.Called(ctx, page, size)

	var accounts []*entity.Account
	if v := args.Get(0); v != nil {
		accounts = v.([]*entity.Account)
	}

	return accounts, args.Error(1)
}

func (m *MockAccountRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) SetDeactivatedAt(ctx context.Context, id string, at *time.Time) (*entity.Account, error) {
	args := m.Called(ctx, id, at)

	return accountArg(args), args.Error(1)
}

// MockTransactionManager is a mock of repository.TransactionManager.
// When the expectation returns nil, fn runs against Factory.
type MockTransactionManager struct {
	mock.Mock

	Factory repository.RepositoryFactory
}

func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := m.Called(ctx, fn).Error(0); err != nil {
		return err
	}
	if m.Factory == nil {
		return nil
	}

	return fn(m.Factory)
}
