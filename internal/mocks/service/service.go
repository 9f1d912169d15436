// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"context"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock whose expectations are asserted on cleanup.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockIDGenerator is a mock of service.IDGenerator.
type MockIDGenerator struct {
	mock.Mock
}

func NewMockIDGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIDGenerator {
	m := &MockIDGenerator{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockIDGenerator) Generate(length int) (string, error) {
	args := m.Called(length)

	return args.String(0), args.Error(1)
}

// MockEventPublisher is a mock of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventPublisher) PublishAccountEvent(ctx context.Context, event *service.AccountEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}

// MockAccountCache is a mock of service.AccountCache.
type MockAccountCache struct {
	mock.Mock
}

func NewMockAccountCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountCache {
	m := &MockAccountCache{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountCache) Get(ctx context.Context, id string) (*entity.PublicAccount, uint64, error) {
	args := m.Called(ctx, id)

	var account *entity.PublicAccount
	if v := args.Get(0); v != nil {
		account = v.(*entity.PublicAccount)
	}

	return account, args.Get(1).(uint64), args.Error(2)
}

func (m *MockAccountCache) Set(ctx context.Context, account *entity.PublicAccount, generation uint64) error {
	args := m.Called(ctx, account, generation)

	return args.Error(0)
}

func (m *MockAccountCache) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockOperationObserver is a mock of service.OperationObserver.
type MockOperationObserver struct {
	mock.Mock
}

func NewMockOperationObserver(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOperationObserver {
	m := &MockOperationObserver{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOperationObserver) ObserveOperation(operation string, err error) {
	m.Called(operation, err)
}
