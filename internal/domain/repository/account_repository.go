// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"accounts/internal/domain/entity"
)

var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateAccount is returned when a username or email is already taken.
	ErrDuplicateAccount = errors.New("account username or email already exists")

	// ErrIDConflict is returned when the generated account id is already in use.
	ErrIDConflict = errors.New("account id already exists")

	// ErrLifecycleConflict is returned when a conditional lifecycle update matched an
	// existing account whose current state does not allow the transition.
	ErrLifecycleConflict = errors.New("account lifecycle state conflict")
)

// AccountRepository defines the standard operations for account persistence.
type AccountRepository interface {
	// Create persists a new account together with its initial role memberships.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves a single account, including its roles.
	FindByID(ctx context.Context, id string) (*entity.Account, error)

	// FindByEmailOrUsername retrieves the first account matching either non-empty argument.
	FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.Account, error)

	// ListPage returns the 1-indexed page of accounts ordered by creation time.
	// A page beyond the data is an empty slice, not an error.
	ListPage(ctx context.Context, page, size int) ([]*entity.Account, error)

	// Count returns the total number of stored accounts.
	Count(ctx context.Context) (int64, error)

	// SetDeactivatedAt atomically moves the account between lifecycle states.
	// A non-nil value deactivates an active account; nil reactivates a deactivated one.
	// It returns ErrAccountNotFound or ErrLifecycleConflict when the transition is not applied.
	SetDeactivatedAt(ctx context.Context, id string, at *time.Time) (*entity.Account, error)
}
