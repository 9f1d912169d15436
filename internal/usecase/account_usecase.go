// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"accounts/internal/domain/entity"
)

// --- Input DTOs ---

// CreateAccountInput defines the data required to create a new account.
type CreateAccountInput struct {
	Username string
	Email    string
	Password string
}

// PageInput selects a 1-indexed page of accounts.
type PageInput struct {
	Page int
	Take int
}

// LookupInput identifies an account by email or username; at least one must be set.
type LookupInput struct {
	Email    string
	Username string
}

// --- Output DTOs ---

// AccountPage is one page of public account views.
type AccountPage struct {
	Accounts []*entity.PublicAccount
	Page     int
	Take     int
	Total    int64
}

// AccountUsecase defines the account lifecycle operations.
type AccountUsecase interface {
	Create(ctx context.Context, input *CreateAccountInput) (*entity.PublicAccount, error)
	FindByAll(ctx context.Context, input *PageInput) (*AccountPage, error)
	FindByID(ctx context.Context, accountID string) (*entity.PublicAccount, error)
	FindByEmailOrUsername(ctx context.Context, input *LookupInput) (*entity.PublicAccount, error)
	Activate(ctx context.Context, accountID string) (*entity.PublicAccount, error)
	Deactivate(ctx context.Context, accountID string) (*entity.PublicAccount, error)
}
