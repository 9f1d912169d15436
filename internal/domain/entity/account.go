// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the core entity in the system, representing a registered user.
// An account is active while DeactivatedAt is nil.
type Account struct {
	ID             string     // Opaque URL-safe identifier, immutable once assigned.
	Username       string     // Unique, compared exactly.
	Email          string     // Unique, compared exactly.
	CredentialHash string     `json:"-"` // Salted one-way hash; never leaves the store boundary.
	DeactivatedAt  *time.Time // Nil while the account is active.
	Roles          Roles      // Assigned role identifiers.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PublicAccount is the externally visible projection of an Account.
type PublicAccount struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	DeactivatedAt *time.Time `json:"deactivated_at"`
	Roles         []string   `json:"roles"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// IsActive reports whether the account is in the active state.
func (a *Account) IsActive() bool {
	return a.DeactivatedAt == nil
}

// Public strips the credential hash and returns the externally visible view.
func (a *Account) Public() *PublicAccount {
	if a == nil {
		return nil
	}

	return &PublicAccount{
		ID:            a.ID,
		Username:      a.Username,
		Email:         a.Email,
		DeactivatedAt: a.DeactivatedAt,
		Roles:         a.Roles.Sorted().ToStrings(),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// PublicAccounts projects a slice of accounts, preserving order.
func PublicAccounts(accounts []*Account) []*PublicAccount {
	result := make([]*PublicAccount, 0, len(accounts))
	for _, a := range accounts {
		result = append(result, a.Public())
	}

	return result
}
