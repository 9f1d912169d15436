// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents a role identifier from the static role catalog.
type Role string

const (
	// RoleUser is assigned to every account on creation.
	RoleUser Role = "user"
	// RoleAdmin grants administrative operations.
	RoleAdmin Role = "admin"
	// RoleDeveloper marks developer accounts.
	RoleDeveloper Role = "developer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is part of the catalog.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleDeveloper:
		return true
	default:
		return false
	}
}

// Catalog returns every role known to the system.
func Catalog() Roles {
	return Roles{RoleUser, RoleAdmin, RoleDeveloper}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// Sorted returns a copy of the roles in lexical order.
func (rs Roles) Sorted() Roles {
	sorted := slices.Clone(rs)
	slices.Sort(sorted)

	return sorted
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
