package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// Constraint names from migrations/000001_init.up.sql
const (
	pkAccounts            = "pk_accounts"
	fkAccountRolesAccount = "fk_account_roles_account"
	fkAccountRolesRole    = "fk_account_roles_role"
)

func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error (only returned when TranslateError is enabled)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	pgErr, ok := asPgError(err)

	return ok && pgErr.Code == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	pgErr, ok := asPgError(err)

	return ok && pgErr.Code == pgForeignKeyViolation
}

// violatedConstraint returns the constraint name reported by PostgreSQL, if any.
func violatedConstraint(err error) string {
	if pgErr, ok := asPgError(err); ok {
		return pgErr.ConstraintName
	}

	return ""
}

func isNotNullConstraintViolation(err error) bool {
	if pgErr, ok := asPgError(err); ok {
		return pgErr.Code == pgNotNullViolation
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null")
}

// isAccountIDConflict reports a primary-key collision on accounts, as opposed
// to a taken username or email.
func isAccountIDConflict(err error) bool {
	return isUniqueConstraintViolation(err) && violatedConstraint(err) == pkAccounts
}
