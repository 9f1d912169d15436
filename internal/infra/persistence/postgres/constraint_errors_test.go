package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintHelpers(t *testing.T) {
	unique := errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "uq_accounts_email"}, "insert")
	fk := errors.Wrap(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: fkAccountRolesRole}, "insert")
	notNull := &pgconn.PgError{Code: pgNotNullViolation}

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(fk))

	assert.True(t, isForeignKeyConstraintViolation(fk))
	assert.Equal(t, fkAccountRolesRole, violatedConstraint(fk))
	assert.Empty(t, violatedConstraint(errors.New("plain")))

	assert.False(t, isAccountIDConflict(unique))
	assert.True(t, isAccountIDConflict(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: pkAccounts}))
	assert.False(t, isAccountIDConflict(gorm.ErrDuplicatedKey))

	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.False(t, isNotNullConstraintViolation(errors.New("connection reset")))
}
