package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domainerrors "cakehaven/internal/domain/errors"
)

func TestConstraintHelpers(t *testing.T) {
	pgxUnique := &pgconn.PgError{Code: "23505", ConstraintName: "idx_credentials_email"}
	pqForeignKey := &pq.Error{Code: "23503", Constraint: "fk_cakes_shop"}

	assert.True(t, isUniqueConstraintViolation(pgxUnique))
	assert.True(t, isUniqueConstraintViolation(fmt.Errorf("insert: %w", pgxUnique)))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(pqForeignKey))
	assert.Equal(t, "idx_credentials_email", constraintName(errors.WithStack(pgxUnique)))

	assert.True(t, isForeignKeyConstraintViolation(pqForeignKey))
	assert.Equal(t, "fk_cakes_shop", constraintName(pqForeignKey))

	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.True(t, isCheckConstraintViolation(&pq.Error{Code: "23514"}))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))

	plain := errors.New("connection reset")
	assert.False(t, isUniqueConstraintViolation(plain))
	assert.False(t, isNotNullConstraintViolation(plain))
	assert.Empty(t, sqlState(plain))
	assert.Empty(t, constraintName(plain))
}

func TestExecuteError(t *testing.T) {
	tooLong := executeError(&pgconn.PgError{Code: "22001"}, "failed to create cake")
	assert.ErrorIs(t, tooLong, domainerrors.ErrValidationFailed)

	outOfRange := executeError(errors.WithStack(&pq.Error{Code: "22003"}), "failed to create order")
	assert.ErrorIs(t, outOfRange, domainerrors.ErrValidationFailed)

	other := executeError(errors.New("connection reset"), "failed to create cake")
	assert.NotErrorIs(t, other, domainerrors.ErrValidationFailed)
	assert.Contains(t, other.Error(), "connection reset")
}
