package postgres

import (
	domainerrors "cakehaven/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgStringTooLong       = "22001"
	pgNumericOutOfRange   = "22003"
)

// sqlState extracts the SQLSTATE from pgx or lib/pq driver errors.
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}

// constraintName returns the violated constraint when the driver reports one.
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}

	return ""
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || sqlState(err) == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || sqlState(err) == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	return sqlState(err) == pgNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || sqlState(err) == pgCheckViolation
}

// executeError reports values the columns cannot hold as a validation failure.
// Anything else becomes a DatabaseExecuteError.
func executeError(err error, details string) error {
	switch sqlState(err) {
	case pgStringTooLong:
		return domainerrors.ErrValidationFailed.WithDetails("a value is longer than the field allows")
	case pgNumericOutOfRange:
		return domainerrors.ErrValidationFailed.WithDetails("a number is out of range")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
