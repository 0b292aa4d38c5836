package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/food-ordering-api/internal/store"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// foreignKeyViolationCode is the PostgreSQL error code for foreign key violations
	foreignKeyViolationCode = "23503"

	// checkViolationCode is the PostgreSQL error code for check constraint violations
	checkViolationCode = "23514"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"
)

// MapError maps a database error to a store error.
// No rows becomes store.ErrNotFound and a unique violation becomes
// store.ErrDuplicate. Everything else is a *store.StoreError that keeps
// the driver error as its cause. Raw driver text never reaches the
// sentinel-wrapped messages.
func MapError(entity, operation string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", store.ErrNotFound, entity)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %s (%s)", store.ErrDuplicate, entity, pgErr.ConstraintName)
		case foreignKeyViolationCode, checkViolationCode:
			return store.NewStoreError(
				entity,
				operation,
				fmt.Sprintf("constraint violation (%s)", pgErr.ConstraintName),
				err,
			)
		case notNullViolationCode:
			return store.NewStoreError(
				entity,
				operation,
				fmt.Sprintf("not null violation (%s)", pgErr.ColumnName),
				err,
			)
		}
	}

	return store.NewStoreError(entity, operation, "database error", err)
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
