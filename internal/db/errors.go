package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const uniqueViolation = "23505"

// ConflictError indicates a storage-level uniqueness violation surfaced at
// write time, for example two concurrent saves racing for the same title.
type ConflictError struct {
	Constraint string
	Cause      error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("uniqueness conflict on %s: %v", e.Constraint, e.Cause)
}

func (e *ConflictError) Unwrap() error {
	return e.Cause
}

// asConflict maps a pg unique violation to ConflictError, passing other
// errors through.
func asConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &ConflictError{Constraint: pgErr.ConstraintName, Cause: err}
	}
	return err
}
