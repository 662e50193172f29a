package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"restaurant-inventory/internal/model"
)

const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgStringTooLong       = "22001"
)

// translateError maps driver errors onto model sentinels and prefixes op.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, model.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation, pgUniqueViolation, pgCheckViolation, pgNotNullViolation, pgStringTooLong:
			return &ConstraintError{Op: op, Code: pgErr.Code, Constraint: pgErr.ConstraintName, Detail: pgErr.Detail}
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}

type ConstraintError struct {
	Op         string
	Code       string
	Constraint string
	Detail     string
}

func (e *ConstraintError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: constraint %s violated: %s", e.Op, e.Constraint, e.Detail)
	}
	return fmt.Sprintf("%s: constraint %s violated", e.Op, e.Constraint)
}

func (e *ConstraintError) Unwrap() error {
	return model.ErrConstraintViolation
}

func (e *ConstraintError) IsUnique() bool {
	return e.Code == pgUniqueViolation
}

func (e *ConstraintError) IsForeignKey() bool {
	return e.Code == pgForeignKeyViolation
}
