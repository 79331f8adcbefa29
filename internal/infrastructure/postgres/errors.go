package postgres

import (
	"errors"
	"fmt"

	"github.com/go-event-checkin/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes this layer discriminates on.
const (
	codeUniqueViolation  = "23505"
	codeCheckViolation   = "23514"
	codeNotNullViolation = "23502"
)

// mapErr translates driver errors into domain sentinels so services and
// handlers never see pgx types. Anything that is not a constraint or
// missing-row condition is treated as transient storage trouble.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w", pgErr.ConstraintName, domain.ErrConflict)
		case codeCheckViolation, codeNotNullViolation:
			return fmt.Errorf("%s: %w", pgErr.ConstraintName, domain.ErrBadRequest)
		}
	}
	return fmt.Errorf("%v: %w", err, domain.ErrUnavailable)
}
