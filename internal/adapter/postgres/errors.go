package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/wordlens/internal/domain"
)

// MapError wraps err with op and maps it onto domain errors:
//
//	pgx.ErrNoRows                          -> ErrNotFound
//	connect errors, SQLSTATE 08*, 53*, 57P* -> ErrUnavailable
//	42P01 (feedback table missing)         -> ErrUnavailable
//	23502, 23514, 22003                    -> ErrValidation
//
// Context cancellation passes through unmapped.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", op, err)
	}

	switch {
	case strings.HasPrefix(pgErr.Code, "08"),
		strings.HasPrefix(pgErr.Code, "53"),
		strings.HasPrefix(pgErr.Code, "57P"):
		return fmt.Errorf("%s: %w: %s", op, domain.ErrUnavailable, pgErr.Message)
	case pgErr.Code == "42P01":
		return fmt.Errorf("%s: schema not migrated: %w", op, domain.ErrUnavailable)
	case pgErr.Code == "23502", pgErr.Code == "23514", pgErr.Code == "22003":
		return fmt.Errorf("%s: %w: %s", op, domain.ErrValidation, pgErr.Message)
	}
	return fmt.Errorf("%s: %w", op, err)
}
