package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/accounts_backoffice/internal/apperrors"
)

const uniqueViolation = "23505"

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to rollback transaction", err)
	}
	return nil
}

// inTx runs fn inside a transaction, committing only when fn succeeds.
func (r *BaseRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // no-op once committed

	if err := fn(tx); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// notFoundOr maps pgx.ErrNoRows to apperrors.ErrNotFound and wraps anything else.
func notFoundOr(err error, entity, key string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(entity, key)
	}
	return apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to load %s %s", entity, key), err)
}

// writeErr maps unique violations to apperrors.ErrDuplicate.
func writeErr(err error, entity, key string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s %s", apperrors.ErrDuplicate, entity, key)
	}
	return apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to save %s %s", entity, key), err)
}

func queryErr(err error, what string) error {
	return apperrors.NewAppError(http.StatusInternalServerError, "failed to query "+what, err)
}

func exists(ctx context.Context, q querier, query string, args ...any) (bool, error) {
	var found bool
	if err := q.QueryRow(ctx, query, args...).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

// prefixColumns qualifies a comma-separated column list with a table alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
