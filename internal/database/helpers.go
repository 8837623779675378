package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/obedvega/hito/internal/models"
)

// querier is satisfied by both *sql.DB and *sql.Tx so existence probes
// can run inside or outside a transaction.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// withTx executes fn within a transaction, rolling back on error and
// committing on success. Validation failures leave the store untouched.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return &models.StorageError{Op: "begin transaction", Err: err}
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return &models.StorageError{Op: "commit transaction", Err: err}
	}

	return nil
}

// exists probes for a row by id. Used for write-time reference checks.
func exists(ctx context.Context, q querier, table string, id int) (bool, error) {
	var one int
	query := fmt.Sprintf("SELECT 1 FROM %s WHERE id = ?", table)
	err := q.QueryRowContext(ctx, query, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, &models.StorageError{Op: "probe " + table, Err: err}
	}
	return true, nil
}

// formatDate renders a time as YYYY-MM-DD for storage.
func formatDate(t time.Time) string {
	return t.Format(models.DateFormat)
}

// parseDate parses a stored YYYY-MM-DD value. A failure here means the
// store is corrupt, so it surfaces as a StorageError.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(models.DateFormat, s)
	if err != nil {
		return time.Time{}, &models.StorageError{Op: "parse stored date", Err: err}
	}
	return t, nil
}

// nullDate converts an optional date to its stored representation.
func nullDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatDate(*t)
}
