package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/ranking-mk2/internal/logger"
	"github.com/MKhiriev/ranking-mk2/migrations"
)

// DB wraps *sql.DB with the driver name (needed to pick the migration
// dialect) and a driver-specific error classificator consulted by the
// retrying query wrappers below.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// retryable reports whether err is a transient driver failure (connection
// loss, deadlock rollback) worth one more attempt. Drivers without a
// classificator never retry.
func (db *DB) retryable(err error) bool {
	if err == nil || db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// queryRow runs QueryRowContext with a single retry on transient failures.
func (db *DB) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	row := db.QueryRowContext(ctx, query, args...)
	if db.retryable(row.Err()) {
		db.logger.Warn().Err(row.Err()).Msg("transient database error, retrying query")
		row = db.QueryRowContext(ctx, query, args...)
	}
	return row
}

// query runs QueryContext with a single retry on transient failures.
func (db *DB) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if db.retryable(err) {
		db.logger.Warn().Err(err).Msg("transient database error, retrying query")
		rows, err = db.QueryContext(ctx, query, args...)
	}
	return rows, err
}

// exec runs ExecContext with a single retry on transient failures.
func (db *DB) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if db.retryable(err) {
		db.logger.Warn().Err(err).Msg("transient database error, retrying statement")
		result, err = db.ExecContext(ctx, query, args...)
	}
	return result, err
}
