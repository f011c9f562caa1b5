// Package sqldb adapts a database/sql pool to database.DB.
//
// The mysql, sqlite and duckdb drivers all speak database/sql; they differ
// only in dialect and in how native errors are classified, so each of them
// builds a *sqldb.DB with its own ErrorMapper.
package sqldb

import (
	"context"
	"database/sql"

	"github.com/koustreak/dtogen/internal/database"
	"github.com/koustreak/dtogen/internal/errs"
)

// ErrorMapper translates a native driver error into *errs.Error.
// It is never called with a nil error.
type ErrorMapper func(err error, msg string) *errs.Error

// DB implements database.DB on top of *sql.DB.
// It is safe for concurrent use by multiple goroutines.
type DB struct {
	db       *sql.DB
	dialect  database.Dialect
	mapError ErrorMapper
}

// New wraps an already opened pool. It does not ping.
func New(db *sql.DB, dialect database.Dialect, mapError ErrorMapper) *DB {
	return &DB{db: db, dialect: dialect, mapError: mapError}
}

// Open opens driverName with cfg's DSN, applies the pool settings and pings
// within cfg.ConnectTimeout. The pool is closed again if the ping fails.
func Open(ctx context.Context, driverName string, cfg *database.Config, dialect database.Dialect, mapError ErrorMapper) (*DB, error) {
	db, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindInvalidInput, "invalid DSN", err)
	}

	if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(int(cfg.MaxConns))
	}
	db.SetMaxIdleConns(int(cfg.MinConns))
	db.SetConnMaxLifetime(cfg.MaxConnLifetime)
	db.SetConnMaxIdleTime(cfg.MaxConnIdleTime)

	d := New(db, dialect, mapError)

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	if err := d.Ping(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return d, nil
}

// --- database.DB implementation ---

func (d *DB) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return d.mapError(err, "ping failed")
	}
	return nil
}

func (d *DB) Close() {
	_ = d.db.Close()
}

func (d *DB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, d.mapError(err, "query failed")
	}
	return &sqlRows{rows: rows, mapError: d.mapError}, nil
}

func (d *DB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return &sqlRow{row: d.db.QueryRowContext(ctx, query, args...), mapError: d.mapError}
}

func (d *DB) Dialect() database.Dialect {
	return d.dialect
}

// --- sql.DB type wrappers ---

type sqlRows struct {
	rows     *sql.Rows
	mapError ErrorMapper
}

func (r *sqlRows) Next() bool { return r.rows.Next() }
func (r *sqlRows) Close()     { _ = r.rows.Close() }

func (r *sqlRows) Scan(dest ...any) error {
	if err := r.rows.Scan(dest...); err != nil {
		return r.mapError(err, "scan failed")
	}
	return nil
}

func (r *sqlRows) Err() error {
	if err := r.rows.Err(); err != nil {
		return r.mapError(err, "row iteration failed")
	}
	return nil
}

type sqlRow struct {
	row      *sql.Row
	mapError ErrorMapper
}

func (r *sqlRow) Scan(dest ...any) error {
	if err := r.row.Scan(dest...); err != nil {
		return r.mapError(err, "scan failed")
	}
	return nil
}
