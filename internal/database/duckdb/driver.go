// Package duckdb opens DuckDB databases. DuckDB exposes a standard
// information_schema, so catalog reads share the ANSI reader with
// postgres and mysql.
package duckdb

import (
	"context"
	"errors"
	"strings"

	"github.com/koustreak/dtogen/internal/database"
	"github.com/koustreak/dtogen/internal/database/sqldb"
	"github.com/koustreak/dtogen/internal/errs"
	_ "github.com/marcboeker/go-duckdb" // register "duckdb" driver
)

// New opens the DuckDB database at cfg.DSN. An empty path is not accepted:
// an in-memory DuckDB has no tables to generate from.
func New(ctx context.Context, cfg *database.Config) (*sqldb.DB, error) {
	if cfg == nil || cfg.DSN == "" {
		return nil, errs.New(errs.ErrKindInvalidInput, "duckdb dsn is required")
	}
	return sqldb.Open(ctx, "duckdb", cfg, database.DialectDuckDB, mapError)
}

// mapError classifies DuckDB errors by their "<Kind> Error:" prefix.
func mapError(err error, msg string) *errs.Error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.Wrap(errs.ErrKindTimeout, msg, err)
	}

	text := err.Error()
	switch {
	case strings.Contains(text, "Catalog Error"):
		return errs.Wrap(errs.ErrKindNotFound, msg, err)
	case strings.Contains(text, "IO Error"),
		strings.Contains(text, "Connection Error"):
		return errs.Wrap(errs.ErrKindConnectionFailed, msg, err)
	case strings.Contains(text, "Permission Error"):
		return errs.Wrap(errs.ErrKindPermissionDenied, msg, err)
	default:
		return errs.Wrap(errs.ErrKindQueryFailed, msg, err)
	}
}
