// Package sqlite opens SQLite databases through the pure-Go modernc driver.
package sqlite

import (
	"context"
	"errors"
	"strings"

	"github.com/koustreak/dtogen/internal/database"
	"github.com/koustreak/dtogen/internal/database/sqldb"
	"github.com/koustreak/dtogen/internal/errs"
	_ "modernc.org/sqlite" // register "sqlite" driver
)

// New opens the SQLite database at cfg.DSN (a file path, "file:" URI or
// ":memory:"). SQLite serialises writers, but the catalog reads here never
// write, so the configured pool size is kept.
func New(ctx context.Context, cfg *database.Config) (*sqldb.DB, error) {
	if cfg == nil || cfg.DSN == "" {
		return nil, errs.New(errs.ErrKindInvalidInput, "sqlite dsn is required")
	}
	return sqldb.Open(ctx, "sqlite", cfg, database.DialectSQLite, mapError)
}

// mapError classifies SQLite errors. The modernc driver reports most
// failures as plain text, so classification is by message.
func mapError(err error, msg string) *errs.Error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.Wrap(errs.ErrKindTimeout, msg, err)
	}

	text := err.Error()
	switch {
	case strings.Contains(text, "no such table"):
		return errs.Wrap(errs.ErrKindNotFound, msg, err)
	case strings.Contains(text, "unable to open database"),
		strings.Contains(text, "out of memory"):
		return errs.Wrap(errs.ErrKindConnectionFailed, msg, err)
	case strings.Contains(text, "authorization denied"),
		strings.Contains(text, "readonly"):
		return errs.Wrap(errs.ErrKindPermissionDenied, msg, err)
	default:
		return errs.Wrap(errs.ErrKindQueryFailed, msg, err)
	}
}
