// Package connect opens the database.DB implementation matching a
// configured driver. It is the only package that imports every driver.
package connect

import (
	"context"
	"fmt"

	"github.com/koustreak/dtogen/internal/database"
	"github.com/koustreak/dtogen/internal/database/duckdb"
	"github.com/koustreak/dtogen/internal/database/mysql"
	"github.com/koustreak/dtogen/internal/database/postgres"
	"github.com/koustreak/dtogen/internal/database/sqlite"
	"github.com/koustreak/dtogen/internal/errs"
)

// Open connects to the database described by cfg and pings it.
// The caller owns the returned DB and must Close it.
func Open(ctx context.Context, cfg *database.Config) (database.DB, error) {
	if cfg == nil {
		return nil, errs.New(errs.ErrKindInvalidInput, "database config is required")
	}

	var (
		db  database.DB
		err error
	)
	switch cfg.Driver {
	case database.DriverPostgres:
		db, err = asDB(postgres.New(ctx, cfg))
	case database.DriverMySQL:
		db, err = asDB(mysql.New(ctx, cfg))
	case database.DriverSQLite:
		db, err = asDB(sqlite.New(ctx, cfg))
	case database.DriverDuckDB:
		db, err = asDB(duckdb.New(ctx, cfg))
	default:
		return nil, errs.New(errs.ErrKindInvalidInput, fmt.Sprintf("unsupported driver %q", cfg.Driver))
	}
	if err != nil {
		return nil, err
	}
	return db, nil
}

// asDB keeps a failed constructor's nil pointer from becoming a non-nil
// interface value.
func asDB[T database.DB](db T, err error) (database.DB, error) {
	if err != nil {
		return nil, err
	}
	return db, nil
}
