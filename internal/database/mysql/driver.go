package mysql

import (
	"context"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/koustreak/dtogen/internal/database"
	"github.com/koustreak/dtogen/internal/database/sqldb"
	"github.com/koustreak/dtogen/internal/errs"
)

// New opens a MySQL connection pool using the provided Config.
// It calls Ping to validate the connection before returning.
//
// The DSN uses the go-sql-driver format, e.g.
// "app:secret@tcp(localhost:3306)/shop".
func New(ctx context.Context, cfg *database.Config) (*sqldb.DB, error) {
	if cfg == nil || cfg.DSN == "" {
		return nil, errs.New(errs.ErrKindInvalidInput, "mysql dsn is required")
	}
	if _, err := gomysql.ParseDSN(cfg.DSN); err != nil {
		return nil, errs.Wrap(errs.ErrKindInvalidInput, "invalid mysql DSN", err)
	}
	return sqldb.Open(ctx, "mysql", cfg, database.DialectMySQL, mapError)
}

// SchemaFromDSN returns the database named in the DSN. In MySQL the
// information_schema "table_schema" column holds the database name.
func SchemaFromDSN(dsn string) (string, error) {
	parsed, err := gomysql.ParseDSN(dsn)
	if err != nil {
		return "", errs.Wrap(errs.ErrKindInvalidInput, "invalid mysql DSN", err)
	}
	if parsed.DBName == "" {
		return "", errs.New(errs.ErrKindInvalidInput, "mysql DSN names no database")
	}
	return parsed.DBName, nil
}
