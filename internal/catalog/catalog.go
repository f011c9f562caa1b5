// Package catalog reads table and column metadata from a database's
// self-describing catalog.
package catalog

import (
	"context"

	"github.com/koustreak/dtogen/internal/database"
)

// Column describes one column as declared in the catalog.
type Column struct {
	Name string

	// DataType is the declared SQL type in canonical (postgres) spelling,
	// e.g. "character varying", "timestamp without time zone", "text[]".
	DataType string

	IsNullable bool
}

// Reader is the interface for introspecting a database schema.
type Reader interface {
	// ListTables returns every table name in schema, ordered by name.
	ListTables(ctx context.Context, schema string) ([]string, error)

	// ListColumns returns the columns of one table in ordinal order.
	ListColumns(ctx context.Context, schema, table string) ([]Column, error)
}

// New returns the Reader suited to db's dialect.
func New(db database.DB) Reader {
	if db.Dialect() == database.DialectSQLite {
		return NewSQLite(db)
	}
	return NewInformationSchema(db)
}
