// Package database defines the read-only connection contract shared by every
// catalog backend, plus the small query builder used to spell catalog
// queries for each dialect.
//
// Usage:
//
//	cfg := database.DefaultConfig(dsn)
//	db, err := connect.Open(ctx, cfg)
//	if err != nil { ... }
//	defer db.Close()
//
//	sql, args, err := database.Select("information_schema.tables", db.Dialect()).
//	    Columns("table_name").
//	    Where("table_schema", "=", "public").
//	    OrderBy("table_name", database.Asc).
//	    Build()
package database

// Dialect controls placeholder style and identifier quoting.
type Dialect int

const (
	// DialectPostgres uses $1, $2, … placeholders and "double" quotes.
	DialectPostgres Dialect = iota

	// DialectMySQL uses ? placeholders and `backtick` quotes.
	DialectMySQL

	// DialectSQLite uses ? placeholders and "double" quotes.
	DialectSQLite

	// DialectDuckDB uses ? placeholders and "double" quotes.
	DialectDuckDB
)

func (d Dialect) String() string {
	switch d {
	case DialectMySQL:
		return "mysql"
	case DialectSQLite:
		return "sqlite"
	case DialectDuckDB:
		return "duckdb"
	default:
		return "postgres"
	}
}
