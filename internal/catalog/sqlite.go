package catalog

import (
	"context"
	"fmt"

	"github.com/koustreak/dtogen/internal/database"
)

// SQLite implements Reader for SQLite, which has no information_schema.
// Tables come from sqlite_master, columns from pragma_table_info.
type SQLite struct {
	db database.DB
}

// NewSQLite creates a new SQLite catalog reader
func NewSQLite(db database.DB) *SQLite {
	return &SQLite{db: db}
}

// ListTables returns tables and views of the given schema ("main" for the
// primary database, or an attached name). SQLite's own sqlite_* tables
// are left out.
func (r *SQLite) ListTables(ctx context.Context, schema string) ([]string, error) {
	q, args, err := database.Select(schema+".sqlite_master", database.DialectSQLite).
		Columns("name").
		Where("type", "!=", "index").
		Where("type", "!=", "trigger").
		Where("name", "NOT LIKE", "sqlite_%").
		OrderBy("name", database.Asc).
		Build()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	tables, err := database.ScanStrings(rows)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}

// ListColumns returns the declared columns of table in cid order.
func (r *SQLite) ListColumns(ctx context.Context, schema, table string) ([]Column, error) {
	const q = `
		SELECT name, type, "notnull"
		FROM pragma_table_info(?, ?)
		ORDER BY cid`

	rows, err := r.db.Query(ctx, q, table, schema)
	if err != nil {
		return nil, fmt.Errorf("list columns of %s.%s: %w", schema, table, err)
	}
	defer rows.Close()

	columns := make([]Column, 0)
	for rows.Next() {
		var (
			name, declared string
			notNull        int
		)
		if err := rows.Scan(&name, &declared, &notNull); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		columns = append(columns, Column{
			Name:       name,
			DataType:   NormalizeType(database.DialectSQLite, declared, ""),
			IsNullable: notNull == 0,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list columns of %s.%s: %w", schema, table, err)
	}
	return columns, nil
}
