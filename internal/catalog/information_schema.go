package catalog

import (
	"context"
	"fmt"

	"github.com/koustreak/dtogen/internal/database"
)

// InformationSchema implements Reader using the ANSI information_schema
// views. It serves postgres, mysql and duckdb; only placeholder style,
// identifier quoting and type spelling differ between them.
type InformationSchema struct {
	db database.DB
}

// NewInformationSchema creates a new information_schema reader
func NewInformationSchema(db database.DB) *InformationSchema {
	return &InformationSchema{db: db}
}

// ListTables returns all table names in the given schema.
// Views are included, matching what information_schema.tables reports.
func (r *InformationSchema) ListTables(ctx context.Context, schema string) ([]string, error) {
	q, args, err := database.Select("information_schema.tables", r.db.Dialect()).
		Columns("table_name").
		Where("table_schema", "=", schema).
		OrderBy("table_name", database.Asc).
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

// ListColumns returns name, type and nullability for every column of table.
func (r *InformationSchema) ListColumns(ctx context.Context, schema, table string) ([]Column, error) {
	dialect := r.db.Dialect()

	cols := []string{"column_name", "data_type", "is_nullable"}
	if dialect == database.DialectPostgres {
		// data_type is just "ARRAY" / "USER-DEFINED" there; udt_name says what of.
		cols = append(cols, "udt_name")
	}

	q, args, err := database.Select("information_schema.columns", dialect).
		Columns(cols...).
		Where("table_schema", "=", schema).
		Where("table_name", "=", table).
		OrderBy("ordinal_position", database.Asc).
		Build()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list columns of %s.%s: %w", schema, table, err)
	}
	defer rows.Close()

	columns := make([]Column, 0)
	for rows.Next() {
		var name, dataType, nullable, udtName string
		dest := []any{&name, &dataType, &nullable}
		if dialect == database.DialectPostgres {
			dest = append(dest, &udtName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}

		columns = append(columns, Column{
			Name:       name,
			DataType:   NormalizeType(dialect, dataType, udtName),
			IsNullable: nullable == "YES",
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list columns of %s.%s: %w", schema, table, err)
	}
	return columns, nil
}
