package catalog

import (
	"testing"

	"github.com/koustreak/dtogen/internal/database"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		name     string
		dialect  database.Dialect
		dataType string
		udtName  string
		want     string
	}{
		{"postgres passthrough", database.DialectPostgres, "character varying", "varchar", "character varying"},
		{"postgres text array", database.DialectPostgres, "ARRAY", "_text", "text[]"},
		{"postgres int array", database.DialectPostgres, "ARRAY", "_int4", "integer[]"},
		{"postgres timestamptz array", database.DialectPostgres, "ARRAY", "_timestamptz", "timestamp with time zone[]"},
		{"postgres enum", database.DialectPostgres, "USER-DEFINED", "mood", "mood"},
		{"mysql varchar", database.DialectMySQL, "varchar", "", "character varying"},
		{"mysql int", database.DialectMySQL, "int", "", "integer"},
		{"mysql double", database.DialectMySQL, "double", "", "double precision"},
		{"mysql tinyint stays", database.DialectMySQL, "tinyint", "", "tinyint"},
		{"duckdb upper", database.DialectDuckDB, "VARCHAR", "", "character varying"},
		{"duckdb decimal", database.DialectDuckDB, "DECIMAL(18,3)", "", "numeric"},
		{"duckdb list", database.DialectDuckDB, "INTEGER[]", "", "integer[]"},
		{"duckdb tz", database.DialectDuckDB, "TIMESTAMP WITH TIME ZONE", "", "timestamp with time zone"},
		{"sqlite sized", database.DialectSQLite, "VARCHAR(255)", "", "character varying"},
		{"sqlite precision keeps tail", database.DialectSQLite, "TIMESTAMP(6) WITH TIME ZONE", "", "timestamp with time zone"},
		{"sqlite empty", database.DialectSQLite, "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeType(tt.dialect, tt.dataType, tt.udtName))
		})
	}
}
