package catalog

import (
	"strings"

	"github.com/koustreak/dtogen/internal/database"
)

// aliases rewrites the spellings mysql, duckdb and sqlite report into the
// postgres names the type mapper understands. Keys are lower-cased with any
// length/precision suffix removed.
var aliases = map[string]string{
	"varchar":           "character varying",
	"nvarchar":          "character varying",
	"char":              "character",
	"nchar":             "character",
	"bpchar":            "character",
	"string":            "character varying",
	"tinytext":          "text",
	"mediumtext":        "text",
	"longtext":          "text",
	"int":               "integer",
	"int4":              "integer",
	"int8":              "bigint",
	"int2":              "smallint",
	"float4":            "real",
	"float":             "real",
	"float8":            "double precision",
	"double":            "double precision",
	"decimal":           "numeric",
	"bool":              "boolean",
	"datetime":          "timestamp without time zone",
	"timestamp":         "timestamp without time zone",
	"timestamptz":       "timestamp with time zone",
	"timestamp_s":       "timestamp without time zone",
	"timestamp_ms":      "timestamp without time zone",
	"timestamp_ns":      "timestamp without time zone",
	"timestamp with tz": "timestamp with time zone",
}

// NormalizeType returns the canonical spelling for a type reported by the
// given dialect's catalog. udtName is only consulted for postgres, where
// information_schema.columns.data_type is "ARRAY" for every array column.
// Unrecognized spellings pass through lower-cased.
func NormalizeType(d database.Dialect, dataType, udtName string) string {
	if d == database.DialectPostgres {
		switch dataType {
		case "ARRAY":
			if elem, ok := strings.CutPrefix(udtName, "_"); ok {
				return canonical(elem) + "[]"
			}
		case "USER-DEFINED":
			return udtName
		}
		return dataType
	}
	return canonical(dataType)
}

func canonical(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))

	if elem, ok := strings.CutSuffix(t, "[]"); ok {
		return canonical(elem) + "[]"
	}

	// varchar(255), DECIMAL(18,3)
	base := t
	if i := strings.IndexByte(t, '('); i >= 0 {
		base = strings.TrimSpace(t[:i])
		if j := strings.LastIndexByte(t, ')'); j > i && j+1 < len(t) {
			// "timestamp(6) with time zone" keeps its tail
			base += t[j+1:]
		}
	}

	if a, ok := aliases[base]; ok {
		return a
	}
	return base
}
