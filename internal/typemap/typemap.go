// Package typemap maps canonical SQL type names to TypeScript types and
// class-validator decorators.
package typemap

import "strings"

// Kind tags a TargetType.
type Kind int

const (
	// KindUnrecognized is any SQL type the mapping table does not know.
	// It renders as TypeScript "unknown" and never fails generation.
	KindUnrecognized Kind = iota
	KindNumber
	KindString
	KindBoolean
	KindDate
	// KindAny is for json/jsonb, whose shape the catalog cannot describe.
	KindAny
)

var kindNames = map[Kind]string{
	KindUnrecognized: "unknown",
	KindNumber:       "number",
	KindString:       "string",
	KindBoolean:      "boolean",
	KindDate:         "Date",
	KindAny:          "any",
}

// TargetType is the TypeScript type a column maps to.
type TargetType struct {
	Kind Kind

	// SQLType is the type the mapping was made from, kept so callers can
	// report what was not recognized.
	SQLType string
}

// String returns the TypeScript spelling of the type.
func (t TargetType) String() string {
	return kindNames[t.Kind]
}

// Recognized reports whether the SQL type had an entry in the mapping table.
func (t TargetType) Recognized() bool {
	return t.Kind != KindUnrecognized
}

// sqlTypes is the fixed mapping table. Lookups are exact-match.
var sqlTypes = map[string]Kind{
	"integer":                     KindNumber,
	"bigint":                      KindNumber,
	"numeric":                     KindNumber,
	"double precision":            KindNumber,
	"real":                        KindNumber,
	"character varying":           KindString,
	"text":                        KindString,
	"boolean":                     KindBoolean,
	"timestamp without time zone": KindDate,
	"json":                        KindAny,
	"jsonb":                       KindAny,
}

// MapType returns the TypeScript type for sqlType.
func MapType(sqlType string) TargetType {
	return TargetType{Kind: sqlTypes[sqlType], SQLType: sqlType}
}

// isArray reports whether sqlType names an array ("text[]", "integer[]").
func isArray(sqlType string) bool {
	return strings.Contains(sqlType, "[]")
}
