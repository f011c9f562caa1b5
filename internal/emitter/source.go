package emitter

import (
	"path/filepath"
	"strings"

	"github.com/koustreak/dtogen/internal/catalog"
	"github.com/koustreak/dtogen/internal/typemap"
)

// DefaultClassSuffix is appended to the table name to form the class name.
const DefaultClassSuffix = "BaseModel"

const validatorModule = "class-validator"

// Skip reports whether a table is internal and gets no DTO.
func Skip(table string) bool {
	return strings.HasPrefix(table, "_")
}

// FileName returns the output file name for a table.
func FileName(table string) string {
	return table + ".ts"
}

// SafeName reports whether the table's file lands directly inside the
// output directory. Names carrying a path separator do not.
func SafeName(table string) bool {
	name := FileName(table)
	return table != "" && !strings.ContainsAny(table, `/\`) && filepath.Base(name) == name
}

// field is one rendered class member.
type field struct {
	name        string
	optional    bool
	tsType      typemap.TargetType
	annotations []typemap.Annotation
}

func (f field) write(sb *strings.Builder) {
	for _, a := range f.annotations {
		sb.WriteString("  ")
		sb.WriteString(a.String())
		sb.WriteByte('\n')
	}
	marker := "!"
	if f.optional {
		marker = "?"
	}
	sb.WriteString("  " + f.name + marker + ": " + f.tsType.String() + ";\n")
}

// Source renders the unformatted DTO class for table.
// Fields keep the order of cols.
func Source(table, classSuffix string, cols []catalog.Column) []byte {
	fields := make([]field, len(cols))
	var used []typemap.Annotation
	for i, c := range cols {
		fields[i] = field{
			name:        c.Name,
			optional:    c.IsNullable,
			tsType:      typemap.MapType(c.DataType),
			annotations: typemap.Annotations(c.DataType, c.IsNullable),
		}
		used = append(used, fields[i].annotations...)
	}

	var sb strings.Builder
	if imports := typemap.Imports(used); len(imports) > 0 {
		sb.WriteString("import { " + strings.Join(imports, ", ") + ` } from "` + validatorModule + "\";\n\n")
	}

	sb.WriteString("export class " + table + classSuffix + " {\n")
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte('\n')
		}
		f.write(&sb)
	}
	sb.WriteString("}\n")

	return []byte(sb.String())
}
