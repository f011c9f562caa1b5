package typemap

import "slices"

// Decorator names exported by class-validator.
const (
	IsOptional = "IsOptional"
	IsString   = "IsString"
	IsArray    = "IsArray"
	IsBoolean  = "IsBoolean"
	IsDate     = "IsDate"
	IsNumber   = "IsNumber"
)

// canonicalOrder is the order decorators are listed in an import line.
var canonicalOrder = []string{IsOptional, IsString, IsArray, IsBoolean, IsDate, IsNumber}

// Annotation is one decorator applied to a field.
type Annotation struct {
	Name string
	Args string
}

// String renders the decorator, e.g. "@IsString({ each: true })".
func (a Annotation) String() string {
	return "@" + a.Name + "(" + a.Args + ")"
}

// Annotations returns the decorators for a column of sqlType.
// IsOptional comes first when nullable; at most one type group follows.
func Annotations(sqlType string, nullable bool) []Annotation {
	var out []Annotation
	if nullable {
		out = append(out, Annotation{Name: IsOptional})
	}

	switch {
	case isArray(sqlType):
		// element type is not inspected; arrays are assumed to hold strings
		out = append(out, Annotation{Name: IsArray}, Annotation{Name: IsString, Args: "{ each: true }"})
	case sqlType == "text" || sqlType == "character varying":
		out = append(out, Annotation{Name: IsString})
	case sqlType == "boolean":
		out = append(out, Annotation{Name: IsBoolean})
	case sqlType == "timestamp without time zone":
		out = append(out, Annotation{Name: IsDate})
	case sqlTypes[sqlType] == KindNumber:
		out = append(out, Annotation{Name: IsNumber})
	}
	return out
}

// Imports returns the distinct decorator names used in anns, in canonical
// order. Unknown names sort after the known ones, alphabetically.
func Imports(anns []Annotation) []string {
	seen := make(map[string]bool)
	var names []string
	for _, a := range anns {
		if !seen[a.Name] {
			seen[a.Name] = true
			names = append(names, a.Name)
		}
	}

	slices.SortFunc(names, func(a, b string) int {
		ia, ib := rank(a), rank(b)
		if ia != ib {
			return ia - ib
		}
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	})
	return names
}

func rank(name string) int {
	if i := slices.Index(canonicalOrder, name); i >= 0 {
		return i
	}
	return len(canonicalOrder)
}
