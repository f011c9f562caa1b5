package format

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/koustreak/dtogen/internal/errs"
)

// tsconfig enables legacy decorators, which is what class-validator uses.
const tsconfig = `{"compilerOptions":{"experimentalDecorators":true}}`

var namedImport = regexp.MustCompile(`^import\s*\{([^}]*)\}\s*from\s*"([^"]*)"\s*;?$`)

// Builtin is an in-process formatter. The source is parsed with esbuild
// first, so anything that is not valid TypeScript fails formatting.
// The layout it produces is deterministic:
//   - two-space indentation by bracket depth
//   - no trailing whitespace, at most one blank line in a row
//   - no blank line after "{" or before "}"
//   - double-quoted import specifiers, named imports wrapped one per line
//     when the import would exceed the print width
//   - exactly one trailing newline
//
// Every line is re-indented, so multi-line string literals and block
// comments lose their inner indentation.
type Builtin struct {
	printWidth int
}

// NewBuiltin returns a Builtin formatter wrapping imports at printWidth.
func NewBuiltin(printWidth int) *Builtin {
	if printWidth <= 0 {
		printWidth = DefaultPrintWidth
	}
	return &Builtin{printWidth: printWidth}
}

func (b *Builtin) Format(ctx context.Context, name string, src []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(errs.ErrKindFormatFailed, "format canceled", err)
	}
	if err := parse(name, src); err != nil {
		return nil, err
	}
	return b.layout(src), nil
}

func parse(name string, src []byte) error {
	res := api.Transform(string(src), api.TransformOptions{
		Loader:      api.LoaderTS,
		Sourcefile:  name,
		TsconfigRaw: tsconfig,
		LogLevel:    api.LogLevelSilent,
	})
	if len(res.Errors) == 0 {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors))
	for _, m := range res.Errors {
		if m.Location != nil {
			msgs = append(msgs, fmt.Sprintf("%d:%d: %s", m.Location.Line, m.Location.Column, m.Text))
		} else {
			msgs = append(msgs, m.Text)
		}
	}
	return errs.Wrap(errs.ErrKindFormatFailed,
		fmt.Sprintf("cannot parse %s", name), errors.New(strings.Join(msgs, "; ")))
}

func (b *Builtin) layout(src []byte) []byte {
	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	lines := joinImports(strings.Split(text, "\n"))

	out := make([]string, 0, len(lines))
	depth := 0
	pendingBlank := false

	for _, line := range lines {
		if line == "" {
			pendingBlank = true
			continue
		}
		if strings.HasPrefix(line, "import") {
			line = b.importLine(line)
		}

		if pendingBlank && len(out) > 0 &&
			!strings.HasSuffix(out[len(out)-1], "{") && !strings.HasPrefix(line, "}") {
			out = append(out, "")
		}
		pendingBlank = false

		lead, delta := brackets(line)
		indent := max(depth-lead, 0)
		out = append(out, strings.Repeat("  ", indent)+line)
		depth = max(depth+delta, 0)
	}

	if len(out) == 0 {
		return []byte{}
	}
	return []byte(strings.Join(out, "\n") + "\n")
}

// joinImports trims every line and folds an import whose named list spans
// several lines back into one line.
func joinImports(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, "import") && strings.Contains(line, "{") && !strings.Contains(line, "}") {
			parts := []string{line}
			for i+1 < len(lines) {
				i++
				next := strings.TrimSpace(lines[i])
				parts = append(parts, next)
				if strings.Contains(next, "}") {
					break
				}
			}
			line = strings.Join(parts, " ")
		}
		out = append(out, line)
	}
	return out
}

func (b *Builtin) importLine(line string) string {
	line = strings.ReplaceAll(line, "'", `"`)

	m := namedImport.FindStringSubmatch(line)
	if m == nil {
		return line
	}

	var names []string
	for _, n := range strings.Split(m[1], ",") {
		if n = strings.Join(strings.Fields(n), " "); n != "" {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf(`import {} from "%s";`, m[2])
	}

	one := fmt.Sprintf(`import { %s } from "%s";`, strings.Join(names, ", "), m[2])
	if len(one) <= b.printWidth {
		return one
	}

	var sb strings.Builder
	sb.WriteString("import {\n")
	for _, n := range names {
		sb.WriteString("  " + n + ",\n")
	}
	fmt.Fprintf(&sb, `} from "%s";`, m[2])
	return sb.String()
}

// brackets returns the number of closing brackets the line starts with and
// the net bracket depth change across it. String contents and // comments
// are ignored.
func brackets(line string) (lead, delta int) {
	for lead < len(line) && strings.IndexByte("}])", line[lead]) >= 0 {
		lead++
	}

	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case '/':
			if i+1 < len(line) && line[i+1] == '/' {
				return lead, delta
			}
		case '{', '[', '(':
			delta++
		case '}', ']', ')':
			delta--
		}
	}
	return lead, delta
}
