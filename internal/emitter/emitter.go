// Package emitter drives DTO generation: it reads the catalog, renders one
// class per table, formats it and hands it to an output sink.
//
// Usage:
//
//	e := emitter.New(catalog.New(db), formatter, output.NewDir(dir), emitter.Options{Schema: "public"})
//	summary, err := e.Run(ctx)
package emitter

import (
	"context"

	"github.com/koustreak/dtogen/internal/catalog"
	"github.com/koustreak/dtogen/internal/format"
	"github.com/koustreak/dtogen/internal/logger"
	"github.com/koustreak/dtogen/internal/output"
)

// Options configures an Emitter.
type Options struct {
	Schema string

	// ClassSuffix defaults to DefaultClassSuffix when empty.
	ClassSuffix string
}

// Emitter generates DTO files. Tables are processed one at a time.
type Emitter struct {
	reader    catalog.Reader
	formatter format.Formatter
	sink      output.Sink
	opts      Options
}

// Generated records one written file.
type Generated struct {
	Table    string
	Location string
}

// Summary is what a Run did.
type Summary struct {
	Generated []Generated

	// Skipped holds internal tables ("_" prefix) that got no file.
	Skipped []string

	// Rejected holds tables whose name cannot be used as a file name.
	Rejected []string

	// FormatFailed holds tables written unformatted.
	FormatFailed []string
}

// New returns an Emitter.
func New(reader catalog.Reader, formatter format.Formatter, sink output.Sink, opts Options) *Emitter {
	if opts.ClassSuffix == "" {
		opts.ClassSuffix = DefaultClassSuffix
	}
	return &Emitter{reader: reader, formatter: formatter, sink: sink, opts: opts}
}

// Run generates a file for every non-internal table in the schema.
//
// A catalog or write error stops the run and is returned together with the
// summary so far; files already written stay in place. Formatter failures
// are logged and the unformatted source is written instead.
func (e *Emitter) Run(ctx context.Context) (*Summary, error) {
	log := logger.FromContext(ctx)
	sum := &Summary{}

	tables, err := e.reader.ListTables(ctx, e.opts.Schema)
	if err != nil {
		return sum, err
	}

	for _, table := range tables {
		if Skip(table) {
			log.InfoWith("skipping table", map[string]interface{}{"table": table})
			sum.Skipped = append(sum.Skipped, table)
			continue
		}
		if !SafeName(table) {
			log.With().Str("table", table).Logger().Warn("table name is not a valid file name, skipping")
			sum.Rejected = append(sum.Rejected, table)
			continue
		}

		src, formatErr, err := e.render(ctx, table)
		if err != nil {
			return sum, err
		}
		if formatErr != nil {
			log.WarnWith("format failed, writing unformatted output", formatErr, map[string]interface{}{"table": table})
			sum.FormatFailed = append(sum.FormatFailed, table)
		}

		loc, err := e.sink.Write(ctx, FileName(table), src)
		if err != nil {
			return sum, err
		}

		log.InfoWith("generated dto", map[string]interface{}{"table": table, "path": loc})
		sum.Generated = append(sum.Generated, Generated{Table: table, Location: loc})
	}

	return sum, nil
}

// Render returns the DTO source for one table without writing it.
// A formatter failure is logged and the unformatted source returned.
func (e *Emitter) Render(ctx context.Context, table string) ([]byte, error) {
	src, formatErr, err := e.render(ctx, table)
	if err != nil {
		return nil, err
	}
	if formatErr != nil {
		logger.FromContext(ctx).WarnWith("format failed, serving unformatted output", formatErr,
			map[string]interface{}{"table": table})
	}
	return src, nil
}

// Tables lists the schema's tables as the generator sees them.
func (e *Emitter) Tables(ctx context.Context) ([]string, error) {
	return e.reader.ListTables(ctx, e.opts.Schema)
}

// render fetches columns, builds the class and formats it. The second
// return value is the formatter's error, if any; src is then unformatted.
func (e *Emitter) render(ctx context.Context, table string) (src []byte, formatErr error, err error) {
	cols, err := e.reader.ListColumns(ctx, e.opts.Schema, table)
	if err != nil {
		return nil, nil, err
	}

	raw := Source(table, e.opts.ClassSuffix, cols)

	formatted, formatErr := e.formatter.Format(ctx, FileName(table), raw)
	if formatErr != nil {
		return raw, formatErr, nil
	}
	return formatted, nil, nil
}
