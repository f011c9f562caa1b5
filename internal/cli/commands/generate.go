package commands

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/koustreak/dtogen/internal/emitter"
	"github.com/koustreak/dtogen/internal/filestore/minio"
	"github.com/koustreak/dtogen/internal/logger"
	"github.com/koustreak/dtogen/internal/output"
	"github.com/spf13/cobra"
)

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write one TypeScript DTO per table",
		Long: `Read the schema's tables from information_schema and write one
class-validator DTO per table into <base_dir>/<dir_name>.

Tables whose name starts with "_" are skipped. Existing files are
overwritten.`,
		Example: `  # Generate from DATABASE_URL into ./models
  dtogen generate

  # Generate from a MySQL database into ../api/src/models
  dtogen generate --driver mysql --dsn 'app:secret@tcp(localhost:3306)/shop' --base-dir ../api/src`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := runGenerate(cmd); err != nil {
				logger.FromContext(cmd.Context()).ErrorWith("dto generation failed", err, nil)
				return Logged(err)
			}
			return nil
		},
	}
}

func runGenerate(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := ConfigFrom(ctx)
	log := logger.FromContext(ctx)

	dir := output.NewDir(cfg.OutputDir())
	if err := dir.Ensure(); err != nil {
		return err
	}

	var sink output.Sink = dir
	if cfg.Upload.Enabled {
		store, err := minio.New(ctx, cfg.FilestoreConfig())
		if err != nil {
			return err
		}
		defer store.Close()
		sink = output.NewMirror(dir, store, cfg.Upload.Bucket, cfg.Upload.Prefix)
	}

	cc, cleanup, err := NewCommandContext(cmd, sink)
	if err != nil {
		return err
	}
	defer cleanup()

	sum, err := cc.Emitter.Run(ctx)
	renderSummary(cmd.OutOrStdout(), sum)
	if err != nil {
		return err
	}

	log.InfoWith("generation complete", map[string]interface{}{
		"dir":         dir.Path(),
		"generated":   len(sum.Generated),
		"skipped":     len(sum.Skipped),
		"rejected":    len(sum.Rejected),
		"unformatted": len(sum.FormatFailed),
	})
	return nil
}

// renderSummary prints one row per table the run touched.
func renderSummary(w io.Writer, sum *emitter.Summary) {
	if sum == nil || len(sum.Generated)+len(sum.Skipped)+len(sum.Rejected) == 0 {
		return
	}

	unformatted := make(map[string]bool, len(sum.FormatFailed))
	for _, t := range sum.FormatFailed {
		unformatted[t] = true
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Table", "Status", "File"})

	for _, g := range sum.Generated {
		status := "generated"
		if unformatted[g.Table] {
			status = "unformatted"
		}
		t.AppendRow(table.Row{g.Table, status, g.Location})
	}
	for _, s := range sum.Skipped {
		t.AppendRow(table.Row{s, "skipped", ""})
	}
	for _, r := range sum.Rejected {
		t.AppendRow(table.Row{r, "rejected", ""})
	}

	t.AppendFooter(table.Row{"", "total", len(sum.Generated) + len(sum.Skipped) + len(sum.Rejected)})
	t.Render()
}
