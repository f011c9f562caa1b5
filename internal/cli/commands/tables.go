package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/koustreak/dtogen/internal/emitter"
	"github.com/koustreak/dtogen/internal/output"
	"github.com/spf13/cobra"
)

// NewTablesCommand creates the tables command.
func NewTablesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "tables",
		Short:   "List the tables generate would see",
		Example: `  dtogen tables --driver sqlite --dsn app.db`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTables(cmd)
		},
	}
}

func runTables(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := ConfigFrom(ctx)

	cc, cleanup, err := NewCommandContext(cmd, output.NewDir(cfg.OutputDir()))
	if err != nil {
		return err
	}
	defer cleanup()

	tables, err := cc.Reader.ListTables(ctx, cfg.Database.Schema)
	if err != nil {
		return err
	}
	if len(tables) == 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No tables in schema %q\n", cfg.Database.Schema)
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Table", "Columns", "File"})

	for _, name := range tables {
		cols, err := cc.Reader.ListColumns(ctx, cfg.Database.Schema, name)
		if err != nil {
			return err
		}
		file := emitter.FileName(name)
		if emitter.Skip(name) {
			file = "(skipped)"
		}
		t.AppendRow(table.Row{name, len(cols), file})
	}
	t.Render()
	return nil
}
