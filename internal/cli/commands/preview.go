package commands

import (
	"fmt"
	"slices"

	"github.com/koustreak/dtogen/internal/emitter"
	"github.com/koustreak/dtogen/internal/errs"
	"github.com/koustreak/dtogen/internal/output"
	"github.com/spf13/cobra"
)

// NewPreviewCommand creates the preview command.
func NewPreviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <table>",
		Short: "Print one table's DTO without writing it",
		Example: `  dtogen preview users
  dtogen preview orders --formatter none`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0])
		},
	}
}

func runPreview(cmd *cobra.Command, name string) error {
	ctx := cmd.Context()
	cfg := ConfigFrom(ctx)

	if emitter.Skip(name) {
		return errs.New(errs.ErrKindInvalidInput, fmt.Sprintf("table %q is internal and never generated", name))
	}

	cc, cleanup, err := NewCommandContext(cmd, output.NewDir(cfg.OutputDir()))
	if err != nil {
		return err
	}
	defer cleanup()

	tables, err := cc.Emitter.Tables(ctx)
	if err != nil {
		return err
	}
	if !slices.Contains(tables, name) {
		return errs.New(errs.ErrKindNotFound, fmt.Sprintf("table %q not found in schema %q", name, cfg.Database.Schema))
	}

	src, err := cc.Emitter.Render(ctx, name)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(src)
	return err
}
