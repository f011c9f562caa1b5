package commands

import (
	"github.com/koustreak/dtogen/internal/output"
	"github.com/koustreak/dtogen/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered DTOs over HTTP",
		Long: `Start a preview server:

  GET /healthz          database reachability
  GET /tables           tables in the schema
  GET /tables/<t>.ts    rendered DTO for one table

Nothing is written to disk.`,
		Example: `  dtogen serve --addr 127.0.0.1:9090`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := ConfigFrom(ctx)

			cc, cleanup, err := NewCommandContext(cmd, output.NewDir(cfg.OutputDir()))
			if err != nil {
				return err
			}
			defer cleanup()

			return server.New(server.Config{
				Addr:      cfg.Serve.Addr,
				DB:        cc.DB,
				Generator: cc.Emitter,
				Logger:    cc.Logger,
			}).Serve(ctx)
		},
	}

	cmd.Flags().String("addr", "", "listen address (default :8080)")
	return cmd
}
