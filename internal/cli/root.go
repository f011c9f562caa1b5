// Package cli provides the command-line interface for dtogen.
package cli

import (
	"context"
	"fmt"

	"github.com/koustreak/dtogen/internal/cli/commands"
	"github.com/koustreak/dtogen/internal/config"
	"github.com/koustreak/dtogen/internal/database"
	"github.com/koustreak/dtogen/internal/format"
	"github.com/koustreak/dtogen/internal/logger"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "dtogen",
		Short: "Generate class-validator DTOs from a database schema",
		Long: `dtogen reads a database's information_schema and writes one TypeScript
DTO class per table, decorated for class-validator.

Settings come from dtogen.yaml (in $DTOGEN_CLIENT_DIR or the working
directory), DTOGEN_* environment variables and flags, in that order of
precedence. DATABASE_URL supplies the DSN when nothing else does.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for commands that need none
			switch cmd.Name() {
			case "help", "completion", "__complete", "version":
				return nil
			}

			load := config.Load
			if cmd.Annotations[commands.AnnotationSkipValidation] == "true" {
				load = config.Read
			}
			cfg, err := load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logCfg := cfg.LoggerConfig()
			logCfg.Output = cmd.ErrOrStderr()
			log := logger.New(logCfg)
			logger.SetGlobal(log)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = commands.WithConfig(log.WithContext(ctx), cfg)
			cmd.SetContext(ctx)

			if cfg.File != "" {
				log.With().Str("file", cfg.File).Logger().Debug("using config file")
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: dtogen.yaml in $DTOGEN_CLIENT_DIR or .)")
	pf.String("driver", "", fmt.Sprintf("database driver %v", database.Drivers))
	pf.String("dsn", "", "data source name (default: $DATABASE_URL)")
	pf.String("schema", "", "schema to read (default depends on driver)")
	pf.String("base-dir", "", "directory that receives the models folder")
	pf.String("formatter", "", fmt.Sprintf("output formatter %v", format.Names))
	pf.Int("print-width", 0, "formatter line width")
	pf.String("log-level", "", "log level (debug|info|warn|error)")
	pf.String("log-format", "", "log format (console|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("formatter", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return format.Names, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("driver", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(database.Drivers))
		for i, d := range database.Drivers {
			names[i] = string(d)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewGenerateCommand())
	rootCmd.AddCommand(commands.NewTablesCommand())
	rootCmd.AddCommand(commands.NewPreviewCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewServeCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return execute(ctx, NewRootCmd())
}

// execute prints errors the failing command has not logged itself.
func execute(ctx context.Context, rootCmd *cobra.Command) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !commands.IsLogged(err) {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return err
	}
	return nil
}
