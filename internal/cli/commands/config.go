package commands

import (
	"fmt"

	"github.com/koustreak/dtogen/internal/logger"
	"github.com/spf13/cobra"
)

// AnnotationSkipValidation, set to "true" on a command, makes the root
// command load the configuration without validating it.
const AnnotationSkipValidation = "dtogen/skip-validation"

// NewConfigCommand creates the config command.
func NewConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, dtogen.yaml, DTOGEN_* variables
and flags have been applied. Passwords are masked.

The configuration is printed even when it is incomplete; problems are
reported as a warning.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{AnnotationSkipValidation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := ConfigFrom(cmd.Context())

			out, err := cfg.YAML()
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}
			w := cmd.OutOrStdout()
			if cfg.File != "" {
				_, _ = fmt.Fprintf(w, "# loaded from %s\n", cfg.File)
			}
			if _, err := w.Write(out); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				logger.FromContext(cmd.Context()).WarnWith("configuration is incomplete", err, nil)
			}
			return nil
		},
	}
}
