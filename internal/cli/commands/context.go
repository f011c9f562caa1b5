// Package commands holds dtogen's subcommands.
package commands

import (
	"context"

	"github.com/koustreak/dtogen/internal/catalog"
	"github.com/koustreak/dtogen/internal/config"
	"github.com/koustreak/dtogen/internal/database"
	"github.com/koustreak/dtogen/internal/database/connect"
	"github.com/koustreak/dtogen/internal/emitter"
	"github.com/koustreak/dtogen/internal/errs"
	"github.com/koustreak/dtogen/internal/format"
	"github.com/koustreak/dtogen/internal/logger"
	"github.com/koustreak/dtogen/internal/output"
	"github.com/spf13/cobra"
)

type configKey struct{}

// WithConfig stores the loaded configuration in ctx.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFrom returns the configuration stored by WithConfig, or nil.
func ConfigFrom(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(configKey{}).(*config.Config)
	return cfg
}

// CommandContext holds the dependencies shared by commands that talk to
// the database.
type CommandContext struct {
	Cfg     *config.Config
	Logger  *logger.Logger
	DB      database.DB
	Reader  catalog.Reader
	Emitter *emitter.Emitter
}

// NewCommandContext connects to the configured database and builds an
// emitter writing to sink. The returned cleanup closes the connection and
// must be called (typically via defer).
func NewCommandContext(cmd *cobra.Command, sink output.Sink) (*CommandContext, func(), error) {
	ctx := cmd.Context()
	cfg := ConfigFrom(ctx)
	if cfg == nil {
		return nil, nil, errs.New(errs.ErrKindUnknown, "configuration not loaded")
	}
	log := logger.FromContext(ctx)

	formatter, err := format.New(cfg.FormatterConfig())
	if err != nil {
		return nil, nil, err
	}

	db, err := connect.Open(ctx, cfg.DatabaseConfig())
	if err != nil {
		return nil, nil, err
	}
	log.With().
		Str("driver", cfg.Database.Driver).
		Str("schema", cfg.Database.Schema).
		Logger().
		Debug("connected to database")

	reader := catalog.New(db)
	em := emitter.New(reader, formatter, sink, emitter.Options{
		Schema:      cfg.Database.Schema,
		ClassSuffix: cfg.Output.ClassSuffix,
	})

	return &CommandContext{
		Cfg:     cfg,
		Logger:  log,
		DB:      db,
		Reader:  reader,
		Emitter: em,
	}, db.Close, nil
}
