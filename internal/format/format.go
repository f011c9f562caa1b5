// Package format turns generated TypeScript into its final layout.
package format

import (
	"context"
	"fmt"

	"github.com/koustreak/dtogen/internal/errs"
)

// Formatter names accepted in configuration.
const (
	NameBuiltin  = "builtin"
	NamePrettier = "prettier"
	NameNone     = "none"
)

// Names lists every supported formatter.
var Names = []string{NameBuiltin, NamePrettier, NameNone}

// DefaultPrintWidth is the line width used when none is configured.
const DefaultPrintWidth = 120

// Formatter formats one TypeScript source file.
// name is the file name, used only in diagnostics.
// Failures are returned as errs.ErrKindFormatFailed.
type Formatter interface {
	Format(ctx context.Context, name string, src []byte) ([]byte, error)
}

// Config selects and configures a Formatter.
type Config struct {
	Name            string
	PrintWidth      int
	PrettierCommand string
}

// New returns the Formatter described by cfg.
func New(cfg Config) (Formatter, error) {
	width := cfg.PrintWidth
	if width <= 0 {
		width = DefaultPrintWidth
	}

	switch cfg.Name {
	case NameBuiltin, "":
		return NewBuiltin(width), nil
	case NamePrettier:
		return NewPrettier(cfg.PrettierCommand, width)
	case NameNone:
		return None{}, nil
	default:
		return nil, errs.New(errs.ErrKindInvalidInput, fmt.Sprintf("unknown formatter %q", cfg.Name))
	}
}

// None returns its input unchanged.
type None struct{}

func (None) Format(_ context.Context, _ string, src []byte) ([]byte, error) {
	return src, nil
}
