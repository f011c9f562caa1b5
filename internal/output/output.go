// Package output writes generated files to their destinations.
package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/koustreak/dtogen/internal/errs"
)

// Sink receives one generated file at a time. Write replaces any existing
// file of the same name and returns where the content ended up.
type Sink interface {
	Write(ctx context.Context, name string, content []byte) (string, error)
}

// Dir writes files into a local directory.
type Dir struct {
	path string
}

// NewDir returns a sink for path. The directory is not created until
// Ensure is called.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

// Path returns the directory the sink writes into.
func (d *Dir) Path() string {
	return d.path
}

// Ensure creates the directory and any missing parents.
func (d *Dir) Ensure() error {
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return errs.Wrap(errs.ErrKindWriteFailed, fmt.Sprintf("cannot create output directory %s", d.path), err)
	}
	return nil
}

func (d *Dir) Write(ctx context.Context, name string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errs.Wrap(errs.ErrKindTimeout, "write canceled", err)
	}

	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return "", errs.New(errs.ErrKindInvalidInput, fmt.Sprintf("invalid file name %q", name))
	}

	p := filepath.Join(d.path, name)
	if err := os.WriteFile(p, content, 0o644); err != nil {
		return "", errs.Wrap(errs.ErrKindWriteFailed, fmt.Sprintf("cannot write %s", p), err)
	}
	return p, nil
}
