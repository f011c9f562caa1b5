package format

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/koustreak/dtogen/internal/errs"
)

// DefaultPrettierCommand runs the project-local prettier through npx.
const DefaultPrettierCommand = "npx prettier"

// Prettier pipes source through an external prettier process.
type Prettier struct {
	argv       []string
	printWidth int
}

// NewPrettier builds a Prettier formatter from a command line such as
// "npx prettier" or "/usr/local/bin/prettier".
func NewPrettier(command string, printWidth int) (*Prettier, error) {
	if command == "" {
		command = DefaultPrettierCommand
	}
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return nil, errs.New(errs.ErrKindInvalidInput, "prettier command is empty")
	}
	return &Prettier{argv: argv, printWidth: printWidth}, nil
}

func (p *Prettier) Format(ctx context.Context, name string, src []byte) ([]byte, error) {
	args := append(p.argv[1:len(p.argv):len(p.argv)],
		"--parser", "typescript",
		"--print-width", strconv.Itoa(p.printWidth),
		"--stdin-filepath", name,
	)

	cmd := exec.CommandContext(ctx, p.argv[0], args...)
	cmd.Stdin = bytes.NewReader(src)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, errs.Wrap(errs.ErrKindFormatFailed,
			fmt.Sprintf("prettier failed on %s", name), fmt.Errorf("%w: %s", err, msg))
	}
	return stdout.Bytes(), nil
}
