package lid

import (
	"context"
	"os/exec"
	"strings"

	"github.com/lapwatch/lapwatch/internal/errors"
)

// Runner executes the command name with args and returns its standard
// output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

const clamshellClosed = `"AppleClamshellState" = Yes`

// IOReg queries the macOS I/O registry for the clamshell state.
type IOReg struct {
	Run Runner
}

// NewIOReg returns an IOReg sensor running the ioreg binary.
func NewIOReg() *IOReg {
	return &IOReg{Run: execRunner}
}

// Closed runs ioreg and looks for a closed clamshell in its output.
func (s *IOReg) Closed(ctx context.Context) (bool, error) {
	out, err := s.Run(ctx, "ioreg", "-r", "-k", "AppleClamshellState", "-d", "4")
	if err != nil {
		return false, errors.Wrap(err, "ioreg")
	}

	return strings.Contains(strings.ToValidUTF8(string(out), "�"), clamshellClosed), nil
}
