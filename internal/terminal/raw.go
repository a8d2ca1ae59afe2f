package terminal

import (
	"os"

	"golang.org/x/term"

	"github.com/lapwatch/lapwatch/internal/debug"
	"github.com/lapwatch/lapwatch/internal/errors"
)

// MakeRaw puts the terminal connected to f into raw mode. The returned
// function restores the previous mode and must be called on every exit path.
// If f is not a terminal nothing is changed and the restore function is a
// no-op.
func MakeRaw(f *os.File) (restore func() error, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		debug.Log("%v is not a terminal, not enabling raw mode", f.Name())
		return func() error { return nil }, nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, errors.Wrap(err, "MakeRaw")
	}
	debug.Log("raw mode enabled on %v", f.Name())

	return func() error {
		debug.Log("restoring terminal mode on %v", f.Name())
		return errors.Wrap(term.Restore(fd, state), "Restore")
	}, nil
}
