package main

import (
	"context"
	"io"
	"os"

	"github.com/lapwatch/lapwatch/internal/debug"
	"github.com/lapwatch/lapwatch/internal/errors"
	"github.com/lapwatch/lapwatch/internal/session"
	"github.com/lapwatch/lapwatch/internal/stopwatch"
	"github.com/lapwatch/lapwatch/internal/terminal"
	"github.com/lapwatch/lapwatch/internal/ui/termstatus"
)

// runStopwatch runs an interactive session reading keys from stdin. The
// terminal is switched to raw mode for the duration of the session and
// restored on every return path.
func runStopwatch(ctx context.Context, opts GlobalOptions, stdin *os.File, stdout io.Writer) (err error) {
	sensor, err := opts.Sensor()
	if err != nil {
		return err
	}
	debug.Log("using lid sensor %T", sensor)

	restore, err := terminal.MakeRaw(stdin)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := restore(); rerr != nil {
			err = errors.Join(err, errors.Fatalf("unable to restore terminal mode: %v", rerr))
		}
	}()

	term := termstatus.New(stdout, opts.NoStatus)
	s := session.New(stopwatch.New(), sensor, terminal.NewInput(stdin), term, session.Options{
		PollInterval: opts.PollInterval,
	})

	return s.Run(ctx)
}
