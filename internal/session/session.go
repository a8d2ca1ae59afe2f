// Package session runs the interactive stopwatch: it polls the keyboard,
// redraws the elapsed time and pauses the stopwatch when the lid is closed.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/lapwatch/lapwatch/internal/debug"
	"github.com/lapwatch/lapwatch/internal/errors"
	"github.com/lapwatch/lapwatch/internal/lid"
	"github.com/lapwatch/lapwatch/internal/stopwatch"
	"github.com/lapwatch/lapwatch/internal/terminal"
	"github.com/lapwatch/lapwatch/internal/ui"
)

// DefaultPollInterval bounds how long the loop waits for a key before it
// redraws the display and checks the lid again.
const DefaultPollInterval = 10 * time.Millisecond

// KeySource delivers keyboard events. Poll waits at most timeout; ok is false
// if no event arrived in time.
type KeySource interface {
	Poll(ctx context.Context, timeout time.Duration) (ev terminal.Event, ok bool, err error)
}

// Options configure a Session.
type Options struct {
	PollInterval time.Duration
}

// Session owns a stopwatch and drives it from keyboard input and the lid
// sensor. It must only be used from one goroutine.
type Session struct {
	sw     *stopwatch.Stopwatch
	sensor lid.Sensor
	keys   KeySource
	term   ui.Terminal
	opts   Options
}

// New returns a session for sw. A zero PollInterval selects
// DefaultPollInterval.
func New(sw *stopwatch.Stopwatch, sensor lid.Sensor, keys KeySource, term ui.Terminal, opts Options) *Session {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	return &Session{
		sw:     sw,
		sensor: sensor,
		keys:   keys,
		term:   term,
		opts:   opts,
	}
}

func statusLine(d time.Duration) string {
	return "⏱️ " + ui.FormatStopwatch(d)
}

// display shows the current time in the status line.
func (s *Session) display() error {
	return s.term.SetStatus(statusLine(s.sw.CurrentTime()))
}

func (s *Session) toggle() error {
	if s.sw.Toggle() == stopwatch.Running {
		debug.Log("started, counter %d", s.sw.Counter())
		return s.term.Print("▶️  start")
	}
	return s.stopped()
}

// stopped reports a stop that already happened. The final time is shown
// first, so the committed status line matches Elapsed, and then the notices.
func (s *Session) stopped(notices ...string) error {
	debug.Log("stopped at %v, counter %d", s.sw.Elapsed(), s.sw.Counter())
	if err := s.display(); err != nil {
		return err
	}
	for _, line := range notices {
		if err := s.term.Print(line); err != nil {
			return err
		}
	}
	return s.term.Print(fmt.Sprintf("⏸️  stop | ⛳️ %d", s.sw.Counter()))
}

func (s *Session) reset() error {
	debug.Log("reset at %v (%v), counter %d", s.sw.CurrentTime(), s.sw.State(), s.sw.Counter())
	s.sw.Reset()
	return s.term.Print("🔄 reset")
}

func (s *Session) banner() error {
	for _, line := range []string{
		"",
		"🕐 stopwatch",
		"[Enter] start/stop  [r] reset  [Esc] quit",
		"",
	} {
		if err := s.term.Print(line); err != nil {
			return err
		}
	}
	return nil
}

// checkLid stops the stopwatch if the lid is closed.
func (s *Session) checkLid(ctx context.Context) error {
	closed, err := s.sensor.Closed(ctx)
	if err != nil {
		// the sensor command is killed on cancellation
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return errors.Wrap(err, "lid sensor")
	}
	if !closed {
		return nil
	}

	debug.Log("lid closed while running")
	s.sw.Toggle()
	return s.stopped("💤 lid closed - stop")
}

// Run shows the banner and handles keys until Esc is pressed, an error
// occurs or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	if err := s.banner(); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if s.sw.Running() {
			if err := s.display(); err != nil {
				return err
			}
			if err := s.checkLid(ctx); err != nil {
				return err
			}
		}

		ev, ok, err := s.keys.Poll(ctx, s.opts.PollInterval)
		if err != nil {
			return err
		}
		if !ok || ev.Kind != terminal.Press {
			continue
		}

		quit, err := s.handleKey(ev)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// handleKey dispatches a key press. It returns true if the session should end.
func (s *Session) handleKey(ev terminal.Event) (quit bool, err error) {
	switch ev.Key {
	case terminal.KeyEnter:
		return false, s.toggle()
	case terminal.KeyEsc:
		debug.Log("quit at %v, counter %d", s.sw.CurrentTime(), s.sw.Counter())
		return true, s.term.Print("🚪 quit")
	case terminal.KeyRune:
		if ev.Rune == 'r' || ev.Rune == 'R' {
			return false, s.reset()
		}
	}
	return false, nil
}
