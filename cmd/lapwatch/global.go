package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/lapwatch/lapwatch/internal/debug"
	"github.com/lapwatch/lapwatch/internal/errors"
	"github.com/lapwatch/lapwatch/internal/lid"
	"github.com/lapwatch/lapwatch/internal/session"
)

var version = "0.1.0-dev (compiled manually)"

// GlobalOptions hold all global options for lapwatch.
type GlobalOptions struct {
	PollInterval time.Duration
	LidSensor    string
	LidInterval  time.Duration
	NoLid        bool
	NoStatus     bool

	stdout io.Writer
	stderr io.Writer
}

var globalOptions = GlobalOptions{
	stdout: os.Stdout,
	stderr: os.Stderr,
}

// envDuration returns the duration in the environment variable name, or def
// if it is unset or invalid.
func envDuration(name string, def time.Duration) time.Duration {
	s := os.Getenv(name)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		// ignore error as there's no good way to handle it
		debug.Log("invalid duration %q in $%v: %v", s, name, err)
		return def
	}
	return d
}

func (opts *GlobalOptions) AddFlags(f *pflag.FlagSet) {
	f.DurationVar(&opts.PollInterval, "poll-interval", session.DefaultPollInterval, "`duration` to wait for a key before redrawing the time (default: $LAPWATCH_POLL_INTERVAL)")
	f.StringVar(&opts.LidSensor, "lid-sensor", "auto", "lid `sensor` to use, one of ("+strings.Join(lid.Names, "|")+") (default: $LAPWATCH_LID_SENSOR)")
	f.DurationVar(&opts.LidInterval, "lid-interval", 0, "query the lid sensor at most once per `duration`, 0 queries on every redraw (default: $LAPWATCH_LID_INTERVAL)")
	f.BoolVar(&opts.NoLid, "no-lid", false, "do not pause when the lid is closed")
	f.BoolVar(&opts.NoStatus, "no-status", false, "do not rewrite the time in place, only print it when the stopwatch stops")

	opts.PollInterval = envDuration("LAPWATCH_POLL_INTERVAL", opts.PollInterval)
	opts.LidInterval = envDuration("LAPWATCH_LID_INTERVAL", opts.LidInterval)
	if s := os.Getenv("LAPWATCH_LID_SENSOR"); s != "" {
		opts.LidSensor = s
	}
}

// PreRun validates the options after the flags were parsed.
func (opts *GlobalOptions) PreRun() error {
	if opts.PollInterval <= 0 {
		return errors.Fatalf("invalid poll interval %v, must be positive", opts.PollInterval)
	}
	if opts.LidInterval < 0 {
		return errors.Fatalf("invalid lid interval %v, must not be negative", opts.LidInterval)
	}
	debug.Log("options: %+v", *opts)
	return nil
}

// Sensor returns the lid sensor selected by the options.
func (opts *GlobalOptions) Sensor() (lid.Sensor, error) {
	if opts.NoLid {
		return lid.None{}, nil
	}
	s, err := lid.FromName(opts.LidSensor)
	if err != nil {
		return nil, err
	}
	return lid.Throttle(s, opts.LidInterval), nil
}

// Warnf writes the message to the configured stderr stream.
func Warnf(format string, args ...interface{}) {
	_, err := fmt.Fprintf(globalOptions.stderr, format, args...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to write to stderr: %v\n", err)
	}
}
