// Package stopwatch implements the timing state machine: a stopwatch that is
// either running or stopped, the time accumulated over all completed running
// intervals and the number of times it was started since the last reset.
package stopwatch

import "time"

// State is the state of a Stopwatch.
type State int

const (
	// Stopped means the elapsed time is frozen.
	Stopped State = iota
	// Running means the elapsed time accrues from the clock.
	Running
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Stopwatch is not safe for concurrent use, it is owned by a single control
// loop.
type Stopwatch struct {
	state   State
	elapsed time.Duration
	// start is the beginning of the current running interval, only valid
	// while running.
	start   time.Time
	counter uint32

	now func() time.Time
}

// Option configures a Stopwatch.
type Option func(*Stopwatch)

// WithClock makes the stopwatch read the current time from now instead of
// time.Now.
func WithClock(now func() time.Time) Option {
	return func(sw *Stopwatch) {
		sw.now = now
	}
}

// New returns a stopped stopwatch with zero elapsed time and counter.
func New(opts ...Option) *Stopwatch {
	sw := &Stopwatch{
		state: Stopped,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(sw)
	}
	return sw
}

// State returns the current state.
func (sw *Stopwatch) State() State { return sw.state }

// Running reports whether the stopwatch is running.
func (sw *Stopwatch) Running() bool { return sw.state == Running }

// Elapsed returns the time accumulated by completed running intervals only.
func (sw *Stopwatch) Elapsed() time.Duration { return sw.elapsed }

// Counter returns the number of starts since the last reset.
func (sw *Stopwatch) Counter() uint32 { return sw.counter }

// interval returns the length of the current running interval. A clock
// stepping backwards yields zero rather than a negative interval.
func (sw *Stopwatch) interval() time.Duration {
	d := sw.now().Sub(sw.start)
	if d < 0 {
		return 0
	}
	return d
}

// CurrentTime returns the elapsed time including the current running
// interval.
func (sw *Stopwatch) CurrentTime() time.Duration {
	if sw.state == Running {
		return sw.elapsed + sw.interval()
	}
	return sw.elapsed
}

// Toggle starts a stopped stopwatch or stops a running one and returns the
// new state. Stopping folds the current interval into the elapsed time,
// starting increments the counter.
func (sw *Stopwatch) Toggle() State {
	switch sw.state {
	case Running:
		sw.elapsed += sw.interval()
		sw.start = time.Time{}
		sw.state = Stopped
	default:
		sw.start = sw.now()
		sw.counter++
		sw.state = Running
	}
	return sw.state
}

// Reset clears elapsed time and counter and stops the stopwatch. A running
// interval is dropped, not added to the elapsed time.
func (sw *Stopwatch) Reset() {
	sw.counter = 0
	sw.elapsed = 0
	sw.start = time.Time{}
	sw.state = Stopped
}
