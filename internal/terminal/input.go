package terminal

import (
	"os"
)

// Input reads key events from a terminal in raw mode, or from any other file
// the operating system can poll.
type Input struct {
	f       *os.File
	buf     []byte
	pending []Event
}

// NewInput returns an Input reading from f, usually os.Stdin.
func NewInput(f *os.File) *Input {
	return &Input{
		f:   f,
		buf: make([]byte, 256),
	}
}

func (in *Input) next() (Event, bool) {
	if len(in.pending) == 0 {
		return Event{}, false
	}
	ev := in.pending[0]
	in.pending = in.pending[1:]
	return ev, true
}
