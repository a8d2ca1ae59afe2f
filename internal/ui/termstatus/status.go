package termstatus

import (
	"io"
	"strings"

	"github.com/lapwatch/lapwatch/internal/terminal"
	"github.com/lapwatch/lapwatch/internal/ui"
)

var _ ui.Terminal = &Terminal{}

// Terminal writes messages and a status line which is rewritten in place.
// When the output is redirected to a file, status updates are not written;
// only the last status line before a message is kept. All writes happen
// synchronously in the calling goroutine.
type Terminal struct {
	wr              io.Writer
	canUpdateStatus bool
	newline         string
	width           func() int

	// status is the status line on screen, or the last one set if the
	// output cannot be updated in place.
	status string
}

type fder interface {
	Fd() uintptr
}

type flusher interface {
	Flush() error
}

// New returns a new Terminal writing to wr. Status lines are only rewritten
// in place if wr is a terminal that supports it and disableStatus is false.
// Lines end with "\r\n" on terminals, as raw mode disables the output
// translation of "\n".
func New(wr io.Writer, disableStatus bool) *Terminal {
	t := &Terminal{
		wr:      wr,
		newline: "\n",
		width:   func() int { return 0 },
	}

	if d, ok := wr.(fder); ok {
		fd := d.Fd()
		if terminal.IsTerminal(fd) {
			t.newline = terminal.PosixNewline
		}
		if !disableStatus && terminal.CanUpdateStatus(fd) {
			t.canUpdateStatus = true
			t.width = func() int { return terminal.Width(fd) }
		}
	}

	return t
}

// CanUpdateStatus return whether the status output is updated in place.
func (t *Terminal) CanUpdateStatus() bool {
	return t.canUpdateStatus
}

func (t *Terminal) write(s string) error {
	if _, err := io.WriteString(t.wr, s); err != nil {
		return err
	}
	if f, ok := t.wr.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// commitStatus ends the status line so that it stays visible above the next
// message.
func (t *Terminal) commitStatus() error {
	if t.status == "" {
		return nil
	}
	line := t.status
	t.status = ""

	if t.canUpdateStatus {
		return t.write(t.newline)
	}
	return t.write(line + t.newline)
}

// Print writes a line to the terminal.
func (t *Terminal) Print(line string) error {
	if err := t.commitStatus(); err != nil {
		return err
	}
	return t.write(strings.TrimRight(line, "\r\n") + t.newline)
}

// SetStatus replaces the status line. The line must not contain line breaks.
// It is truncated to the terminal width.
func (t *Terminal) SetStatus(line string) error {
	if !t.canUpdateStatus {
		t.status = line
		return nil
	}

	width := t.width()
	if width <= 0 {
		// use 80 columns by default
		width = 80
	}
	line = ui.Truncate(line, width-2)

	if err := terminal.ClearCurrentLine(t.wr); err != nil {
		return err
	}
	t.status = line
	return t.write(line)
}
