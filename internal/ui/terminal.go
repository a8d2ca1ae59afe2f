package ui

// Terminal is used to write messages and a single status line which can be
// updated in place. See termstatus.Terminal for a concrete implementation.
type Terminal interface {
	// Print writes a line to the terminal. A status line currently shown is
	// kept on screen above the message and no longer updated.
	Print(line string) error
	// SetStatus replaces the status line. Pass an empty string to remove it.
	SetStatus(line string) error
	// CanUpdateStatus returns true if the terminal can update the status line.
	CanUpdateStatus() bool
}
