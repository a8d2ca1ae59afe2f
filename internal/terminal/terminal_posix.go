package terminal

import (
	"io"
)

const (
	// PosixControlMoveCursorHome moves cursor to the first column
	PosixControlMoveCursorHome = "\r"
	// PosixControlClearLine clears the current line
	PosixControlClearLine = "\x1b[2K"
	// PosixNewline ends a line in raw mode, where the terminal does not
	// translate "\n" into a carriage return plus line feed.
	PosixNewline = "\r\n"
)

// ClearCurrentLine removes all characters from the current line and resets
// the cursor position to the first column.
func ClearCurrentLine(wr io.Writer) error {
	_, err := io.WriteString(wr, PosixControlMoveCursorHome+PosixControlClearLine)
	return err
}
