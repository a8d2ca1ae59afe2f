package debug

import (
	"io"
	"testing"
)

// TestLogTo configures debug to log to wr for the duration of the test unless
// the debug log is already configured. It returns whether logging was
// redirected.
func TestLogTo(t testing.TB, wr io.Writer) bool {
	if opts.isEnabled {
		return false
	}
	setOutput(wr)
	t.Cleanup(func() {
		opts.logger = nil
		opts.isEnabled = false
	})
	return true
}
