//go:build !unix

package terminal

import (
	"context"
	"runtime"
	"time"

	"github.com/lapwatch/lapwatch/internal/errors"
)

// Poll is not implemented on this platform.
func (in *Input) Poll(_ context.Context, _ time.Duration) (Event, bool, error) {
	return Event{}, false, errors.Fatalf("keyboard input is not supported on %v", runtime.GOOS)
}
