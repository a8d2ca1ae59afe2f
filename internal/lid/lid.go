// Package lid reports whether the lid of a laptop is closed.
package lid

import (
	"context"
	"runtime"

	"github.com/lapwatch/lapwatch/internal/debug"
	"github.com/lapwatch/lapwatch/internal/errors"
)

// Sensor reports the lid state. An error means the state could not be
// determined at all.
type Sensor interface {
	Closed(ctx context.Context) (bool, error)
}

// None is a Sensor for machines without a lid. The lid is never closed.
type None struct{}

// Closed returns false.
func (None) Closed(context.Context) (bool, error) { return false, nil }

// Static always returns the same answer. It is meant for tests.
type Static struct {
	IsClosed bool
	Err      error
}

// Closed returns IsClosed and Err.
func (s Static) Closed(context.Context) (bool, error) { return s.IsClosed, s.Err }

// Names lists the values accepted by FromName.
var Names = []string{"auto", "ioreg", "acpi", "none"}

// FromName returns the sensor called name. "auto" selects the sensor for the
// operating system lapwatch runs on.
func FromName(name string) (Sensor, error) {
	if name == "auto" {
		switch runtime.GOOS {
		case "darwin":
			name = "ioreg"
		case "linux":
			name = "acpi"
		default:
			name = "none"
		}
		debug.Log("auto-selected lid sensor %q for %v", name, runtime.GOOS)
	}

	switch name {
	case "ioreg":
		return NewIOReg(), nil
	case "acpi":
		return NewACPI(), nil
	case "none":
		return None{}, nil
	default:
		return nil, errors.Fatalf("unknown lid sensor %q, valid sensors are %v", name, Names)
	}
}
