package lid

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/lapwatch/lapwatch/internal/errors"
)

// ACPI reads the lid state the Linux ACPI button driver exports below
// /proc/acpi/button/lid. Each lid has a state file like "state:      closed".
// Machines without such files are treated as having an open lid.
type ACPI struct {
	Dir string
}

// NewACPI returns an ACPI sensor for the default proc directory.
func NewACPI() *ACPI {
	return &ACPI{Dir: "/proc/acpi/button/lid"}
}

// Closed reports whether any lid is closed.
func (s *ACPI) Closed(_ context.Context) (bool, error) {
	files, err := filepath.Glob(filepath.Join(s.Dir, "*", "state"))
	if err != nil {
		return false, errors.Wrap(err, "Glob")
	}

	for _, file := range files {
		buf, err := os.ReadFile(file)
		if err != nil {
			return false, errors.Wrap(err, "ReadFile")
		}

		fields := strings.Fields(string(buf))
		if len(fields) > 0 && fields[len(fields)-1] == "closed" {
			return true, nil
		}
	}

	return false, nil
}
