package lid_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	lerrors "github.com/lapwatch/lapwatch/internal/errors"
	"github.com/lapwatch/lapwatch/internal/lid"
	rtest "github.com/lapwatch/lapwatch/internal/test"
)

const ioregOpen = `+-o AppleARMPE  <class IOService, id 0x10000010e, registered, matched, active, busy 0 (1290 ms), retain 8>
  | {
  |   "AppleClamshellState" = No
  |   "AppleClamshellCausesSleep" = Yes
  | }
`

const ioregClosed = `+-o AppleARMPE  <class IOService, id 0x10000010e, registered, matched, active, busy 0 (1290 ms), retain 8>
  | {
  |   "AppleClamshellState" = Yes
  |   "AppleClamshellCausesSleep" = Yes
  | }
`

func fixedRunner(out string, err error, calls *[]string) lid.Runner {
	return func(_ context.Context, name string, args ...string) ([]byte, error) {
		*calls = append(*calls, name)
		*calls = append(*calls, args...)
		return []byte(out), err
	}
}

func TestIOReg(t *testing.T) {
	for _, test := range []struct {
		name   string
		output string
		want   bool
	}{
		{"open", ioregOpen, false},
		{"closed", ioregClosed, true},
		{"empty", "", false},
		{"invalid-utf8", "\xff\xfe" + ioregClosed, true},
	} {
		t.Run(test.name, func(t *testing.T) {
			var calls []string
			s := &lid.IOReg{Run: fixedRunner(test.output, nil, &calls)}

			closed, err := s.Closed(context.Background())
			rtest.OK(t, err)
			rtest.Equals(t, test.want, closed)
			rtest.Equals(t, []string{"ioreg", "-r", "-k", "AppleClamshellState", "-d", "4"}, calls)
		})
	}
}

func TestIORegError(t *testing.T) {
	want := errors.New("exec: \"ioreg\": executable file not found in $PATH")
	var calls []string
	s := &lid.IOReg{Run: fixedRunner("", want, &calls)}

	closed, err := s.Closed(context.Background())
	rtest.Assert(t, errors.Is(err, want), "wrong error %v", err)
	rtest.Assert(t, !closed, "lid reported closed on error")
}

func writeState(t *testing.T, dir, name, content string) {
	rtest.OK(t, os.MkdirAll(filepath.Join(dir, name), 0700))
	rtest.OK(t, os.WriteFile(filepath.Join(dir, name, "state"), []byte(content), 0600))
}

func TestACPI(t *testing.T) {
	dir := t.TempDir()
	s := &lid.ACPI{Dir: dir}

	// no lid at all
	closed, err := s.Closed(context.Background())
	rtest.OK(t, err)
	rtest.Assert(t, !closed, "missing lid reported as closed")

	writeState(t, dir, "LID0", "state:      open\n")
	closed, err = s.Closed(context.Background())
	rtest.OK(t, err)
	rtest.Assert(t, !closed, "open lid reported as closed")

	writeState(t, dir, "LID1", "state:      closed\n")
	closed, err = s.Closed(context.Background())
	rtest.OK(t, err)
	rtest.Assert(t, closed, "closed lid reported as open")
}

func TestACPIReadError(t *testing.T) {
	dir := t.TempDir()
	// a directory where the state file should be cannot be read
	rtest.OK(t, os.MkdirAll(filepath.Join(dir, "LID0", "state"), 0700))

	_, err := (&lid.ACPI{Dir: dir}).Closed(context.Background())
	rtest.Assert(t, err != nil, "expected an error for an unreadable state file")
}

type countingSensor struct {
	calls  int
	closed bool
}

func (c *countingSensor) Closed(context.Context) (bool, error) {
	c.calls++
	return c.closed, nil
}

func TestThrottle(t *testing.T) {
	inner := &countingSensor{closed: true}
	s := lid.Throttle(inner, time.Hour)

	closed, err := s.Closed(context.Background())
	rtest.OK(t, err)
	rtest.Assert(t, closed, "first query must reach the sensor")

	for i := 0; i < 10; i++ {
		closed, err = s.Closed(context.Background())
		rtest.OK(t, err)
		rtest.Assert(t, !closed, "throttled query %d reported a closed lid", i)
	}
	rtest.Equals(t, 1, inner.calls)
}

func TestThrottleZeroInterval(t *testing.T) {
	inner := &countingSensor{}
	rtest.Equals(t, lid.Sensor(inner), lid.Throttle(inner, 0))
}

func TestThrottleError(t *testing.T) {
	want := errors.New("sensor failed")
	s := lid.Throttle(lid.Static{Err: want}, time.Hour)

	_, err := s.Closed(context.Background())
	rtest.Assert(t, errors.Is(err, want), "wrong error %v", err)
}

func TestFromName(t *testing.T) {
	for _, name := range []string{"ioreg", "acpi", "none"} {
		s, err := lid.FromName(name)
		rtest.OK(t, err)
		rtest.Assert(t, s != nil, "no sensor for %q", name)
	}

	s, err := lid.FromName("auto")
	rtest.OK(t, err)
	switch runtime.GOOS {
	case "darwin":
		_, ok := s.(*lid.IOReg)
		rtest.Assert(t, ok, "want ioreg sensor on darwin, got %T", s)
	case "linux":
		_, ok := s.(*lid.ACPI)
		rtest.Assert(t, ok, "want acpi sensor on linux, got %T", s)
	default:
		rtest.Equals(t, lid.Sensor(lid.None{}), s)
	}

	_, err = lid.FromName("hinge")
	rtest.Assert(t, lerrors.IsFatal(err), "want fatal error for unknown sensor, got %v", err)
}

func TestHostSensor(t *testing.T) {
	if !rtest.RunLidSensorTest {
		t.Skip("lid sensor test disabled, set LAPWATCH_TEST_LID_SENSOR=1")
	}

	s, err := lid.FromName(rtest.TestLidSensor)
	rtest.OK(t, err)

	closed, err := s.Closed(context.Background())
	rtest.OK(t, err)
	t.Logf("lid closed: %v", closed)
}
