package errors_test

import (
	"os"
	"testing"

	"github.com/lapwatch/lapwatch/internal/errors"
)

func TestFatal(t *testing.T) {
	for _, v := range []struct {
		err      error
		expected bool
	}{
		{errors.Fatal("broken"), true},
		{errors.Fatalf("unknown lid sensor %q", "foo"), true},
		{errors.New("error"), false},
		{errors.Wrap(errors.Fatal("inner"), "outer"), true},
		{nil, false},
	} {
		if errors.IsFatal(v.err) != v.expected {
			t.Fatalf("IsFatal for %q, expected: %v, got: %v", v.err, v.expected, errors.IsFatal(v.err))
		}
	}
}

func TestFatalfKeepsUnderlyingError(t *testing.T) {
	fatal := errors.Fatalf("restore terminal: %v", os.ErrClosed)

	if fatal.Error() != "Fatal: restore terminal: "+os.ErrClosed.Error() {
		t.Errorf("unexpected error message: %v", fatal.Error())
	}

	if !errors.Is(fatal, os.ErrClosed) {
		t.Error("fatal error should wrap the underlying error")
	}
}

func TestWrapNil(t *testing.T) {
	if errors.Wrap(nil, "ioreg") != nil {
		t.Error("wrapping nil must return nil")
	}
}
