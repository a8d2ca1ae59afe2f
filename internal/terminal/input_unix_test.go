//go:build unix

package terminal_test

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/lapwatch/lapwatch/internal/errors"
	"github.com/lapwatch/lapwatch/internal/terminal"
	rtest "github.com/lapwatch/lapwatch/internal/test"
)

func newPipeInput(t *testing.T) (*terminal.Input, *os.File) {
	rd, wr, err := os.Pipe()
	rtest.OK(t, err)
	t.Cleanup(func() {
		_ = rd.Close()
		_ = wr.Close()
	})
	return terminal.NewInput(rd), wr
}

func TestInputPollTimeout(t *testing.T) {
	in, _ := newPipeInput(t)

	start := time.Now()
	_, ok, err := in.Poll(context.Background(), 20*time.Millisecond)
	rtest.OK(t, err)
	rtest.Assert(t, !ok, "unexpected event without input")
	rtest.Assert(t, time.Since(start) >= 15*time.Millisecond, "poll returned too early after %v", time.Since(start))
}

func TestInputPollEvents(t *testing.T) {
	in, wr := newPipeInput(t)

	_, err := wr.Write([]byte("r\r\x1b"))
	rtest.OK(t, err)

	var got []terminal.Event
	for i := 0; i < 3; i++ {
		ev, ok, err := in.Poll(context.Background(), time.Second)
		rtest.OK(t, err)
		rtest.Assert(t, ok, "expected event %d", i)
		got = append(got, ev)
	}

	rtest.Equals(t, []terminal.Event{
		{Key: terminal.KeyRune, Rune: 'r'},
		{Key: terminal.KeyEnter},
		{Key: terminal.KeyEsc},
	}, got)

	_, ok, err := in.Poll(context.Background(), 10*time.Millisecond)
	rtest.OK(t, err)
	rtest.Assert(t, !ok, "unexpected event after queue was drained")
}

func TestInputPollClosed(t *testing.T) {
	in, wr := newPipeInput(t)
	rtest.OK(t, wr.Close())

	_, _, err := in.Poll(context.Background(), time.Second)
	rtest.Assert(t, errors.Is(err, io.EOF), "want EOF, got %v", err)
}

func TestInputPollCanceled(t *testing.T) {
	in, _ := newPipeInput(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := in.Poll(ctx, time.Second)
	rtest.Assert(t, errors.Is(err, context.Canceled), "want context.Canceled, got %v", err)
}
