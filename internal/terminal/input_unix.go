//go:build unix

package terminal

import (
	"context"
	"io"
	"time"

	"golang.org/x/sys/unix"

	"github.com/lapwatch/lapwatch/internal/debug"
	"github.com/lapwatch/lapwatch/internal/errors"
)

// Poll waits at most timeout for input and returns the next key event. No
// input within the timeout is not an error, ok is false then. Bytes that
// decode to several events are returned by subsequent calls without waiting.
func (in *Input) Poll(ctx context.Context, timeout time.Duration) (ev Event, ok bool, err error) {
	if ev, ok := in.next(); ok {
		return ev, true, nil
	}
	if err := ctx.Err(); err != nil {
		return Event{}, false, err
	}

	msec := int(timeout / time.Millisecond)
	if msec <= 0 && timeout > 0 {
		msec = 1
	}

	fd := int(in.f.Fd())
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, msec)
	if err == unix.EINTR {
		return Event{}, false, nil
	}
	if err != nil {
		return Event{}, false, errors.Wrap(err, "poll")
	}
	if n == 0 || fds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) == 0 {
		return Event{}, false, nil
	}

	nr, err := unix.Read(fd, in.buf)
	switch {
	case err == unix.EINTR || err == unix.EAGAIN:
		return Event{}, false, nil
	case err != nil:
		return Event{}, false, errors.Wrap(err, "read")
	case nr == 0:
		return Event{}, false, errors.Wrap(io.EOF, "read")
	}

	in.pending = append(in.pending, Decode(in.buf[:nr])...)
	debug.Log("read %d bytes, %d key events pending", nr, len(in.pending))

	ev, ok = in.next()
	return ev, ok, nil
}
