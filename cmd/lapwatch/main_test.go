package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lapwatch/lapwatch/internal/errors"
	rtest "github.com/lapwatch/lapwatch/internal/test"
)

func TestExitCode(t *testing.T) {
	for _, c := range []struct {
		err  error
		code int
		msg  string
	}{
		{nil, 0, ""},
		{context.Canceled, 130, ""},
		{errors.Wrap(context.Canceled, "poll"), 130, ""},
		{errors.Fatal("invalid poll interval"), 1, "Fatal: invalid poll interval"},
	} {
		rtest.Equals(t, c.code, exitCode(c.err))
		rtest.Equals(t, c.msg, exitMessage(c.err))
	}

	err := errors.Wrap(errors.New("broken pipe"), "write")
	rtest.Equals(t, 1, exitCode(err))
	rtest.Assert(t, strings.HasPrefix(exitMessage(err), "write: broken pipe"), "unexpected message %q", exitMessage(err))
}

func TestExitCodeRestoreFailureAfterInterrupt(t *testing.T) {
	err := errors.Join(context.Canceled,
		errors.Fatalf("unable to restore terminal mode: %v", errors.New("input/output error")))

	rtest.Equals(t, 1, exitCode(err))
	msg := exitMessage(err)
	rtest.Assert(t, strings.Contains(msg, "unable to restore terminal mode: input/output error"),
		"restore failure missing from message %q", msg)
}

func TestVersionCommand(t *testing.T) {
	buf := new(bytes.Buffer)
	cmd := newVersionCommand()
	cmd.SetOut(buf)
	cmd.SetArgs(nil)
	rtest.OK(t, cmd.Execute())

	rtest.Assert(t, strings.HasPrefix(buf.String(), "lapwatch "+version), "unexpected version output %q", buf.String())
}

func TestRootCommandRejectsArgs(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"start"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	rtest.Assert(t, cmd.Execute() != nil, "root command accepted an argument")
}
