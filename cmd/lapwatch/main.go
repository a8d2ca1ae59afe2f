package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/lapwatch/lapwatch/internal/debug"
	"github.com/lapwatch/lapwatch/internal/errors"
)

func init() {
	// don't import `go.uber.org/automaxprocs` to disable the log output
	_, _ = maxprocs.Set()
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lapwatch",
		Short: "Terminal stopwatch that pauses when the lid is closed",
		Long: `
lapwatch is a stopwatch for the terminal. Press Enter to start and stop it,
r to reset the time and the start counter and Esc to quit. While it runs,
lapwatch pauses automatically when the laptop lid is closed.

EXIT STATUS
===========

Exit status is 0 if lapwatch was quit with Esc, 130 if it was interrupted
by a signal and 1 if there was any error.
`,
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		DisableAutoGenTag: true,

		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return globalOptions.PreRun()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStopwatch(cmd.Context(), globalOptions, os.Stdin, globalOptions.stdout)
		},
	}

	globalOptions.AddFlags(cmd.PersistentFlags())
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(
		newVersionCommand(),
	)

	registerProfiling(cmd)

	return cmd
}

// exitCode maps the error returned by the root command to the exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.IsFatal(err):
		// a failed restore outranks the interrupt
		return 1
	case errors.Is(err, context.Canceled):
		return 130
	default:
		return 1
	}
}

func exitMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.IsFatal(err):
		return err.Error()
	case errors.Is(err, context.Canceled):
		return ""
	default:
		return fmt.Sprintf("%+v", err)
	}
}

func main() {
	debug.Log("main %#v", os.Args)
	debug.Log("lapwatch %s compiled with %v on %v/%v",
		version, runtime.Version(), runtime.GOOS, runtime.GOARCH)

	ctx := createGlobalContext()
	err := newRootCommand().ExecuteContext(ctx)
	if err == nil {
		err = ctx.Err()
	}

	code := exitCode(err)
	if msg := exitMessage(err); msg != "" {
		_, _ = fmt.Fprintln(globalOptions.stderr, msg)
	}
	Exit(code)
}
