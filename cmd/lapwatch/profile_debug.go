//go:build debug || profile

package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lapwatch/lapwatch/internal/errors"
)

type profileOptions struct {
	listen    string
	memPath   string
	cpuPath   string
	tracePath string
	blockPath string
}

func (opts *profileOptions) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&opts.listen, "listen-profile", "", "listen on this `address:port` for memory profiling")
	f.StringVar(&opts.memPath, "mem-profile", "", "write memory profile to `dir`")
	f.StringVar(&opts.cpuPath, "cpu-profile", "", "write cpu profile to `dir`")
	f.StringVar(&opts.tracePath, "trace-profile", "", "write trace to `dir`")
	f.StringVar(&opts.blockPath, "block-profile", "", "write block profile to `dir`")
}

type profiler struct {
	opts profileOptions
	stop interface {
		Stop()
	}
}

func registerProfiling(cmd *cobra.Command) {
	var p profiler

	origPreRun := cmd.PersistentPreRunE
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if origPreRun != nil {
			if err := origPreRun(cmd, args); err != nil {
				return err
			}
		}
		return p.start()
	}
	cobra.OnFinalize(p.Stop)

	p.opts.AddFlags(cmd.PersistentFlags())
}

func (p *profiler) start() error {
	if p.opts.listen != "" {
		Warnf("running profile HTTP server on %v\n", p.opts.listen)
		go func() {
			if err := http.ListenAndServe(p.opts.listen, nil); err != nil {
				Warnf("profile HTTP server listen failed: %v\n", err)
			}
		}()
	}

	var modes []func(*profile.Profile)
	var paths []string
	for _, m := range []struct {
		path string
		mode func(*profile.Profile)
	}{
		{p.opts.memPath, profile.MemProfile},
		{p.opts.cpuPath, profile.CPUProfile},
		{p.opts.tracePath, profile.TraceProfile},
		{p.opts.blockPath, profile.BlockProfile},
	} {
		if m.path != "" {
			modes = append(modes, m.mode)
			paths = append(paths, m.path)
		}
	}

	switch len(modes) {
	case 0:
		return nil
	case 1:
		p.stop = profile.Start(profile.Quiet, profile.NoShutdownHook, modes[0], profile.ProfilePath(paths[0]))
		return nil
	default:
		return errors.Fatal(fmt.Sprintf("only one profile may be activated at the same time, got %d", len(modes)))
	}
}

func (p *profiler) Stop() {
	if p.stop != nil {
		p.stop.Stop()
	}
}
