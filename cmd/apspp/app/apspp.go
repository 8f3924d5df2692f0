// SPDX-License-Identifier: MIT

// Package app wires the apspp command: load an adjacency file, echo it,
// compute all-pairs shortest distances and print them.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/apspp/apsp"
)

const recommendedName = "apspp"

// Options holds everything the command needs to run.
type Options struct {
	Out io.Writer
	// ErrOut receives klog output (warnings, -v traces) when set.
	ErrOut io.Writer

	// Path is the adjacency matrix file; apsp.DefaultSource when omitted.
	Path string
}

// NewCommand returns the apspp root command writing results to out.
// Errors are returned from Execute; the caller decides how to report them.
func NewCommand(out, errOut io.Writer) *cobra.Command {
	o := &Options{Out: out, ErrOut: errOut}

	cmd := &cobra.Command{
		Use:   recommendedName + " [FILE]",
		Short: "Compute all-pairs shortest distances from an adjacency matrix",
		Long: `Read a square adjacency matrix (n, then n*n integers, -1 for "no edge"),
echo it, and print the shortest distance between every ordered pair of
vertices. Unreachable pairs print as INF.

FILE defaults to ` + apsp.DefaultSource + `.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(args); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run(cmd.Context())
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	addLogFlags(cmd.PersistentFlags())

	return cmd
}

// addLogFlags exposes klog's flags (-v, --logtostderr, ...) hidden from help,
// so verbosity can be raised without widening the documented surface.
func addLogFlags(flags *pflag.FlagSet) {
	fs := flag.NewFlagSet(recommendedName, flag.ContinueOnError)
	klog.InitFlags(fs)
	fs.VisitAll(func(f *flag.Flag) {
		pf := pflag.PFlagFromGoFlag(f)
		pf.Hidden = true
		flags.AddFlag(pf)
	})
	// Complete points every severity at ErrOut; one_output keeps a warning
	// from being written again for each lower severity.
	_ = fs.Set("one_output", "true")
	_ = fs.Set("stderrthreshold", "FATAL")
}

// Complete fills Path from the positional argument and sends klog output
// to ErrOut.
func (o *Options) Complete(args []string) error {
	if o.ErrOut != nil {
		klog.LogToStderr(false)
		klog.SetOutput(o.ErrOut)
	}

	o.Path = apsp.DefaultSource
	if len(args) > 0 {
		o.Path = args[0]
	}

	return nil
}

// Validate checks the options are usable.
func (o *Options) Validate() error {
	if o.Out == nil {
		return errors.New("output writer is required")
	}
	if o.Path == "" {
		return errors.New("input file path must not be empty")
	}

	return nil
}

// Run loads the matrix, echoes it, relaxes it and prints the result.
// On any load error nothing after the echo is printed.
func (o *Options) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	adj, err := apsp.LoadFile(o.Path, o.Out)
	if err != nil {
		return err
	}
	klog.V(2).Infof("loaded %d×%d adjacency from %s", adj.N(), adj.N(), o.Path)

	start := time.Now()
	res, err := apsp.Solve(adj, apsp.WithContext(ctx))
	if err != nil {
		return err
	}
	klog.V(2).Infof("relaxed %d vertices in %s", adj.N(), time.Since(start))

	if res.Dist.NegativeCycle() {
		klog.Warningf("%s contains a negative-weight cycle; distances below are not meaningful", o.Path)
	}

	if _, err = fmt.Fprintln(o.Out, apsp.Banner); err != nil {
		return err
	}
	_, err = io.WriteString(o.Out, apsp.Format(res.Dist))

	return err
}
