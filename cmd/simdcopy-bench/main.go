// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command simdcopy-bench compares the compiled-in simd copy tiers with the
// built-in copy.
package main

import (
	"context"
	"os"
	"os/signal"
	"regexp"

	"github.com/grailbio/simdcopy/bench"
	"github.com/grailbio/simdcopy/cmdutil"
	"github.com/grailbio/simdcopy/log"
	"github.com/pkg/errors"
	"v.io/x/lib/cmdline"
)

var (
	iterFlag      int
	repsFlag      int
	parallelFlag  int
	maxFactorFlag int
)

func newCmdRoot() *cmdline.Command {
	log.AddFlags()
	return &cmdline.Command{
		Name:  "simdcopy-bench",
		Short: "Benchmark the simd copy tiers",
		Long: `
Command simdcopy-bench times each vector tier compiled into the binary, and the
built-in copy, on buffers of 1KiB*10^k bytes for k = 0..max-factor. Every size
is measured twice: once with 64-byte aligned buffers, and once with both
buffers offset by one byte and 63 extra bytes so that every tier exercises its
scalar tail.

Tiers are chosen when the binary is built. Build with GOAMD64=v3 (or
-tags simdcopy_avx2) for the 256-bit tier and GOAMD64=v4 (or
-tags simdcopy_avx512) for the 512-bit tier.
`,
		Children: []*cmdline.Command{
			newCmdRun(),
			newCmdInfo(),
			cmdutil.CreateVersionCommand("version", "simdcopy-bench"),
		},
	}
}

func newCmdRun() *cmdline.Command {
	cmd := &cmdline.Command{
		Runner: cmdutil.RunnerFunc(run),
		Name:   "run",
		Short:  "Run the benchmark and print a table of latencies",
		Long: `
Run times every candidate on every case and prints one row per (size,
alignment, candidate, workers) with the min, max and average latency per copy.
The destination is compared with the source after timing; a mismatch fails
the run.
`,
	}
	cmd.Flags.IntVar(&iterFlag, "iter", bench.DefaultOpts.Iter, "Number of timed samples per size.")
	cmd.Flags.IntVar(&repsFlag, "reps", bench.DefaultOpts.Reps, "Number of copies per sample.")
	cmd.Flags.IntVar(&parallelFlag, "parallel", bench.DefaultOpts.Parallel, "If greater than one, also run every case on this many goroutines at once.")
	cmd.Flags.IntVar(&maxFactorFlag, "max-factor", 3, "Largest k in 1KiB*10^k.")
	return cmd
}

func newCmdInfo() *cmdline.Command {
	return &cmdline.Command{
		Runner: cmdutil.RunnerFunc(func(env *cmdline.Env, _ []string) error {
			bench.WriteInfo(env.Stdout)
			return nil
		}),
		Name:  "info",
		Short: "Describe the compiled-in tiers and the host processor",
		Long: `
Info lists the tiers compiled into this binary and the vector extensions the
host processor reports. Tiers are never selected at runtime, so a compiled-in
tier that the host lacks is reported as a warning.
`,
	}
}

func run(env *cmdline.Env, args []string) error {
	if len(args) != 0 {
		return env.UsageErrorf("run takes no arguments")
	}
	if maxFactorFlag < 0 {
		return env.UsageErrorf("-max-factor must be non-negative, got %d", maxFactorFlag)
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	bench.WriteInfo(env.Stderr)
	opts := bench.Opts{Iter: iterFlag, Reps: repsFlag, Parallel: parallelFlag}
	rows, err := bench.Run(ctx, opts, bench.Candidates(), bench.Cases(maxFactorFlag))
	if len(rows) > 0 {
		if werr := bench.WriteTable(env.Stdout, rows); werr != nil && err == nil {
			err = werr
		}
	}
	if err != nil {
		return errors.Wrap(err, "benchmark")
	}
	log.Printf("measured %d rows", len(rows))
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("simdcopy-bench: ")
	cmdline.HideGlobalFlagsExcept(regexp.MustCompile("^log$"))
	cmdline.Main(newCmdRoot())
}
