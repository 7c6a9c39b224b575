// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command simdcopy-unit runs the named simd copy self-checks on this machine.
package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/grailbio/simdcopy/check"
	"github.com/grailbio/simdcopy/cmdutil"
	"github.com/grailbio/simdcopy/log"
	"v.io/x/lib/cmdline"
)

func newCmdRoot() *cmdline.Command {
	log.AddFlags()
	return &cmdline.Command{
		Runner: cmdutil.RunnerFunc(run),
		Name:   "simdcopy-unit",
		Short:  "Run simd copy self-checks",
		Long: `
Command simdcopy-unit runs one named self-check, or all of them with ALL, and
exits with status 1 if a check fails or the name is unknown. With no argument
it lists the check names.

A tier that was not compiled into the binary is checked for returning
"unavailable" without writing to its destination.
`,
		ArgsName: "[check]",
		ArgsLong: "[check] is one of: " + strings.Join(check.Names(), ", "),
	}
}

func run(env *cmdline.Env, args []string) error {
	switch len(args) {
	case 0:
		for _, name := range check.Names() {
			fmt.Fprintln(env.Stdout, name)
		}
		return nil
	case 1:
	default:
		return env.UsageErrorf("at most one check name is accepted, got %d", len(args))
	}
	if err := check.Run(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "PASS %s\n", args[0])
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("simdcopy-unit: ")
	cmdline.HideGlobalFlagsExcept(regexp.MustCompile("^log$"))
	cmdline.Main(newCmdRoot())
}
