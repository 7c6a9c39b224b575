// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmdutil

import (
	"fmt"
	"io"
	"runtime"

	"github.com/grailbio/simdcopy/simd"
	"v.io/x/lib/cmdline"
)

var (
	version = "(missing)"
	tags    = ""
)

func init() {
	s := fmt.Sprintf("os=%s; arch=%s; %s; tiers=%s", runtime.GOOS, runtime.GOARCH, runtime.Version(), simd.Available)
	if tags == "" {
		tags = s
		return
	}
	tags = tags + "; " + s
}

func printVersion(w io.Writer, prefix string) {
	fmt.Fprintf(w, "%s/%v (%v)\n", prefix, version, tags)
}

// CreateVersionCommand creates a cmdline 'subcommand' to display version
// information, including the vector tiers compiled into the binary.
//
// The format of the information printed is:
//
//	<prefix>/<version> (<tag1>; <tag2>; ...)
//
// The version and extra tags are set at build time using something like:
//
//	go build -ldflags \
//	 "-X github.com/grailbio/simdcopy/cmdutil.version=$version \
//	  -X github.com/grailbio/simdcopy/cmdutil.tags=$tags"
func CreateVersionCommand(name, prefix string) *cmdline.Command {
	return &cmdline.Command{
		Runner: RunnerFunc(func(env *cmdline.Env, _ []string) error {
			printVersion(env.Stdout, prefix)
			return nil
		}),
		Name:  name,
		Short: "Display version information",
	}
}
