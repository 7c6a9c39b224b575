// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmdutil

import (
	"sync"

	"github.com/grailbio/simdcopy/log"
	"github.com/grailbio/simdcopy/simd"
	"v.io/x/lib/cmdline"
	"v.io/x/lib/vlog"
)

var setupOnce sync.Once

// setup runs once per process, before the first command.
func setup() {
	vlog.ConfigureLibraryLoggerFromFlags()
	log.Debug.Printf("compiled tiers: %s", simd.Available)
}

// RunnerFunc adapts a function to cmdline.Runner.  The first Run in a
// process configures vlog from the command line and logs the tiers compiled
// into the binary at debug level; every Run flushes vlog when f returns,
// including when f panics.
type RunnerFunc func(*cmdline.Env, []string) error

// Run implements cmdline.Runner.
func (f RunnerFunc) Run(env *cmdline.Env, args []string) error {
	setupOnce.Do(setup)
	defer vlog.FlushLog()
	return f(env, args)
}
