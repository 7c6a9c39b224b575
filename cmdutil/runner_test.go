// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmdutil

import (
	"bytes"
	"testing"

	"github.com/grailbio/simdcopy/log"
	"github.com/grailbio/simdcopy/simd"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"v.io/x/lib/cmdline"
)

type recorder struct {
	level log.Level
	lines []string
}

func (r *recorder) Level() log.Level { return r.level }

func (r *recorder) Output(_ int, _ log.Level, s string) error {
	r.lines = append(r.lines, s)
	return nil
}

func TestSetupLogsTiers(t *testing.T) {
	rec := &recorder{level: log.Debug}
	defer log.SetOutputter(log.SetOutputter(rec))
	setup()
	require.Equal(t, []string{"compiled tiers: " + simd.Available.String()}, rec.lines)
}

func TestRunnerFunc(t *testing.T) {
	var stdout bytes.Buffer
	env := &cmdline.Env{Stdout: &stdout, Vars: map[string]string{}}
	failure := errors.New("COPY_512 failed")
	var got []string
	run := RunnerFunc(func(env *cmdline.Env, args []string) error {
		got = args
		return failure
	})
	require.Equal(t, failure, run.Run(env, []string{"ALL"}))
	require.Equal(t, []string{"ALL"}, got)

	require.Panics(t, func() {
		_ = RunnerFunc(func(*cmdline.Env, []string) error { panic("kernel") }).Run(env, nil)
	})
}
