// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bench times the simd copy tiers against the built-in copy at
// 1KiB*10^k sizes, aligned and misaligned, and reports min/max/average
// latency per call.
package bench

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/grailbio/simdcopy/log"
	"github.com/grailbio/simdcopy/simd"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Candidate is one copy implementation under test.
type Candidate struct {
	Name string
	Copy func(dst, src []byte) simd.Result
}

// Baseline wraps the built-in copy.
var Baseline = Candidate{
	Name: "builtin",
	Copy: func(dst, src []byte) simd.Result {
		return simd.Copied(copy(dst, src))
	},
}

// Candidates returns the baseline followed by every compiled-in tier.
func Candidates() []Candidate {
	cands := []Candidate{Baseline}
	for _, t := range simd.Available.Tiers() {
		cands = append(cands, Candidate{Name: t.String(), Copy: t.Copy})
	}
	return cands
}

// Case is one buffer configuration.
type Case struct {
	// Size is the nominal size, 1KiB*10^k.
	Size int
	// Aligned cases copy exactly Size bytes between 64-byte-aligned buffers.
	// Misaligned cases offset both buffers by one byte and copy Size+63 bytes,
	// so that every tier has a remainder.
	Aligned bool
}

// misalignedExtra is added to the size of misaligned cases.
const misalignedExtra = simd.MaxBytesPerBlock - 1

// Len is the number of bytes copied per call.
func (c Case) Len() int {
	if c.Aligned {
		return c.Size
	}
	return c.Size + misalignedExtra
}

func (c Case) String() string {
	if c.Aligned {
		return fmt.Sprintf("%d/aligned", c.Size)
	}
	return fmt.Sprintf("%d/misaligned", c.Size)
}

// Cases returns the aligned and misaligned cases for 1KiB*10^k,
// k = 0..maxFactor.
func Cases(maxFactor int) []Case {
	var cases []Case
	size := 1024
	for k := 0; k <= maxFactor; k++ {
		cases = append(cases, Case{Size: size, Aligned: true}, Case{Size: size, Aligned: false})
		size *= 10
	}
	return cases
}

// Opts configures Run.
type Opts struct {
	// Iter is the number of timed samples per case.
	Iter int
	// Reps is the number of calls per sample; a sample's latency is its
	// elapsed time divided by Reps.
	Reps int
	// Parallel, when > 1, additionally runs every case on that many workers
	// at once, each with its own buffers.
	Parallel int
}

// DefaultOpts are the defaults of the simdcopy-bench command.
var DefaultOpts = Opts{Iter: 20, Reps: 100, Parallel: 1}

// Stats summarizes the per-call latency of one candidate on one case.
type Stats struct {
	Min, Max, Avg time.Duration
	// N is the number of samples.
	N int
}

func (s *Stats) add(d time.Duration) {
	if s.N == 0 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.Avg = (s.Avg*time.Duration(s.N) + d) / time.Duration(s.N+1)
	s.N++
}

func (s *Stats) merge(o Stats) {
	if o.N == 0 {
		return
	}
	if s.N == 0 || o.Min < s.Min {
		s.Min = o.Min
	}
	if o.Max > s.Max {
		s.Max = o.Max
	}
	s.Avg = (s.Avg*time.Duration(s.N) + o.Avg*time.Duration(o.N)) / time.Duration(s.N+o.N)
	s.N += o.N
}

// Row is one line of the report.
type Row struct {
	Case      Case
	Candidate string
	Workers   int
	Stats     Stats
}

// Run measures every candidate on every case.  It stops early, returning the
// rows measured so far and the context's error, if ctx is canceled.
func Run(ctx context.Context, opts Opts, cands []Candidate, cases []Case) ([]Row, error) {
	if opts.Iter <= 0 || opts.Reps <= 0 {
		return nil, errors.Errorf("bench: iter (%d) and reps (%d) must be positive", opts.Iter, opts.Reps)
	}
	workers := []int{1}
	if opts.Parallel > 1 {
		workers = append(workers, opts.Parallel)
	}
	var rows []Row
	for _, c := range cases {
		for _, cand := range cands {
			for _, nw := range workers {
				if err := ctx.Err(); err != nil {
					return rows, err
				}
				log.Debug.Printf("bench: %s %s workers=%d", cand.Name, c, nw)
				stats, err := measureParallel(ctx, cand, c, opts, nw)
				if err != nil {
					return rows, errors.Wrapf(err, "%s %s", cand.Name, c)
				}
				rows = append(rows, Row{Case: c, Candidate: cand.Name, Workers: nw, Stats: stats})
			}
		}
	}
	return rows, nil
}

func measureParallel(ctx context.Context, cand Candidate, c Case, opts Opts, nWorker int) (Stats, error) {
	if nWorker == 1 {
		return measure(cand, c, opts)
	}
	perWorker := make([]Stats, nWorker)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < nWorker; w++ {
		w := w
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := measure(cand, c, opts)
			perWorker[w] = s
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	var total Stats
	for _, s := range perWorker {
		total.merge(s)
	}
	return total, nil
}

// measure times cand on fresh buffers and then verifies the copy.
func measure(cand Candidate, c Case, opts Opts) (Stats, error) {
	n := c.Len()
	off := 0
	if !c.Aligned {
		off = 1
	}
	srcBuf := simd.MakeAligned(n+off, simd.MaxBytesPerBlock)
	dstBuf := simd.MakeAligned(n+off, simd.MaxBytesPerBlock)
	for i := range srcBuf {
		srcBuf[i] = byte(i*7 + 1)
	}
	src, dst := srcBuf[off:off+n], dstBuf[off:off+n]

	var stats Stats
	for i := 0; i < opts.Iter; i++ {
		start := time.Now()
		for r := 0; r < opts.Reps; r++ {
			if res := cand.Copy(dst, src); !res.OK() || res.Len() != n {
				return stats, errors.Errorf("copy returned %v, want copied(%d)", res, n)
			}
		}
		stats.add(time.Since(start) / time.Duration(opts.Reps))
	}
	if !bytes.Equal(dst, src) {
		return stats, errors.New("destination does not match source")
	}
	return stats, nil
}
