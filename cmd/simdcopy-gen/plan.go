// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/grailbio/simdcopy/simd"
	"github.com/pkg/errors"
)

// tailWidths are the general-purpose register widths used for the scalar
// tail, widest first.
var tailWidths = []int{8, 4, 2, 1}

// plan is the straight-line instruction sequence for one fixed-size copy.
type plan struct {
	Tier   simd.Tier
	Size   int
	Blocks int
	// Tail holds the widths of the scalar moves which follow the blocks.
	Tail []int
}

func newPlan(t simd.Tier, size int) plan {
	nBlock, nRem := simd.Split(t, size)
	p := plan{Tier: t, Size: size, Blocks: nBlock}
	for _, w := range tailWidths {
		for ; nRem >= w; nRem -= w {
			p.Tail = append(p.Tail, w)
		}
	}
	return p
}

// Width is the tier's vector width in bits.
func (p plan) Width() int {
	return p.Tier.BytesPerBlock() * 8
}

// TailBytes is the number of bytes copied by the scalar tail.
func (p plan) TailBytes() int {
	n := 0
	for _, w := range p.Tail {
		n += w
	}
	return n
}

// Name is the exported Go wrapper's name.
func (p plan) Name() string {
	return fmt.Sprintf("Copy%dx%d", p.Size, p.Width())
}

// AsmName is the assembly function's name.
func (p plan) AsmName() string {
	return fmt.Sprintf("copy%dx%d", p.Size, p.Width())
}

// parseSizes parses a comma-separated list of positive byte counts, sorted
// and deduplicated.
func parseSizes(s string) ([]int, error) {
	seen := map[int]bool{}
	var sizes []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "size %q", f)
		}
		if n <= 0 {
			return nil, errors.Errorf("size %d: must be positive", n)
		}
		if !seen[n] {
			seen[n] = true
			sizes = append(sizes, n)
		}
	}
	if len(sizes) == 0 {
		return nil, errors.New("no sizes given")
	}
	sort.Ints(sizes)
	return sizes, nil
}

// parseTiers parses a comma-separated list of tier widths ("128,512").
func parseTiers(s string) ([]simd.Tier, error) {
	var set simd.TierSet
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		t, err := simd.ParseTier(f)
		if err != nil {
			return nil, err
		}
		set |= simd.TierSet(1) << t
	}
	tiers := set.Tiers()
	if len(tiers) == 0 {
		return nil, errors.New("no tiers given")
	}
	return tiers, nil
}

// plans returns one plan per (tier, size) pair, grouped by tier.
func plans(tiers []simd.Tier, sizes []int) []plan {
	var ps []plan
	for _, t := range tiers {
		for _, n := range sizes {
			ps = append(ps, newPlan(t, n))
		}
	}
	return ps
}
