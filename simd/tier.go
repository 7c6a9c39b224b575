// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

import (
	"fmt"
	"strings"
)

// Tier identifies one vector width.
type Tier int

const (
	// Tier128 uses 128-bit vectors (SSE2, NEON).
	Tier128 Tier = iota
	// Tier256 uses 256-bit vectors (AVX2).
	Tier256
	// Tier512 uses 512-bit vectors (AVX-512).
	Tier512

	nTier = 3
)

// Block sizes in bytes.  These are declared on every build, but a tier's size
// is only ever used by code that has already checked that the tier was
// compiled in.
const (
	BytesPerBlock128 = 16
	BytesPerBlock256 = 32
	BytesPerBlock512 = 64

	Log2BytesPerBlock128 = uint(4)
	Log2BytesPerBlock256 = uint(5)
	Log2BytesPerBlock512 = uint(6)
)

// AllTiers lists every tier, narrowest first.
var AllTiers = [nTier]Tier{Tier128, Tier256, Tier512}

// BytesPerBlock returns the number of bytes a single vector load or store
// moves in tier t.
func (t Tier) BytesPerBlock() int {
	switch t {
	case Tier128:
		return BytesPerBlock128
	case Tier256:
		return BytesPerBlock256
	case Tier512:
		return BytesPerBlock512
	}
	panic(fmt.Sprintf("simd: invalid tier %d", int(t)))
}

// Log2BytesPerBlock returns log2(t.BytesPerBlock()).
func (t Tier) Log2BytesPerBlock() uint {
	switch t {
	case Tier128:
		return Log2BytesPerBlock128
	case Tier256:
		return Log2BytesPerBlock256
	case Tier512:
		return Log2BytesPerBlock512
	}
	panic(fmt.Sprintf("simd: invalid tier %d", int(t)))
}

// Available returns whether t was compiled into this binary.
func (t Tier) Available() bool {
	return Available.Has(t)
}

func (t Tier) String() string {
	switch t {
	case Tier128:
		return "128-bit"
	case Tier256:
		return "256-bit"
	case Tier512:
		return "512-bit"
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// ParseTier parses the output of Tier.String, or the bare width ("128",
// "256", "512").
func ParseTier(s string) (Tier, error) {
	switch strings.TrimSuffix(strings.ToLower(s), "-bit") {
	case "128":
		return Tier128, nil
	case "256":
		return Tier256, nil
	case "512":
		return Tier512, nil
	}
	return 0, fmt.Errorf("simd: unknown tier %q", s)
}

// TierSet is a set of tiers.
type TierSet uint8

// Available is the set of tiers compiled into this binary.  It is a constant:
// it depends only on build tags and GOAMD64, never on the executing
// processor.
const Available = bit128 | bit256 | bit512

// Has returns whether t is in s.
func (s TierSet) Has(t Tier) bool {
	return t >= 0 && t < nTier && s&(1<<uint(t)) != 0
}

// Tiers returns the members of s, narrowest first.
func (s TierSet) Tiers() []Tier {
	var tiers []Tier
	for _, t := range AllTiers {
		if s.Has(t) {
			tiers = append(tiers, t)
		}
	}
	return tiers
}

// Widest returns the widest tier in s.  ok is false iff s is empty.
func (s TierSet) Widest() (t Tier, ok bool) {
	for i := nTier - 1; i >= 0; i-- {
		if s.Has(AllTiers[i]) {
			return AllTiers[i], true
		}
	}
	return 0, false
}

func (s TierSet) String() string {
	tiers := s.Tiers()
	if len(tiers) == 0 {
		return "none"
	}
	names := make([]string, len(tiers))
	for i, t := range tiers {
		names[i] = t.String()
	}
	return strings.Join(names, ",")
}
