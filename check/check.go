// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package check holds named self-tests for the simd copy tiers, so that a
// binary built for a particular machine can verify the tiers it was built
// with on that machine.  A tier that was not compiled in is checked for
// leaving its destination untouched.
package check

import (
	"sort"
	"strconv"

	"github.com/grailbio/simdcopy/log"
	"github.com/grailbio/simdcopy/simd"
	"github.com/pkg/errors"
)

// All names the check that runs every other check.
const All = "ALL"

// A Check verifies one family of entry points for one tier.
type Check struct {
	Name string
	Tier simd.Tier
	fn   func(simd.Tier) error
}

// Run runs c and returns the first mismatch it finds, prefixed by c.Name.
func (c Check) Run() error {
	log.Debug.Printf("check %s: tier %s, compiled=%v", c.Name, c.Tier, c.Tier.Available())
	if err := c.fn(c.Tier); err != nil {
		return errors.Wrap(err, c.Name)
	}
	return nil
}

var checks []Check

func init() {
	for _, t := range simd.AllTiers {
		w := t.BytesPerBlock() * 8
		checks = append(checks,
			Check{Name: name("COPY", w), Tier: t, fn: checkCopy},
			Check{Name: name("COPY_ALIGNED", w), Tier: t, fn: checkCopyAligned},
			Check{Name: name("SIZED", w), Tier: t, fn: checkSized},
		)
	}
	sort.Slice(checks, func(i, j int) bool { return checks[i].Name < checks[j].Name })
}

func name(family string, width int) string {
	return family + "_" + strconv.Itoa(width)
}

// Checks returns every check, sorted by name.
func Checks() []Check {
	return append([]Check(nil), checks...)
}

// Names returns the names accepted by Lookup, including All.
func Names() []string {
	names := []string{All}
	for _, c := range checks {
		names = append(names, c.Name)
	}
	return names
}

// Lookup returns the checks selected by name: one check, or all of them for
// All.
func Lookup(name string) ([]Check, error) {
	if name == All {
		return Checks(), nil
	}
	for _, c := range checks {
		if c.Name == name {
			return []Check{c}, nil
		}
	}
	return nil, errors.Errorf("unknown check %q", name)
}

// Run looks up and runs the named checks.  It runs every selected check even
// after a failure, logs each outcome, and returns the first failure.
func Run(name string) error {
	cs, err := Lookup(name)
	if err != nil {
		return err
	}
	var first error
	for _, c := range cs {
		if err := c.Run(); err != nil {
			log.Error.Printf("FAIL %s: %v", c.Name, err)
			if first == nil {
				first = err
			}
			continue
		}
		log.Printf("ok   %s", c.Name)
	}
	return first
}
