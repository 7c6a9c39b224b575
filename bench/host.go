// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"io"
	"runtime"

	"github.com/grailbio/simdcopy/simd"
	"golang.org/x/sys/cpu"
)

// HostSupports reports whether the processor running this report advertises
// the instructions behind t.  It is informational only: the copy routines
// never consult it, and a tier compiled into the binary is used regardless.
func HostSupports(t simd.Tier) bool {
	switch runtime.GOARCH {
	case "amd64":
		switch t {
		case simd.Tier128:
			return cpu.X86.HasSSE2
		case simd.Tier256:
			return cpu.X86.HasAVX2
		case simd.Tier512:
			return cpu.X86.HasAVX512F
		}
	case "arm64":
		return t == simd.Tier128 && cpu.ARM64.HasASIMD
	}
	return false
}

// WriteInfo describes the compiled-in tiers and what the host supports, and
// warns about compiled-in tiers the host lacks; using those will fault.
func WriteInfo(w io.Writer) {
	fmt.Fprintf(w, "arch:     %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "compiled: %s\n", simd.Available)
	for _, t := range simd.AllTiers {
		fmt.Fprintf(w, "%-8s  compiled=%-5v host=%v\n", t, t.Available(), HostSupports(t))
	}
	for _, t := range simd.Available.Tiers() {
		if !HostSupports(t) {
			fmt.Fprintf(w, "WARNING: %s tier is compiled in but this processor does not report it\n", t)
		}
	}
}
