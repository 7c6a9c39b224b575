// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package sized contains copy functions for byte counts fixed at compile
// time.  Each Copy<Size>x<Width> function is straight-line assembly: the
// block loop is fully unrolled, and a scalar tail is emitted only when Size
// is not a multiple of the tier's block size.  Tier availability follows
// package simd; an unavailable tier returns simd.Unavailable and writes
// nothing.
//
// To get functions for other sizes, run simdcopy-gen from your own package.
package sized

//go:generate go run github.com/grailbio/simdcopy/cmd/simdcopy-gen -out sized_amd64.s -stubs sized_amd64.go -pkg sized -wrappers sized.go -fallback sized_other.go -sizes 20,64,100,1024

import "github.com/grailbio/simdcopy/simd"

// Func describes one generated function.  Copy takes slices for the benefit
// of table-driven callers, and panics if either is shorter than Size.
type Func struct {
	Tier simd.Tier
	Size int
	Copy func(dst, src []byte) simd.Result
}

// Lookup returns the generated function for (t, size).
func Lookup(t simd.Tier, size int) (Func, bool) {
	for _, f := range Funcs {
		if f.Tier == t && f.Size == size {
			return f, true
		}
	}
	return Func{}, false
}
