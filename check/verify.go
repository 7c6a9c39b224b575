// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package check

import (
	"bytes"
	"unsafe"

	"github.com/grailbio/simdcopy/simd"
	"github.com/grailbio/simdcopy/simd/sized"
	"github.com/pkg/errors"
)

// canary fills every destination byte that a copy must not write.
const canary = 0xa5

// maxBlocks bounds the full-range sweep: every length in [0, maxBlocks*B+1]
// is tried, which covers k*B-1, k*B and k*B+1 for every k in [1, maxBlocks].
const maxBlocks = 4

// pattern fills b with bytes that differ from canary and from their
// neighbors, so that shifted or truncated copies show up.
func pattern(b []byte, seed int) {
	for i := range b {
		v := byte(i*131 + seed*17 + 1)
		if v == canary {
			v++
		}
		b[i] = v
	}
}

func canaries(n int) []byte {
	return bytes.Repeat([]byte{canary}, n)
}

// copyFunc copies the first n bytes of src to dst.
type copyFunc func(dst, src []byte, n int) simd.Result

// verify runs fn for an n-byte copy into a destination with slack bytes of
// canary past n.  When available is false, it checks that fn reported
// Unavailable and left the destination untouched.
func verify(fn copyFunc, n, slack, seed int, available bool) error {
	src := make([]byte, n)
	pattern(src, seed)
	dst := canaries(n + slack)
	r := fn(dst, src, n)
	if !available {
		if r != simd.Unavailable {
			return errors.Errorf("n=%d: tier not compiled in but copy returned %v", n, r)
		}
		if !bytes.Equal(dst, canaries(len(dst))) {
			return errors.Errorf("n=%d: tier not compiled in but destination was modified", n)
		}
		return nil
	}
	if r != simd.Copied(n) {
		return errors.Errorf("n=%d: copy returned %v, want %v", n, r, simd.Copied(n))
	}
	if i := firstDiff(dst[:n], src); i >= 0 {
		return errors.Errorf("n=%d: byte %d is %#x, want %#x", n, i, dst[i], src[i])
	}
	if i := firstDiff(dst[n:], canaries(slack)); i >= 0 {
		return errors.Errorf("n=%d: wrote byte %d past the end", n, n+i)
	}
	// A second identical copy must change nothing.
	before := append([]byte(nil), dst...)
	if r2 := fn(dst, src, n); r2 != r || !bytes.Equal(dst, before) {
		return errors.Errorf("n=%d: repeating the copy changed the result", n)
	}
	return nil
}

func firstDiff(a, b []byte) int {
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}

func checkCopy(t simd.Tier) error {
	b := t.BytesPerBlock()
	fn := func(dst, src []byte, n int) simd.Result {
		return t.CopyRaw(unsafe.Pointer(unsafe.SliceData(dst)), unsafe.Pointer(unsafe.SliceData(src)), n)
	}
	for n := 0; n <= maxBlocks*b+1; n++ {
		if err := verify(fn, n, b, n, t.Available()); err != nil {
			return err
		}
	}
	if err := misaligned(t); err != nil {
		return err
	}
	if t == simd.Tier128 && t.Available() {
		return twentyBytes()
	}
	return nil
}

// misaligned copies between every pair of byte offsets within one block.
func misaligned(t simd.Tier) error {
	b := t.BytesPerBlock()
	n := 3*b + 5
	src := simd.MakeAligned(n+b, simd.MaxBytesPerBlock)
	dst := simd.MakeAligned(n+2*b, simd.MaxBytesPerBlock)
	pattern(src, 7)
	for so := 0; so < b; so++ {
		for do := 0; do < b; do++ {
			copy(dst, canaries(len(dst)))
			r := t.Copy(dst[do:do+n], src[so:so+n])
			if !t.Available() {
				if r != simd.Unavailable || !bytes.Equal(dst, canaries(len(dst))) {
					return errors.Errorf("offsets %d/%d: tier not compiled in but copy returned %v or wrote", so, do, r)
				}
				continue
			}
			if r != simd.Copied(n) || !bytes.Equal(dst[do:do+n], src[so:so+n]) {
				return errors.Errorf("offsets %d/%d: copy returned %v with wrong contents", so, do, r)
			}
			if !bytes.Equal(dst[:do], canaries(do)) || !bytes.Equal(dst[do+n:], canaries(len(dst)-do-n)) {
				return errors.Errorf("offsets %d/%d: wrote outside the destination", so, do)
			}
		}
	}
	return nil
}

// twentyBytes checks that a 20-byte copy with 128-bit blocks is one kernel
// block and a 4-byte remainder, each writing only its own range.
func twentyBytes() error {
	if nBlock, nRem := simd.Split(simd.Tier128, 20); nBlock != 1 || nRem != 4 {
		return errors.Errorf("split(20) = %d, %d; want 1, 4", nBlock, nRem)
	}
	src := make([]byte, 20)
	pattern(src, 20)
	dst := canaries(20 + simd.BytesPerBlock128)
	if r := simd.CopyAligned128(dst, src[:16], 1); r != simd.Copied(16) {
		return errors.Errorf("aligned 16 of 20: got %v", r)
	}
	if !bytes.Equal(dst[:16], src[:16]) || !bytes.Equal(dst[16:], canaries(len(dst)-16)) {
		return errors.New("aligned 16 of 20: block copy wrote outside [0,16)")
	}
	if r := simd.Copy128(dst[:20], src); r != simd.Copied(20) || !bytes.Equal(dst[:20], src) {
		return errors.Errorf("copy of 20: got %v", r)
	}
	if !bytes.Equal(dst[20:], canaries(len(dst)-20)) {
		return errors.New("copy of 20: wrote past the end")
	}
	return nil
}

func checkCopyAligned(t simd.Tier) error {
	b := t.BytesPerBlock()
	fn := func(dst, src []byte, n int) simd.Result {
		return t.CopyAligned(dst, src, n/b)
	}
	for nBlock := 0; nBlock <= maxBlocks; nBlock++ {
		if err := verify(fn, nBlock*b, b, nBlock, t.Available()); err != nil {
			return errors.Wrapf(err, "%d blocks", nBlock)
		}
	}
	return nil
}

func checkSized(t simd.Tier) error {
	var found bool
	for _, f := range sized.Funcs {
		if f.Tier != t {
			continue
		}
		found = true
		fn := func(dst, src []byte, n int) simd.Result {
			return f.Copy(dst[:n], src)
		}
		if err := verify(fn, f.Size, simd.MaxBytesPerBlock, f.Size, t.Available()); err != nil {
			return errors.Wrapf(err, "size %d", f.Size)
		}
	}
	if !found {
		return errors.Errorf("no sized functions for the %s tier", t)
	}
	return nil
}
