// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd_test

import (
	"bytes"
	"math/rand"
	"testing"
	"unsafe"

	fuzz "github.com/google/gofuzz"
	"github.com/grailbio/simdcopy/simd"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

const canary = 0xa5

func fillRandom(b []byte) {
	for i := range b {
		b[i] = byte(rand.Intn(256))
	}
}

func fillCanary(b []byte) {
	for i := range b {
		b[i] = canary
	}
}

// checkCanary fails the test if any byte of b differs from the canary.
func checkCanary(t *testing.T, b []byte, what string) {
	t.Helper()
	for i, v := range b {
		if v != canary {
			t.Fatalf("%s: byte %d clobbered (%#x)", what, i, v)
		}
	}
}

func TestTierConstants(t *testing.T) {
	expect.EQ(t, simd.Has128, simd.Available.Has(simd.Tier128))
	expect.EQ(t, simd.Has256, simd.Available.Has(simd.Tier256))
	expect.EQ(t, simd.Has512, simd.Available.Has(simd.Tier512))
	for _, tier := range simd.AllTiers {
		expect.EQ(t, 1<<tier.Log2BytesPerBlock(), tier.BytesPerBlock())
		expect.EQ(t, tier.Available(), simd.Available.Has(tier))
		parsed, err := simd.ParseTier(tier.String())
		assert.NoError(t, err)
		expect.EQ(t, parsed, tier)
	}
	expect.EQ(t, simd.Tier128.BytesPerBlock(), 16)
	expect.EQ(t, simd.Tier256.BytesPerBlock(), 32)
	expect.EQ(t, simd.Tier512.BytesPerBlock(), 64)
	_, err := simd.ParseTier("1024")
	expect.True(t, err != nil)
}

func TestTierSet(t *testing.T) {
	var none simd.TierSet
	_, ok := none.Widest()
	expect.False(t, ok)
	expect.EQ(t, none.String(), "none")
	expect.EQ(t, len(none.Tiers()), 0)

	// Tiers are independent: a set need not contain the narrower ones.
	s := simd.TierSet(1)<<simd.Tier128 | simd.TierSet(1)<<simd.Tier512
	expect.True(t, s.Has(simd.Tier128))
	expect.False(t, s.Has(simd.Tier256))
	expect.True(t, s.Has(simd.Tier512))
	expect.False(t, s.Has(simd.Tier(7)))
	w, ok := s.Widest()
	expect.True(t, ok)
	expect.EQ(t, w, simd.Tier512)
	expect.EQ(t, s.Tiers(), []simd.Tier{simd.Tier128, simd.Tier512})
	expect.EQ(t, s.String(), "128-bit,512-bit")
}

func TestSplit(t *testing.T) {
	for _, tier := range simd.AllTiers {
		b := tier.BytesPerBlock()
		for n := 0; n < 10*b; n++ {
			nBlock, nRem := simd.Split(tier, n)
			if nBlock*b+nRem != n || nRem < 0 || nRem >= b {
				t.Fatalf("%v: Split(%d) = (%d, %d)", tier, n, nBlock, nRem)
			}
		}
	}
	nBlock, nRem := simd.Split(simd.Tier128, 20)
	expect.EQ(t, nBlock, 1)
	expect.EQ(t, nRem, 4)
}

func TestResult(t *testing.T) {
	expect.False(t, simd.Unavailable.OK())
	expect.EQ(t, simd.Unavailable, simd.Result{})
	expect.EQ(t, simd.Unavailable.String(), "unavailable")
	r := simd.Copied(0)
	expect.True(t, r.OK())
	expect.EQ(t, r.Len(), 0)
	expect.EQ(t, simd.Copied(20).String(), "copied(20)")
}

// TestCopy compares every tier against the built-in copy on random windows,
// with a sentinel just past the end of the destination window.
func TestCopy(t *testing.T) {
	maxSize := 700
	nIter := 300
	srcArr := make([]byte, maxSize+1)
	dstArr := make([]byte, maxSize+1)
	for _, tier := range simd.AllTiers {
		for iter := 0; iter < nIter; iter++ {
			sliceStart := rand.Intn(maxSize)
			sliceEnd := sliceStart + rand.Intn(maxSize-sliceStart)
			fillRandom(srcArr)
			fillCanary(dstArr)
			src := srcArr[sliceStart:sliceEnd]
			dst := dstArr[sliceStart:sliceEnd]
			r := tier.Copy(dst, src)
			if !tier.Available() {
				expect.EQ(t, r, simd.Unavailable)
				checkCanary(t, dstArr, tier.String())
				continue
			}
			expect.EQ(t, r, simd.Copied(len(src)))
			if !bytes.Equal(dst, src) {
				t.Fatalf("%v: mismatched Copy result for [%d:%d]", tier, sliceStart, sliceEnd)
			}
			checkCanary(t, dstArr[:sliceStart], tier.String()+" prefix")
			checkCanary(t, dstArr[sliceEnd:], tier.String()+" suffix")
		}
	}
}

// TestCopyFullRange covers every count in [0, 6B+1] for each tier, which
// includes k*B-1, k*B and k*B+1 for several k.
func TestCopyFullRange(t *testing.T) {
	for _, tier := range simd.AllTiers {
		b := tier.BytesPerBlock()
		src := make([]byte, 6*b+2)
		fillRandom(src)
		for n := 0; n <= 6*b+1; n++ {
			dst := make([]byte, n+b)
			fillCanary(dst)
			var r simd.Result
			switch tier {
			case simd.Tier128:
				r = simd.Copy128(dst, src[:n])
			case simd.Tier256:
				r = simd.Copy256(dst, src[:n])
			case simd.Tier512:
				r = simd.Copy512(dst, src[:n])
			}
			if !tier.Available() {
				expect.False(t, r.OK())
				checkCanary(t, dst, tier.String())
				continue
			}
			assert.EQ(t, r.Len(), n)
			assert.True(t, bytes.Equal(dst[:n], src[:n]), "%v: n=%d", tier, n)
			checkCanary(t, dst[n:], tier.String())
		}
	}
}

func TestCopyRawUnaligned(t *testing.T) {
	for _, tier := range simd.Available.Tiers() {
		b := tier.BytesPerBlock()
		for misalign := 1; misalign < b; misalign += 3 {
			n := 5*b + misalign
			srcBuf := simd.MakeAligned(n+b, simd.MaxBytesPerBlock)
			dstBuf := simd.MakeAligned(n+b, simd.MaxBytesPerBlock)
			fillRandom(srcBuf)
			fillCanary(dstBuf)
			src, dst := srcBuf[misalign:misalign+n], dstBuf[b-misalign:b-misalign+n]
			r := tier.CopyRaw(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), n)
			assert.EQ(t, r, simd.Copied(n))
			assert.True(t, bytes.Equal(dst, src))
			checkCanary(t, dstBuf[:b-misalign], "prefix")
			checkCanary(t, dstBuf[b-misalign+n:], "suffix")
		}
	}
}

func TestCopyAligned(t *testing.T) {
	for _, tier := range simd.AllTiers {
		b := tier.BytesPerBlock()
		for nBlock := 0; nBlock <= 9; nBlock++ {
			// src is longer than nBlock blocks; only nBlock*b bytes may move.
			src := make([]byte, (nBlock+1)*b+3)
			fillRandom(src)
			dst := make([]byte, len(src))
			fillCanary(dst)
			r := tier.CopyAligned(dst, src, nBlock)
			if !tier.Available() {
				expect.EQ(t, r, simd.Unavailable)
				checkCanary(t, dst, tier.String())
				continue
			}
			assert.EQ(t, r, simd.Copied(nBlock*b))
			assert.True(t, bytes.Equal(dst[:nBlock*b], src[:nBlock*b]))
			checkCanary(t, dst[nBlock*b:], tier.String())
		}
	}
}

func TestCopyIdempotent(t *testing.T) {
	for _, tier := range simd.Available.Tiers() {
		src := make([]byte, 300)
		fillRandom(src)
		dst := make([]byte, len(src))
		fillCanary(dst)
		assert.True(t, tier.Copy(dst, src).OK())
		assert.True(t, bytes.Equal(dst, src))
		// A second copy of the same source changes nothing.
		assert.True(t, tier.Copy(dst, src).OK())
		assert.True(t, bytes.Equal(dst, src))
	}
}

func TestCopyFuzz(t *testing.T) {
	fz := fuzz.New().NilChance(0).NumElements(0, 4*simd.MaxBytesPerBlock+7)
	const N = 500
	for i := 0; i < N; i++ {
		var src []byte
		fz.Fuzz(&src)
		for _, tier := range simd.AllTiers {
			dst := make([]byte, len(src)+simd.MaxBytesPerBlock)
			fillCanary(dst)
			r := tier.Copy(dst[:len(src)], src)
			if !tier.Available() {
				assert.EQ(t, r, simd.Unavailable)
				checkCanary(t, dst, tier.String())
				continue
			}
			assert.EQ(t, r, simd.Copied(len(src)))
			assert.True(t, bytes.Equal(dst[:len(src)], src), "%v: n=%d", tier, len(src))
			checkCanary(t, dst[len(src):], tier.String())
		}
	}
}

func TestCopyZero(t *testing.T) {
	for _, tier := range simd.AllTiers {
		r := tier.Copy(nil, nil)
		expect.EQ(t, r.OK(), tier.Available())
		expect.EQ(t, r.Len(), 0)
		r = tier.CopyAlignedRaw(nil, nil, 0)
		expect.EQ(t, r.OK(), tier.Available())
		r = tier.CopyRaw(nil, nil, 0)
		expect.EQ(t, r.OK(), tier.Available())
	}
}

func TestCopyPreconditions(t *testing.T) {
	for _, tier := range simd.Available.Tiers() {
		b := tier.BytesPerBlock()
		expectPanic(t, func() { tier.Copy(make([]byte, 3), make([]byte, 4)) })
		expectPanic(t, func() { tier.CopyAligned(make([]byte, b), make([]byte, 2*b), 2) })
		expectPanic(t, func() { tier.CopyAligned(make([]byte, 2*b), make([]byte, b), 2) })
		expectPanic(t, func() { tier.CopyAligned(nil, nil, -1) })
	}
	expectPanic(t, func() { simd.Tier(5).Copy(nil, nil) })
	expectPanic(t, func() { simd.MakeAligned(10, 24) })
}

func expectPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	f()
}

func TestCopyWidest(t *testing.T) {
	src := make([]byte, 333)
	fillRandom(src)
	dst := make([]byte, len(src))
	r := simd.CopyWidest(dst, src)
	if _, ok := simd.Available.Widest(); !ok {
		expect.EQ(t, r, simd.Unavailable)
		return
	}
	expect.EQ(t, r, simd.Copied(len(src)))
	expect.True(t, bytes.Equal(dst, src))
}

func TestMakeAligned(t *testing.T) {
	for _, align := range []int{1, 16, 32, 64, 4096} {
		for _, n := range []int{0, 1, 63, 1000} {
			b := simd.MakeAligned(n, align)
			expect.EQ(t, len(b), n)
			expect.EQ(t, cap(b), n)
			if n > 0 {
				expect.EQ(t, int(uintptr(unsafe.Pointer(&b[0])))%align, 0)
			}
		}
	}
	expect.EQ(t, simd.RoundUpPow2(20, 16), 32)
	expect.EQ(t, simd.RoundUpPow2(32, 16), 32)
	expect.EQ(t, simd.DivUpPow2(20, 16, 4), 2)
	expect.EQ(t, simd.DivUpPow2(0, 16, 4), 0)
}
