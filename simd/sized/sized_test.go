// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sized_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/grailbio/simdcopy/simd"
	"github.com/grailbio/simdcopy/simd/sized"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

const canary = 0x5a

func TestFuncs(t *testing.T) {
	assert.EQ(t, len(sized.Funcs), 12)
	for _, f := range sized.Funcs {
		src := make([]byte, f.Size)
		rand.Read(src)
		buf := bytes.Repeat([]byte{canary}, f.Size+simd.MaxBytesPerBlock)
		r := f.Copy(buf[:f.Size], src)
		if !f.Tier.Available() {
			expect.EQ(t, r, simd.Unavailable, "%v/%d", f.Tier, f.Size)
			expect.EQ(t, buf, bytes.Repeat([]byte{canary}, len(buf)))
			continue
		}
		expect.EQ(t, r, simd.Copied(f.Size))
		expect.True(t, bytes.Equal(buf[:f.Size], src), "%v/%d", f.Tier, f.Size)
		expect.EQ(t, buf[f.Size:], bytes.Repeat([]byte{canary}, simd.MaxBytesPerBlock), "%v/%d", f.Tier, f.Size)
	}
}

// TestMatchesRuntime checks each unrolled function against the runtime
// byte-count entry point of the same tier.
func TestMatchesRuntime(t *testing.T) {
	for _, f := range sized.Funcs {
		if !f.Tier.Available() {
			continue
		}
		src := make([]byte, f.Size)
		rand.Read(src)
		want := make([]byte, f.Size)
		got := make([]byte, f.Size)
		assert.True(t, f.Tier.Copy(want, src).OK())
		assert.True(t, f.Copy(got, src).OK())
		assert.EQ(t, got, want)
	}
}

func TestCopy20x128(t *testing.T) {
	var src, dst [20]byte
	for i := range src {
		src[i] = byte(i + 1)
	}
	r := sized.Copy20x128(&dst, &src)
	if !simd.Has128 {
		expect.EQ(t, r, simd.Unavailable)
		expect.EQ(t, dst, [20]byte{})
		return
	}
	expect.EQ(t, r, simd.Copied(20))
	expect.EQ(t, dst, src)
}

func TestLookup(t *testing.T) {
	f, ok := sized.Lookup(simd.Tier256, 100)
	assert.True(t, ok)
	expect.EQ(t, f.Size, 100)
	expect.EQ(t, f.Tier, simd.Tier256)
	_, ok = sized.Lookup(simd.Tier256, 101)
	expect.False(t, ok)
}

func TestShortSlicePanics(t *testing.T) {
	f, _ := sized.Lookup(simd.Tier128, 64)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	f.Copy(make([]byte, 63), make([]byte, 64))
}

func BenchmarkCopy1024(b *testing.B) {
	var src, dst [1024]byte
	for _, f := range sized.Funcs {
		if f.Size != 1024 || !f.Tier.Available() {
			continue
		}
		f := f
		b.Run(f.Tier.String(), func(b *testing.B) {
			b.SetBytes(1024)
			for i := 0; i < b.N; i++ {
				f.Copy(dst[:], src[:])
			}
		})
	}
}
