// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package simd provides memory-copy routines which move bytes with the widest
// vector load/store instructions compiled into the binary: 128-bit (SSE2 on
// amd64, NEON on arm64), 256-bit (AVX2) and 512-bit (AVX-512) lanes.  Bytes
// that do not fill a whole lane are copied by a scalar tail.
//
// Tier availability is decided when the binary is built, never at runtime.
// The 128-bit tier is present on amd64 and arm64 unless the noasm tag is
// given.  The 256-bit tier requires GOAMD64=v3 or the simdcopy_avx2 build
// tag, and the 512-bit tier requires GOAMD64=v4 or the simdcopy_avx512 build
// tag.  A binary built with a wide tier will fault on a processor which lacks
// the corresponding instructions; nothing here checks.  Available reports
// which tiers were compiled in.
//
// Every tier has two entry shapes:
//
// - Copy<Tier> and CopyRaw<Tier> take a byte count, copy as many whole blocks
// as fit with the vector kernel, and finish the remainder with a scalar copy.
//
// - CopyAligned<Tier> and CopyAlignedRaw<Tier> take a block count and copy
// only whole blocks; the caller guarantees that the intended length is a
// multiple of the tier's block size.
//
// Package github.com/grailbio/simdcopy/simd/sized contains fully unrolled
// variants for sizes fixed at compile time.
//
// All entry points return a Result.  A tier which was not compiled in leaves
// the destination untouched and returns Unavailable; this is not the same
// thing as a zero-length copy, which returns Copied(0).
//
// Functions with 'Raw' in their names take unsafe.Pointers, do not validate anything, and have
// undefined behavior when the regions are too short or overlap.  Their safe
// analogues take byte slices and panic when documented preconditions are not
// met.
package simd
