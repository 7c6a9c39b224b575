// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

import (
	"unsafe"

	"github.com/grailbio/simdcopy/must"
)

// MaxBytesPerBlock is the largest block size of any tier, compiled in or not.
const MaxBytesPerBlock = BytesPerBlock512

// RoundUpPow2 returns val rounded up to a multiple of alignment, assuming
// alignment is a power of 2.
func RoundUpPow2(val, alignment int) int {
	return (val + alignment - 1) & (^(alignment - 1))
}

// DivUpPow2 efficiently divides a number by a power-of-2 divisor, rounding
// up.
func DivUpPow2(dividend, divisor int, log2Divisor uint) int {
	return (dividend + divisor - 1) >> log2Divisor
}

// MakeAligned returns a zeroed byte slice of the given length whose first
// element sits on an address that is a multiple of alignment, which must be a
// power of 2.  The copy routines in this package do not require aligned
// memory; this exists so that callers can separate the aligned and
// misaligned cases when measuring them.
func MakeAligned(len, alignment int) []byte {
	must.Truef(alignment > 0 && alignment&(alignment-1) == 0,
		"simd.MakeAligned: alignment %d is not a power of 2", alignment)
	buf := make([]byte, len+alignment)
	addr := int(uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
	off := RoundUpPow2(addr, alignment) - addr
	return buf[off : off+len : off+len]
}
