// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !amd64 || noasm || !(amd64.v4 || simdcopy_avx512)

package simd

import "unsafe"

// Has512 reports whether the 512-bit tier was compiled in.
const Has512 = false

const bit512 = TierSet(0)

func copyBlocks512(dst, src unsafe.Pointer, nBlock int) {
	panic("simd: 512-bit tier not compiled in")
}
