// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64 && !noasm && (amd64.v3 || simdcopy_avx2)

package simd

import "unsafe"

// Has256 reports whether the 256-bit tier was compiled in.
const Has256 = true

const bit256 = TierSet(1) << Tier256

func copyBlocks256(dst, src unsafe.Pointer, nBlock int) {
	copyBlocks32Asm((*byte)(dst), (*byte)(src), nBlock)
}
