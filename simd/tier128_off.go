// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !(amd64 || arm64) || noasm

package simd

import "unsafe"

// Has128 reports whether the 128-bit tier was compiled in.
const Has128 = false

const bit128 = TierSet(0)

func copyBlocks128(dst, src unsafe.Pointer, nBlock int) {
	panic("simd: 128-bit tier not compiled in")
}
