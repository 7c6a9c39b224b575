// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !noasm

package simd

// *** the following function is defined in kernel_arm64.s

// copyBlocks16Asm copies nBlock 16-byte blocks from src to dst with NEON
// loads and stores.
//
//go:noescape
func copyBlocks16Asm(dst, src *byte, nBlock int)
