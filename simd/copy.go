// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

import (
	"fmt"
	"unsafe"
)

// Split returns the number of whole t-blocks in nByte bytes and the number of
// bytes left over.  nBlock*t.BytesPerBlock() + nRem == nByte always holds for
// nByte >= 0.
func Split(t Tier, nByte int) (nBlock, nRem int) {
	return nByte >> t.Log2BytesPerBlock(), nByte & (t.BytesPerBlock() - 1)
}

// copyRemainder copies the nRem < block-size bytes that follow the last whole
// block.  It does not touch memory when nRem == 0.
func copyRemainder(dst, src unsafe.Pointer, nRem int) {
	if nRem == 0 {
		return
	}
	copy(unsafe.Slice((*byte)(dst), nRem), unsafe.Slice((*byte)(src), nRem))
}

// CopyRaw128 copies nByte bytes from src to dst, 16 bytes at a time, and
// finishes with a scalar copy of the last nByte%16 bytes.  It returns
// Unavailable without writing anything if the 128-bit tier was not compiled
// in.
//
// WARNING: nothing is validated.  Both regions must be at least nByte bytes
// long and must not overlap, and nByte must be nonnegative.
func CopyRaw128(dst, src unsafe.Pointer, nByte int) Result {
	if !Has128 {
		return Unavailable
	}
	nBlock := nByte >> Log2BytesPerBlock128
	copyBlocks128(dst, src, nBlock)
	off := uintptr(nBlock) << Log2BytesPerBlock128
	copyRemainder(unsafe.Add(dst, off), unsafe.Add(src, off), nByte&(BytesPerBlock128-1))
	return Copied(nByte)
}

// CopyRaw256 is the 256-bit analogue of CopyRaw128.
func CopyRaw256(dst, src unsafe.Pointer, nByte int) Result {
	if !Has256 {
		return Unavailable
	}
	nBlock := nByte >> Log2BytesPerBlock256
	copyBlocks256(dst, src, nBlock)
	off := uintptr(nBlock) << Log2BytesPerBlock256
	copyRemainder(unsafe.Add(dst, off), unsafe.Add(src, off), nByte&(BytesPerBlock256-1))
	return Copied(nByte)
}

// CopyRaw512 is the 512-bit analogue of CopyRaw128.
func CopyRaw512(dst, src unsafe.Pointer, nByte int) Result {
	if !Has512 {
		return Unavailable
	}
	nBlock := nByte >> Log2BytesPerBlock512
	copyBlocks512(dst, src, nBlock)
	off := uintptr(nBlock) << Log2BytesPerBlock512
	copyRemainder(unsafe.Add(dst, off), unsafe.Add(src, off), nByte&(BytesPerBlock512-1))
	return Copied(nByte)
}

// CopyAlignedRaw128 copies nBlock 16-byte blocks from src to dst, and nothing
// else: there is no remainder handling.  It returns Unavailable without
// writing anything if the 128-bit tier was not compiled in.
//
// WARNING: nothing is validated.  Both regions must be at least 16*nBlock
// bytes long and must not overlap.
func CopyAlignedRaw128(dst, src unsafe.Pointer, nBlock int) Result {
	if !Has128 {
		return Unavailable
	}
	copyBlocks128(dst, src, nBlock)
	return Copied(nBlock << Log2BytesPerBlock128)
}

// CopyAlignedRaw256 is the 256-bit analogue of CopyAlignedRaw128.
func CopyAlignedRaw256(dst, src unsafe.Pointer, nBlock int) Result {
	if !Has256 {
		return Unavailable
	}
	copyBlocks256(dst, src, nBlock)
	return Copied(nBlock << Log2BytesPerBlock256)
}

// CopyAlignedRaw512 is the 512-bit analogue of CopyAlignedRaw128.
func CopyAlignedRaw512(dst, src unsafe.Pointer, nBlock int) Result {
	if !Has512 {
		return Unavailable
	}
	copyBlocks512(dst, src, nBlock)
	return Copied(nBlock << Log2BytesPerBlock512)
}

// Copy128 copies src into the beginning of dst with 128-bit vectors and
// returns Copied(len(src)), or returns Unavailable and leaves dst alone if
// the 128-bit tier was not compiled in.  It panics if dst is shorter than
// src.  The slices must not overlap.
func Copy128(dst, src []byte) Result {
	if !Has128 {
		return Unavailable
	}
	checkCopy("Copy128", dst, src)
	return CopyRaw128(unsafe.Pointer(unsafe.SliceData(dst)), unsafe.Pointer(unsafe.SliceData(src)), len(src))
}

// Copy256 is the 256-bit analogue of Copy128.
func Copy256(dst, src []byte) Result {
	if !Has256 {
		return Unavailable
	}
	checkCopy("Copy256", dst, src)
	return CopyRaw256(unsafe.Pointer(unsafe.SliceData(dst)), unsafe.Pointer(unsafe.SliceData(src)), len(src))
}

// Copy512 is the 512-bit analogue of Copy128.
func Copy512(dst, src []byte) Result {
	if !Has512 {
		return Unavailable
	}
	checkCopy("Copy512", dst, src)
	return CopyRaw512(unsafe.Pointer(unsafe.SliceData(dst)), unsafe.Pointer(unsafe.SliceData(src)), len(src))
}

// CopyAligned128 copies the first 16*nBlock bytes of src into dst.  It panics
// if nBlock is negative or either slice is shorter than 16*nBlock bytes, and
// returns Unavailable without writing if the 128-bit tier was not compiled
// in.
func CopyAligned128(dst, src []byte, nBlock int) Result {
	if !Has128 {
		return Unavailable
	}
	checkCopyAligned("CopyAligned128", dst, src, nBlock, BytesPerBlock128)
	return CopyAlignedRaw128(unsafe.Pointer(unsafe.SliceData(dst)), unsafe.Pointer(unsafe.SliceData(src)), nBlock)
}

// CopyAligned256 is the 256-bit analogue of CopyAligned128.
func CopyAligned256(dst, src []byte, nBlock int) Result {
	if !Has256 {
		return Unavailable
	}
	checkCopyAligned("CopyAligned256", dst, src, nBlock, BytesPerBlock256)
	return CopyAlignedRaw256(unsafe.Pointer(unsafe.SliceData(dst)), unsafe.Pointer(unsafe.SliceData(src)), nBlock)
}

// CopyAligned512 is the 512-bit analogue of CopyAligned128.
func CopyAligned512(dst, src []byte, nBlock int) Result {
	if !Has512 {
		return Unavailable
	}
	checkCopyAligned("CopyAligned512", dst, src, nBlock, BytesPerBlock512)
	return CopyAlignedRaw512(unsafe.Pointer(unsafe.SliceData(dst)), unsafe.Pointer(unsafe.SliceData(src)), nBlock)
}

func checkCopy(fn string, dst, src []byte) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("simd.%s: len(dst) = %d < len(src) = %d", fn, len(dst), len(src)))
	}
}

func checkCopyAligned(fn string, dst, src []byte, nBlock, bytesPerBlock int) {
	if nBlock < 0 {
		panic(fmt.Sprintf("simd.%s: negative block count %d", fn, nBlock))
	}
	nByte := nBlock * bytesPerBlock
	if len(dst) < nByte || len(src) < nByte {
		panic(fmt.Sprintf("simd.%s: %d blocks need %d bytes, have len(dst) = %d, len(src) = %d", fn, nBlock, nByte, len(dst), len(src)))
	}
}

// CopyRaw copies nByte bytes through tier t; see CopyRaw128.
func (t Tier) CopyRaw(dst, src unsafe.Pointer, nByte int) Result {
	switch t {
	case Tier128:
		return CopyRaw128(dst, src, nByte)
	case Tier256:
		return CopyRaw256(dst, src, nByte)
	case Tier512:
		return CopyRaw512(dst, src, nByte)
	}
	panic(fmt.Sprintf("simd: invalid tier %d", int(t)))
}

// CopyAlignedRaw copies nBlock whole blocks through tier t; see
// CopyAlignedRaw128.
func (t Tier) CopyAlignedRaw(dst, src unsafe.Pointer, nBlock int) Result {
	switch t {
	case Tier128:
		return CopyAlignedRaw128(dst, src, nBlock)
	case Tier256:
		return CopyAlignedRaw256(dst, src, nBlock)
	case Tier512:
		return CopyAlignedRaw512(dst, src, nBlock)
	}
	panic(fmt.Sprintf("simd: invalid tier %d", int(t)))
}

// Copy copies src into dst through tier t; see Copy128.
func (t Tier) Copy(dst, src []byte) Result {
	switch t {
	case Tier128:
		return Copy128(dst, src)
	case Tier256:
		return Copy256(dst, src)
	case Tier512:
		return Copy512(dst, src)
	}
	panic(fmt.Sprintf("simd: invalid tier %d", int(t)))
}

// CopyAligned copies nBlock whole blocks through tier t; see CopyAligned128.
func (t Tier) CopyAligned(dst, src []byte, nBlock int) Result {
	switch t {
	case Tier128:
		return CopyAligned128(dst, src, nBlock)
	case Tier256:
		return CopyAligned256(dst, src, nBlock)
	case Tier512:
		return CopyAligned512(dst, src, nBlock)
	}
	panic(fmt.Sprintf("simd: invalid tier %d", int(t)))
}

// CopyWidest copies src into dst through the widest compiled-in tier.  The
// choice is made at build time.  It returns Unavailable when no tier was
// compiled in.
func CopyWidest(dst, src []byte) Result {
	t, ok := Available.Widest()
	if !ok {
		return Unavailable
	}
	return t.Copy(dst, src)
}
