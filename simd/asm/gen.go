// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command asm generates the block copy kernels in ../kernel_amd64.s.
package main

//go:generate go run gen.go -out ../kernel_amd64.s -stubs ../kernel_amd64.go -pkg simd

import (
	"flag"
	"fmt"
	"os"

	"github.com/mmcloughlin/avo/build"
	"github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

// lane describes one vector width: how to allocate a register of that width
// and which unaligned move instruction to use.
type lane struct {
	bytes     int
	isa       string
	vec       func(*build.Context) reg.VecVirtual
	move      func(ctx *build.Context, src, dst operand.Op)
	zeroUpper bool
}

var lanes = []lane{
	{
		bytes: 16,
		isa:   "SSE2",
		vec:   (*build.Context).XMM,
		move:  func(ctx *build.Context, src, dst operand.Op) { ctx.MOVOU(src, dst) },
	},
	{
		bytes:     32,
		isa:       "AVX2",
		vec:       (*build.Context).YMM,
		move:      func(ctx *build.Context, src, dst operand.Op) { ctx.VMOVDQU(src, dst) },
		zeroUpper: true,
	},
	{
		bytes:     64,
		isa:       "AVX-512",
		vec:       (*build.Context).ZMM,
		move:      func(ctx *build.Context, src, dst operand.Op) { ctx.VMOVDQU64(src, dst) },
		zeroUpper: true,
	},
}

// blockKernel emits copyBlocks<N>Asm, which copies nBlock blocks in ascending
// order with one unaligned load and one unaligned store per block.
func blockKernel(ctx *build.Context, l lane) {
	name := fmt.Sprintf("copyBlocks%dAsm", l.bytes)
	ctx.Function(name)
	ctx.Attributes(build.NOSPLIT)
	ctx.SignatureExpr("func(dst *byte, src *byte, nBlock int)")
	ctx.Doc(fmt.Sprintf("%s copies nBlock %d-byte blocks from src to dst with unaligned %s loads and stores.", name, l.bytes, l.isa))

	dst := ctx.Load(ctx.Param("dst"), ctx.GP64())
	src := ctx.Load(ctx.Param("src"), ctx.GP64())
	n := ctx.Load(ctx.Param("nBlock"), ctx.GP64())
	ctx.TESTQ(n, n)
	ctx.JLE(operand.LabelRef("done"))

	ctx.Label("loop")
	v := l.vec(ctx)
	l.move(ctx, operand.Mem{Base: src}, v)
	l.move(ctx, v, operand.Mem{Base: dst})
	ctx.ADDQ(operand.Imm(uint64(l.bytes)), src)
	ctx.ADDQ(operand.Imm(uint64(l.bytes)), dst)
	ctx.DECQ(n)
	ctx.JNZ(operand.LabelRef("loop"))
	if l.zeroUpper {
		ctx.VZEROUPPER()
	}

	ctx.Label("done")
	ctx.RET()
}

// kernels emits every lane's kernel into ctx.
func kernels(ctx *build.Context) {
	ctx.ConstraintExpr("!noasm")
	for _, l := range lanes {
		blockKernel(ctx, l)
	}
}

func main() {
	// avo registers its flags on flag.CommandLine when imported; a private
	// set keeps this command's Config separate from that global state.
	fs := flag.NewFlagSet("asm", flag.ExitOnError)
	flags := build.NewFlags(fs)
	_ = fs.Parse(os.Args[1:])
	ctx := build.NewContext()
	kernels(ctx)
	os.Exit(build.Main(flags.Config(), ctx))
}
