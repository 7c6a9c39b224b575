// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/mmcloughlin/avo/build"
	"github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"

	"github.com/grailbio/simdcopy/simd"
)

// vecMove loads or stores one block of tier t.
func vecMove(ctx *build.Context, t simd.Tier, src, dst operand.Op) {
	switch t {
	case simd.Tier128:
		ctx.MOVOU(src, dst)
	case simd.Tier256:
		ctx.VMOVDQU(src, dst)
	case simd.Tier512:
		ctx.VMOVDQU64(src, dst)
	}
}

func vecReg(ctx *build.Context, t simd.Tier) reg.VecVirtual {
	switch t {
	case simd.Tier256:
		return ctx.YMM()
	case simd.Tier512:
		return ctx.ZMM()
	}
	return ctx.XMM()
}

// emit writes the fully unrolled assembly for p into ctx: p.Blocks vector
// load/store pairs at ascending offsets, then the scalar tail.
func emit(ctx *build.Context, p plan) {
	ctx.Function(p.AsmName())
	ctx.Attributes(build.NOSPLIT)
	ctx.SignatureExpr("func(dst *byte, src *byte)")
	ctx.Doc(fmt.Sprintf("%s copies %d bytes from src to dst.", p.AsmName(), p.Size))

	dst := ctx.Load(ctx.Param("dst"), ctx.GP64())
	src := ctx.Load(ctx.Param("src"), ctx.GP64())
	b := p.Tier.BytesPerBlock()
	for i := 0; i < p.Blocks; i++ {
		v := vecReg(ctx, p.Tier)
		vecMove(ctx, p.Tier, operand.Mem{Base: src, Disp: i * b}, v)
		vecMove(ctx, p.Tier, v, operand.Mem{Base: dst, Disp: i * b})
	}
	off := p.Blocks * b
	for _, w := range p.Tail {
		r := ctx.GP64()
		s, d := operand.Mem{Base: src, Disp: off}, operand.Mem{Base: dst, Disp: off}
		switch w {
		case 8:
			ctx.MOVQ(s, r)
			ctx.MOVQ(r, d)
		case 4:
			ctx.MOVL(s, r.As32())
			ctx.MOVL(r.As32(), d)
		case 2:
			ctx.MOVW(s, r.As16())
			ctx.MOVW(r.As16(), d)
		case 1:
			ctx.MOVB(s, r.As8())
			ctx.MOVB(r.As8(), d)
		}
		off += w
	}
	if p.Blocks > 0 && p.Tier != simd.Tier128 {
		ctx.VZEROUPPER()
	}
	ctx.RET()
}

// emitAll writes the build constraint and every plan into ctx.
func emitAll(ctx *build.Context, ps []plan) {
	ctx.ConstraintExpr("!noasm")
	for _, p := range ps {
		emit(ctx, p)
	}
}
