// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/mmcloughlin/avo/build"
	"github.com/mmcloughlin/avo/pass"
	"github.com/mmcloughlin/avo/printer"
)

// shape keeps TEXT lines, labels and mnemonics; registers are avo's choice.
func shape(src []byte) []string {
	var out []string
	for _, line := range strings.Split(string(src), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if fields[0] == "TEXT" {
			out = append(out, strings.Join(fields, " "))
			continue
		}
		out = append(out, fields[0])
	}
	return out
}

func funcDecls(src []byte) []string {
	var out []string
	for _, line := range strings.Split(string(src), "\n") {
		if strings.HasPrefix(line, "func ") {
			out = append(out, line)
		}
	}
	return out
}

func TestKernels(t *testing.T) {
	ctx := build.NewContext()
	kernels(ctx)
	f, err := ctx.Result()
	assert.NoError(t, err)
	assert.NoError(t, pass.Compile.Execute(f))

	cfg := printer.Config{Name: "asm", Pkg: "simd"}
	asm, err := printer.NewGoAsm(cfg).Print(f)
	assert.NoError(t, err)
	stubs, err := printer.NewStubs(cfg).Print(f)
	assert.NoError(t, err)

	committedAsm, err := os.ReadFile("../kernel_amd64.s")
	assert.NoError(t, err)
	committedStubs, err := os.ReadFile("../kernel_amd64.go")
	assert.NoError(t, err)

	expect.EQ(t, shape(asm), shape(committedAsm))
	expect.EQ(t, funcDecls(stubs), funcDecls(committedStubs))
	expect.EQ(t, funcDecls(stubs), []string{
		"func copyBlocks16Asm(dst *byte, src *byte, nBlock int)",
		"func copyBlocks32Asm(dst *byte, src *byte, nBlock int)",
		"func copyBlocks64Asm(dst *byte, src *byte, nBlock int)",
	})
}
