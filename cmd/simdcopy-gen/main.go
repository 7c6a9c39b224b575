// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command simdcopy-gen generates fully unrolled copy functions for sizes
// which are known at compile time.
//
// For every requested (tier, size) pair it writes an assembly function which
// copies size/B blocks with straight-line vector loads and stores, followed
// by a fixed sequence of 8/4/2/1-byte scalar moves when size%B != 0, plus an
// exported Go wrapper taking *[size]byte arguments.  Typical use, from a
// go:generate directive in the target package:
//
//	simdcopy-gen -out sized_amd64.s -stubs sized_amd64.go -pkg sized \
//	    -wrappers sized.go -fallback sized_other.go -sizes 20,64,100,1024
//
// The assembly is produced with github.com/mmcloughlin/avo, which also
// provides the -out, -stubs and -pkg flags.  Pass -v to log each generated
// function.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/mmcloughlin/avo/build"
	"github.com/mmcloughlin/avo/printer"
	"github.com/pkg/errors"

	"github.com/grailbio/simdcopy/log"
	"github.com/grailbio/simdcopy/must"
)

// avo registers -out, -stubs, -pkg and -log on flag.CommandLine as soon as
// its build package is imported, so this command keeps its own set.
var (
	flags        = flag.NewFlagSet("simdcopy-gen", flag.ExitOnError)
	avoFlags     = build.NewFlags(flags)
	sizesFlag    = flags.String("sizes", "", "comma-separated byte counts to generate")
	tiersFlag    = flags.String("tiers", "128,256,512", "comma-separated tier widths to generate")
	wrappersFlag = flags.String("wrappers", "", "path of the generated Go wrappers")
	fallbackFlag = flags.String("fallback", "", "path of the generated non-amd64 fallback")
	verboseFlag  = flags.Bool("v", false, "log each generated function")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("simdcopy-gen: ")
	_ = flags.Parse(os.Args[1:])
	if *verboseFlag {
		log.SetLevel(log.Debug)
	}
	ps, err := parseFlags()
	if err != nil {
		log.Fatal(err)
	}

	ctx := build.NewContext()
	emitAll(ctx, ps)
	for _, p := range ps {
		log.Debug.Printf("%s: %d blocks, tail %v", p.AsmName(), p.Blocks, p.Tail)
	}
	if status := build.Main(avoFlags.Config(), ctx); status != 0 {
		os.Exit(status)
	}

	data := wrapperData{
		GeneratedBy: printer.NewGoRunConfig().GeneratedBy(),
		Pkg:         flags.Lookup("pkg").Value.String(),
		Plans:       ps,
	}
	if data.Pkg == "" {
		// Same default as avo: the current directory's name.
		wd, err := os.Getwd()
		must.Nilf(err, "getwd")
		data.Pkg = filepath.Base(wd)
	}
	if err := writeFile(*wrappersFlag, func(f *os.File) error { return writeGo(f, wrappersTmpl, data) }); err != nil {
		log.Fatal(err)
	}
	if err := writeFile(*fallbackFlag, func(f *os.File) error { return writeGo(f, fallbackTmpl, data) }); err != nil {
		log.Fatal(err)
	}
}

func parseFlags() ([]plan, error) {
	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		return nil, errors.Wrap(err, "-sizes")
	}
	tiers, err := parseTiers(*tiersFlag)
	if err != nil {
		return nil, errors.Wrap(err, "-tiers")
	}
	if *wrappersFlag == "" || *fallbackFlag == "" {
		return nil, errors.New("-wrappers and -fallback are required")
	}
	return plans(tiers, sizes), nil
}

func writeFile(path string, write func(*os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := write(f); err != nil {
		return errors.Wrap(err, path)
	}
	log.Printf("wrote %s", path)
	return nil
}
