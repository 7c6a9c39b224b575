// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package must_test

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/grailbio/simdcopy/must"
)

// TestDepth verifies that the depth passed to Func locates the caller of the
// must function.
func TestDepth(t *testing.T) {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("could not determine current file")
	}
	old := must.Func
	defer func() { must.Func = old }()
	must.Func = func(depth int, v ...interface{}) {
		_, file, _, ok := runtime.Caller(depth)
		if !ok {
			t.Fatal("could not determine caller of Func")
		}
		if file != thisFile {
			t.Errorf("caller at depth %d is '%s'; should be '%s'", depth, file, thisFile)
		}
	}
	must.True(false)
	must.Truef(false, "")
	must.Nil(struct{}{})
	must.Nilf(struct{}{}, "")
}

func TestDefaultPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "tier 512-bit: unavailable" {
			t.Errorf("recovered %v", r)
		}
	}()
	must.Truef(false, "tier %s: %s", "512-bit", "unavailable")
}

func Example() {
	old := must.Func
	defer func() { must.Func = old }()
	must.Func = func(depth int, v ...interface{}) {
		fmt.Print(v...)
		fmt.Print("\n")
	}

	must.Nil(nil)
	must.Nil(errors.New("short buffer"), "copying block 3")
	must.True(true, "never printed")
	must.True(false)
	must.Truef(false, "copied %d of %d bytes", 16, 20)

	// Output:
	// copying block 3: short buffer
	// must: assertion failed
	// copied 16 of 20 bytes
}
