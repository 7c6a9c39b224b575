// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package must expresses fatal assertions for the simdcopy commands, where
// the only sensible reaction to a broken invariant, such as a timed copy
// reporting Unavailable for a tier that claims to be compiled in, is to stop.
// It should rarely be used outside main packages and their drivers.
package must

import (
	"fmt"

	"github.com/grailbio/simdcopy/log"
)

// Func reports a failed assertion.  depth is the call depth of the caller
// of the must function.  The default logs at log.Error and panics.
var Func = func(depth int, v ...interface{}) {
	s := fmt.Sprint(v...)
	_ = log.Output(depth+1, log.Error, s)
	panic(s)
}

// Nil asserts that v, typically an error, is nil.  Otherwise it calls Func
// with the fmt.Sprint-formatted args, if any, followed by v.
func Nil(v interface{}, args ...interface{}) {
	if v == nil {
		return
	}
	if len(args) == 0 {
		Func(2, v)
		return
	}
	Func(2, fmt.Sprint(args...), ": ", v)
}

// Nilf is Nil with a fmt.Sprintf-formatted message.
func Nilf(v interface{}, format string, args ...interface{}) {
	if v == nil {
		return
	}
	Func(2, fmt.Sprintf(format, args...), ": ", v)
}

// True asserts b.  Otherwise it calls Func with the fmt.Sprint-formatted v.
func True(b bool, v ...interface{}) {
	if b {
		return
	}
	if len(v) == 0 {
		Func(2, "must: assertion failed")
		return
	}
	Func(2, v...)
}

// Truef is True with a fmt.Sprintf-formatted message.
func Truef(b bool, format string, v ...interface{}) {
	if b {
		return
	}
	Func(2, fmt.Sprintf(format, v...))
}
