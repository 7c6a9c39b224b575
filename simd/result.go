// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

import "fmt"

// Result is the outcome of a copy: either Unavailable, when the requested
// tier was not compiled in and the destination was not written, or
// Copied(n).  The zero Result is Unavailable.
type Result struct {
	n  int
	ok bool
}

// Unavailable is returned by every entry point of a tier which was not
// compiled in.
var Unavailable = Result{}

// Copied returns a successful Result covering n bytes.
func Copied(n int) Result {
	return Result{n: n, ok: true}
}

// OK returns whether the copy was performed.  A zero-length copy through an
// available tier is OK.
func (r Result) OK() bool {
	return r.ok
}

// Len returns the number of bytes copied; it is 0 for Unavailable.
func (r Result) Len() int {
	return r.n
}

func (r Result) String() string {
	if !r.ok {
		return "unavailable"
	}
	return fmt.Sprintf("copied(%d)", r.n)
}
