// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

//go:build debug

package assert

import "fmt"

// DEBUG is true in this build.
const DEBUG = true

// Assert panics with the formatted message if cond is false. Used for
// internal invariants that must abort rather than be surfaced as errors:
// an empty history pop, an unreachable piece index, a magic lookup miss.
func Assert(cond bool, msg string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(msg, args...))
	}
}
