// Copyright (c) 2024 bitchess authors. MIT license, see LICENSE file.

//go:build !debug

// Package assert gives internal-invariant checks a single call site so they
// read as "this must hold, or it's a bug" rather than an ad-hoc panic. The
// release build (no "debug" tag) compiles Assert down to a no-op; the
// debug build (assert_debug.go) panics. Go does not eliminate the
// evaluation of a no-op call's arguments, so a hot-path caller that
// builds an expensive message string should still gate the call itself
// behind `if assert.DEBUG`.
package assert

// DEBUG is false in this build; callers that build an expensive message
// argument should gate the whole call behind `if assert.DEBUG`.
const DEBUG = false

// Assert is a no-op in the release build.
func Assert(cond bool, msg string, args ...interface{}) {}
