package testutils

import (
	"runtime/debug"
	"testing"
)

// Assert(condition) panics if condition is false; Assert(condition, err)
// panics with panic(err) instead.
func Assert(condition bool, err ...interface{}) {
	if len(err) > 1 {
		panic("modring / testutils: Assert can only handle 1 extra error argument")
	}
	if !condition {
		if len(err) == 0 {
			panic("modring / testutils: assertion failed")
		}
		panic(err[0])
	}
}

// FatalUnless fails the test with the given formatted message if condition is
// false, printing a stack trace first.
func FatalUnless(t *testing.T, condition bool, formatstring string, args ...any) {
	if !condition {
		debug.PrintStack()
		t.Fatalf(formatstring, args...)
	}
}
