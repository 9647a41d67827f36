package testutils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// CheckPanic runs fun(args...), captures any panic and reports whether one
// occurred. The panic value itself is swallowed, with one exception: panics
// whose message starts with "reflect" are re-raised, since those indicate a
// malformed call to CheckPanic itself (wrong number or type of args) rather
// than a panic of the function under test.
//
// This function is only used in testing.
func CheckPanic(fun interface{}, args ...interface{}) (didPanic bool) {
	didPanic = true
	funValue := reflect.ValueOf(fun)
	if funValue.Kind() != reflect.Func {
		panic("modring / testutils: CheckPanic's first argument must be a function")
	}
	callArgs := make([]reflect.Value, len(args))
	for i, arg := range args {
		callArgs[i] = reflect.ValueOf(arg)
	}
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		var msg string
		switch rec := rec.(type) {
		case string:
			msg = rec
		case error:
			msg = rec.Error()
		case fmt.Stringer:
			msg = rec.String()
		default:
			return
		}
		if strings.HasPrefix(msg, "reflect") {
			panic(rec)
		}
	}()
	funValue.Call(callArgs)
	didPanic = false
	return
}

// CheckPanicIs runs fun(args...) and reports whether it panicked with a value
// that is, or wraps, the given target error.
func CheckPanicIs(fun interface{}, target error, args ...interface{}) (matched bool) {
	funValue := reflect.ValueOf(fun)
	if funValue.Kind() != reflect.Func {
		panic("modring / testutils: CheckPanicIs's first argument must be a function")
	}
	callArgs := make([]reflect.Value, len(args))
	for i, arg := range args {
		callArgs[i] = reflect.ValueOf(arg)
	}
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		err, ok := rec.(error)
		matched = ok && errors.Is(err, target)
	}()
	funValue.Call(callArgs)
	return false
}
