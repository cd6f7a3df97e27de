package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
)

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic. Errors stay
// errors, and runtime errors stay runtime errors, so they can still be
// inspected with errors.Is and errors.As after being rethrown.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		if err, isError := p.(error); isError {
			wrapped := fmt.Errorf("%w\n%s\nrethrown at", err, debug.Stack())
			var rerr runtime.Error
			if errors.As(err, &rerr) {
				return runtimeError{wrapped}
			}
			return wrapped
		}
		return fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
	}
	return nil
}

// PanicError turns a recovered panic value into an error.
func PanicError(p interface{}) error {
	if err, isError := p.(error); isError {
		return err
	}
	return fmt.Errorf("panic: %v", p)
}

// Concat appends parts in order. It panics if the result does not contain
// exactly n elements.
func Concat[R any](parts [][]R, n int) []R {
	result := make([]R, 0, n)
	for _, part := range parts {
		result = append(result, part...)
	}
	if len(result) != n {
		panic(fmt.Sprintf("invalid result length: %v, expected %v", len(result), n))
	}
	return result
}

// And combines bs with the && operator, with true as the default.
func And(bs []bool) bool {
	for _, b := range bs {
		if !b {
			return false
		}
	}
	return true
}

// Or combines bs with the || operator, with false as the default.
func Or(bs []bool) bool {
	for _, b := range bs {
		if b {
			return true
		}
	}
	return false
}
