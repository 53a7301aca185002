// Package safe runs computations that must not take the request down with them
package safe

import (
	"fmt"

	perr "genailab/internal/platform/errors"
)

// Do calls fn and converts a panic into a coded panic error
func Do[T any](op string, fn func() (T, error)) (out T, err error) {
	defer func() {
		if v := recover(); v != nil {
			var zero T
			out = zero
			err = perr.WithOp(perr.PanicErrf("%s: %v", op, v), op)
		}
	}()
	return fn()
}

// Value is Do for functions that cannot fail on their own
func Value[T any](op string, fn func() T) (T, error) {
	return Do(op, func() (T, error) { return fn(), nil })
}

// Message is the text put in a result's error field
func Message(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := perr.As(err); ok {
		return e.Message()
	}
	return fmt.Sprint(err)
}
