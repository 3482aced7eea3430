package aggregate

import (
	"github.com/reid23/chemical/chem/core"
)

// All reports whether pred holds for every element. It stops at the first
// element that fails; an empty Iter satisfies All.
func All[T any](in *core.Iter[T], pred func(T) bool) (bool, error) {
	ok := true
	err := core.Drain(in, func(v T) bool {
		ok = pred(v)
		return ok
	})
	return ok, err
}

// Any reports whether pred holds for at least one element, stopping at the
// first match.
func Any[T any](in *core.Iter[T], pred func(T) bool) (bool, error) {
	found := false
	err := core.Drain(in, func(v T) bool {
		found = pred(v)
		return !found
	})
	return found, err
}

// None reports whether pred holds for no element.
func None[T any](in *core.Iter[T], pred func(T) bool) (bool, error) {
	found, err := Any(in, pred)
	return !found, err
}
