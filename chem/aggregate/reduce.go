// Package aggregate provides terminals that reduce an Iter to a single value.
package aggregate

import (
	"cmp"
	"fmt"

	"github.com/reid23/chemical/chem/core"
)

// Numeric is a constraint for numeric types that support arithmetic operations.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Fold drains in, combining every element into an accumulator that starts
// at initial. An empty Iter yields initial.
func Fold[T, R any](in *core.Iter[T], initial R, folder func(acc R, item T) R) (R, error) {
	acc := initial
	if err := core.Drain(in, func(v T) bool {
		acc = folder(acc, v)
		return true
	}); err != nil {
		return acc, err
	}
	return acc, nil
}

// Reduce is Fold with the first element as the initial accumulator.
// An empty Iter yields an error wrapping core.ErrExhausted.
func Reduce[T any](in *core.Iter[T], reducer func(acc, item T) T) (T, error) {
	acc, err := in.Next()
	if err != nil {
		if core.IsExhausted(err) {
			return acc, fmt.Errorf("reduce: %w", err)
		}
		return acc, err
	}
	return Fold(in, acc, reducer)
}

// Sum adds up the elements of in. An empty Iter sums to zero.
func Sum[T Numeric](in *core.Iter[T]) (T, error) {
	var zero T
	return Fold(in, zero, func(acc, v T) T { return acc + v })
}

// Max returns the largest element of in, the first one on ties.
func Max[T cmp.Ordered](in *core.Iter[T]) (T, error) {
	return best(in, "max", func(a, b T) bool { return b > a })
}

// Min returns the smallest element of in, the first one on ties.
func Min[T cmp.Ordered](in *core.Iter[T]) (T, error) {
	return best(in, "min", func(a, b T) bool { return b < a })
}

// MaxBy returns the element of in with the largest key.
func MaxBy[T any, K cmp.Ordered](in *core.Iter[T], key func(T) K) (T, error) {
	return best(in, "max", func(a, b T) bool { return key(b) > key(a) })
}

// MinBy returns the element of in with the smallest key.
func MinBy[T any, K cmp.Ordered](in *core.Iter[T], key func(T) K) (T, error) {
	return best(in, "min", func(a, b T) bool { return key(b) < key(a) })
}

// best keeps the current element unless better reports the candidate wins.
func best[T any](in *core.Iter[T], op string, better func(cur, cand T) bool) (T, error) {
	cur, err := in.Next()
	if err != nil {
		if core.IsExhausted(err) {
			return cur, fmt.Errorf("%s of empty sequence: %w", op, err)
		}
		return cur, err
	}
	err = core.Drain(in, func(v T) bool {
		if better(cur, v) {
			cur = v
		}
		return true
	})
	return cur, err
}
