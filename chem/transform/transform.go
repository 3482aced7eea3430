// Package transform provides element-wise adaptors that keep the shape of a
// sequence: indexing, side effects, running accumulation and unpacking.
package transform

import (
	"github.com/reid23/chemical/chem/core"
)

// Enumerate pairs every element with its index, starting at 0.
//
// The reverse side numbers the reversed sequence from 0 as well, so reversing
// an enumerated Iter does not reproduce the forward indexes.
func Enumerate[T any](in *core.Iter[T]) *core.Iter[core.Tuple[int, T]] {
	var back core.Cursor[core.Tuple[int, T]]
	if c, ok := in.Back(); ok {
		back = &enumerateCursor[T]{cur: c}
	}
	return core.Derive[core.Tuple[int, T]](&enumerateCursor[T]{cur: in.Front()}, back, in.Bounds())
}

type enumerateCursor[T any] struct {
	cur core.Cursor[T]
	i   int
}

func (c *enumerateCursor[T]) Pull() (core.Tuple[int, T], core.Mark, error) {
	v, m, err := c.cur.Pull()
	if err != nil {
		return core.Tuple[int, T]{}, m, err
	}
	t := core.T2(c.i, v)
	c.i++
	return t, m, nil
}

// Inspect calls fn with every element as it passes through, on either side.
// Elements are not changed.
func Inspect[T any](in *core.Iter[T], fn func(T)) *core.Iter[T] {
	return core.Map(in, func(v T) T {
		fn(v)
		return v
	})
}

// ForEach calls fn on every element as it is pulled, on either side, and
// yields fn's results. Nothing runs until the returned Iter is drained; use
// core.Each to run a closure eagerly. Bounds are unchanged.
func ForEach[T, R any](in *core.Iter[T], fn func(T) R) *core.Iter[R] {
	return core.Map(in, fn)
}

// Scan yields the running accumulation of fn over in, starting from seed.
// The seed itself is not yielded: Scan(0, add) over 1, 2, 3 yields 1, 3, 6.
//
// The reverse side accumulates independently, from seed, over the reversed
// sequence.
func Scan[T, R any](in *core.Iter[T], seed R, fn func(acc R, item T) R) *core.Iter[R] {
	var back core.Cursor[R]
	if c, ok := in.Back(); ok {
		back = &scanCursor[T, R]{cur: c, acc: seed, fn: fn}
	}
	return core.Derive[R](&scanCursor[T, R]{cur: in.Front(), acc: seed, fn: fn}, back, in.Bounds())
}

type scanCursor[T, R any] struct {
	cur core.Cursor[T]
	acc R
	fn  func(R, T) R
}

func (c *scanCursor[T, R]) Pull() (R, core.Mark, error) {
	v, m, err := c.cur.Pull()
	if err != nil {
		var zero R
		return zero, m, err
	}
	c.acc = c.fn(c.acc, v)
	return c.acc, m, nil
}

// StarMap applies fn to the unpacked fields of every pair, typically the
// output of combine.Zip.
func StarMap[A, B, C any](in *core.Iter[core.Tuple[A, B]], fn func(A, B) C) *core.Iter[C] {
	return core.Map(in, func(t core.Tuple[A, B]) C { return fn(t.Unpack()) })
}
