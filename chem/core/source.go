package core

import (
	"iter"
)

// sliceCursor walks a slice in one direction. Both directions over the same
// slice share a source id, so element i carries the same Mark either way.
type sliceCursor[T any] struct {
	items   []T
	src     uint64
	next    int
	reverse bool
}

func (c *sliceCursor[T]) Pull() (T, Mark, error) {
	if c.next >= len(c.items) {
		var zero T
		return zero, Mark{}, ErrExhausted
	}
	i := c.next
	if c.reverse {
		i = len(c.items) - 1 - c.next
	}
	c.next++
	return c.items[i], Mark{src: c.src, pos: uint64(i)}, nil
}

// FromSlice creates an Iter over the elements of a slice. The slice is not
// copied; it must not be modified while the Iter is in use.
func FromSlice[T any](items []T) *Iter[T] {
	src := NewSourceID()
	return New[T](
		&sliceCursor[T]{items: items, src: src},
		WithReverse[T](&sliceCursor[T]{items: items, src: src, reverse: true}),
		WithBounds[T](Exact(len(items))),
	)
}

// FromString creates an Iter over the runes of s.
func FromString(s string) *Iter[rune] {
	return FromSlice([]rune(s))
}

// Of creates an Iter over the given values.
func Of[T any](values ...T) *Iter[T] {
	return FromSlice(values)
}

// Empty returns an Iter with no elements.
func Empty[T any]() *Iter[T] {
	return New(Exhausted[T](), WithReverse(Exhausted[T]()), WithBounds[T](Exact(0)))
}

// Once returns an Iter with exactly one element.
func Once[T any](value T) *Iter[T] {
	return FromSlice([]T{value})
}

// rangeCursor yields start, start+step, ... for n elements, or the same
// elements last to first when reverse is set.
type rangeCursor struct {
	start, step, n int
	src            uint64
	next           int
	reverse        bool
}

func (c *rangeCursor) Pull() (int, Mark, error) {
	if c.next >= c.n {
		return 0, Mark{}, ErrExhausted
	}
	i := c.next
	if c.reverse {
		i = c.n - 1 - c.next
	}
	c.next++
	return c.start + i*c.step, Mark{src: c.src, pos: uint64(i)}, nil
}

// Range creates an Iter of the integers in [start, end).
func Range(start, end int) *Iter[int] {
	return RangeStep(start, end, 1)
}

// RangeStep creates an Iter that emits integers from start to end with the given step.
// If step is positive, emits start, start+step, start+2*step, ... (while < end)
// If step is negative, emits start, start+step, start+2*step, ... (while > end)
// If step is zero or the direction is invalid, the Iter is empty.
func RangeStep(start, end, step int) *Iter[int] {
	n := 0
	switch {
	case step > 0 && start < end:
		n = ceilDiv(end-start, step)
	case step < 0 && start > end:
		n = ceilDiv(start-end, -step)
	}
	src := NewSourceID()
	return New[int](
		&rangeCursor{start: start, step: step, n: n, src: src},
		WithReverse[int](&rangeCursor{start: start, step: step, n: n, src: src, reverse: true}),
		WithBounds[int](Exact(n)),
	)
}

// FromFunc creates a one-directional Iter that calls fn for each element.
// fn returns ErrExhausted to end the sequence; any other error is passed on
// to the caller.
func FromFunc[T any](fn func() (T, error)) *Iter[T] {
	return New(Puller(fn))
}

// FromCursor wraps an arbitrary Cursor into a one-directional Iter.
func FromCursor[T any](cur Cursor[T]) *Iter[T] {
	return New(cur)
}

// FromSeq creates a one-directional Iter from a Go iterator. The iterator is
// driven with iter.Pull and released once it is exhausted.
func FromSeq[T any](seq iter.Seq[T]) *Iter[T] {
	var next func() (T, bool)
	var stop func()
	done := false
	return FromFunc(func() (T, error) {
		var zero T
		if done {
			return zero, ErrExhausted
		}
		if next == nil {
			next, stop = iter.Pull(seq)
		}
		v, ok := next()
		if !ok {
			done = true
			stop()
			return zero, ErrExhausted
		}
		return v, nil
	})
}

// Repeat creates an infinite one-directional Iter that always yields value.
func Repeat[T any](value T) *Iter[T] {
	return FromFunc(func() (T, error) { return value, nil })
}

// Counter creates an infinite one-directional Iter of start, start+step, ...
func Counter(start, step int) *Iter[int] {
	n := start
	return FromFunc(func() (int, error) {
		v := n
		n += step
		return v, nil
	})
}

// Iterate creates an infinite one-directional Iter of seed, fn(seed), fn(fn(seed)), ...
func Iterate[T any](seed T, fn func(T) T) *Iter[T] {
	current, started := seed, false
	return FromFunc(func() (T, error) {
		if started {
			current = fn(current)
		}
		started = true
		return current, nil
	})
}
