// Package combine joins Iters together or repeats and unnests them: Chain,
// Zip, Cycle and Flatten.
package combine

import (
	"github.com/reid23/chemical/chem/core"
)

// Chain yields every element of a and then every element of b.
//
// Reversing a chain reverses each half and swaps their order, so the reverse
// side exists only when both inputs are reversible.
func Chain[T any](a, b *core.Iter[T]) *core.Iter[T] {
	var back core.Cursor[T]
	ab, aok := a.Back()
	bb, bok := b.Back()
	if aok && bok {
		back = &chainCursor[T]{parts: []core.Cursor[T]{bb, ab}}
	}
	front := &chainCursor[T]{parts: []core.Cursor[T]{a.Front(), b.Front()}}
	return core.Derive[T](front, back, a.Bounds().Chain(b.Bounds()))
}

// Concat chains any number of Iters in order.
func Concat[T any](its ...*core.Iter[T]) *core.Iter[T] {
	if len(its) == 0 {
		return core.Empty[T]()
	}
	out := its[0]
	for _, it := range its[1:] {
		out = Chain(out, it)
	}
	return out
}

type chainCursor[T any] struct {
	parts []core.Cursor[T]
}

func (c *chainCursor[T]) Pull() (T, core.Mark, error) {
	for len(c.parts) > 0 {
		v, m, err := c.parts[0].Pull()
		if err == nil || !core.IsExhausted(err) {
			return v, m, err
		}
		c.parts = c.parts[1:]
	}
	var zero T
	return zero, core.Mark{}, core.ErrExhausted
}
