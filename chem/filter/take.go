package filter

import (
	"github.com/reid23/chemical/chem/core"
)

// Take yields at most n elements. The reverse side yields at most n elements
// from the back. n must be >= 0; Take(in, 0) is empty.
func Take[T any](in *core.Iter[T], n int) (*core.Iter[T], error) {
	if n < 0 {
		return nil, core.Precondition("take", "count must be >= 0, got %d", n)
	}
	var back core.Cursor[T]
	if c, ok := in.Back(); ok {
		back = &takeCursor[T]{cur: c, left: n}
	}
	return core.Derive[T](&takeCursor[T]{cur: in.Front(), left: n}, back, in.Bounds().Take(n)), nil
}

type takeCursor[T any] struct {
	cur  core.Cursor[T]
	left int
}

func (c *takeCursor[T]) Pull() (T, core.Mark, error) {
	if c.left <= 0 {
		var zero T
		return zero, core.Mark{}, core.ErrExhausted
	}
	v, m, err := c.cur.Pull()
	if err != nil {
		return v, m, err
	}
	c.left--
	return v, m, nil
}

// NoStop passed as the stop argument of Islice means "until the end".
const NoStop = -1

// Islice yields the elements at positions start, start+step, ... below stop,
// like a slice expression evaluated lazily. Pass NoStop to run to the end.
// start must be >= 0 and step >= 1. The reverse side applies the same slice
// to the reverse cursor.
func Islice[T any](in *core.Iter[T], start, stop, step int) (*core.Iter[T], error) {
	switch {
	case start < 0:
		return nil, core.Precondition("islice", "start must be >= 0, got %d", start)
	case step < 1:
		return nil, core.Precondition("islice", "step must be >= 1, got %d", step)
	case stop < 0 && stop != NoStop:
		return nil, core.Precondition("islice", "stop must be >= 0 or NoStop, got %d", stop)
	}
	mk := func(c core.Cursor[T]) core.Cursor[T] {
		return &sliceCursor[T]{cur: c, next: start, stop: stop, step: step}
	}
	var back core.Cursor[T]
	if c, ok := in.Back(); ok {
		back = mk(c)
	}
	return core.Derive(mk(in.Front()), back, in.Bounds().Filtered()), nil
}

type sliceCursor[T any] struct {
	cur              core.Cursor[T]
	pos              int // index of the next element cur will produce
	next, stop, step int // index of the next element to yield
	done             bool
}

func (c *sliceCursor[T]) Pull() (T, core.Mark, error) {
	var zero T
	if c.done || (c.stop != NoStop && c.next >= c.stop) {
		c.done = true
		return zero, core.Mark{}, core.ErrExhausted
	}
	for {
		v, m, err := c.cur.Pull()
		if err != nil {
			if core.IsExhausted(err) {
				c.done = true
			}
			return zero, m, err
		}
		i := c.pos
		c.pos++
		if i == c.next {
			c.next += c.step
			return v, m, nil
		}
	}
}
