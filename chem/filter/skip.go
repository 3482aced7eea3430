// Package filter provides adaptors that drop elements from an Iter: by
// count, by stride, by slice window or by predicate.
package filter

import (
	"github.com/reid23/chemical/chem/core"
)

// Skip advances in past times elements immediately and returns an Iter over
// the rest. times must be > 0.
//
// The reverse side is built lazily on the first backward pull. It yields the
// reverse elements up to, but excluding, the last element skipped from the
// front, matched by identity (core.Mark) rather than by value, so duplicate
// values are handled correctly. When fewer than times elements existed the
// reverse side is empty.
func Skip[T any](in *core.Iter[T], times int) (*core.Iter[T], error) {
	if times <= 0 {
		return nil, core.Precondition("skip", "number of items to skip must be > 0, got %d", times)
	}

	b := in.Bounds().Skip(times)
	front := in.Front()

	var last core.Mark
	skipped := 0
	for skipped < times {
		_, m, err := front.Pull()
		if err != nil {
			if core.IsExhausted(err) {
				break
			}
			return nil, err
		}
		last = m
		skipped++
	}

	var back core.Cursor[T]
	if c, ok := in.Back(); ok {
		back = core.Lazy(func() (core.Cursor[T], error) {
			if skipped < times {
				return core.Exhausted[T](), nil
			}
			return &untilMark[T]{cur: c, stop: last}, nil
		})
	}
	return core.Derive(front, back, b), nil
}

// untilMark yields from cur until it meets the element identified by stop.
type untilMark[T any] struct {
	cur  core.Cursor[T]
	stop core.Mark
	done bool
}

func (u *untilMark[T]) Pull() (T, core.Mark, error) {
	var zero T
	if u.done {
		return zero, core.Mark{}, core.ErrExhausted
	}
	v, m, err := u.cur.Pull()
	if err != nil {
		if core.IsExhausted(err) {
			u.done = true
		}
		return zero, m, err
	}
	if m == u.stop {
		u.done = true
		return zero, core.Mark{}, core.ErrExhausted
	}
	return v, m, nil
}
