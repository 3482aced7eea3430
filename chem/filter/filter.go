package filter

import (
	"github.com/reid23/chemical/chem/core"
)

// Filter keeps the elements for which keep returns true, on both sides.
func Filter[T any](in *core.Iter[T], keep func(T) bool) *core.Iter[T] {
	var back core.Cursor[T]
	if c, ok := in.Back(); ok {
		back = &filterCursor[T]{cur: c, keep: keep}
	}
	return core.Derive[T](&filterCursor[T]{cur: in.Front(), keep: keep}, back, in.Bounds().Filtered())
}

type filterCursor[T any] struct {
	cur  core.Cursor[T]
	keep func(T) bool
}

func (f *filterCursor[T]) Pull() (T, core.Mark, error) {
	for {
		v, m, err := f.cur.Pull()
		if err != nil || f.keep(v) {
			return v, m, err
		}
	}
}

// TakeWhile yields elements while keep returns true. The first element that
// fails is consumed and ends the sequence.
func TakeWhile[T any](in *core.Iter[T], keep func(T) bool) *core.Iter[T] {
	var back core.Cursor[T]
	if c, ok := in.Back(); ok {
		back = &takeWhileCursor[T]{cur: c, keep: keep}
	}
	return core.Derive[T](&takeWhileCursor[T]{cur: in.Front(), keep: keep}, back, in.Bounds().Filtered())
}

type takeWhileCursor[T any] struct {
	cur  core.Cursor[T]
	keep func(T) bool
	done bool
}

func (w *takeWhileCursor[T]) Pull() (T, core.Mark, error) {
	var zero T
	if w.done {
		return zero, core.Mark{}, core.ErrExhausted
	}
	v, m, err := w.cur.Pull()
	if err != nil {
		return v, m, err
	}
	if !w.keep(v) {
		w.done = true
		return zero, core.Mark{}, core.ErrExhausted
	}
	return v, m, nil
}

// SkipWhile drops elements while drop returns true, then yields the first
// element that fails and everything after it.
func SkipWhile[T any](in *core.Iter[T], drop func(T) bool) *core.Iter[T] {
	var back core.Cursor[T]
	if c, ok := in.Back(); ok {
		back = &skipWhileCursor[T]{cur: c, drop: drop}
	}
	return core.Derive[T](&skipWhileCursor[T]{cur: in.Front(), drop: drop}, back, in.Bounds().Filtered())
}

type skipWhileCursor[T any] struct {
	cur    core.Cursor[T]
	drop   func(T) bool
	passed bool
}

func (w *skipWhileCursor[T]) Pull() (T, core.Mark, error) {
	for {
		v, m, err := w.cur.Pull()
		if err != nil || w.passed {
			return v, m, err
		}
		if !w.drop(v) {
			w.passed = true
			return v, m, nil
		}
	}
}
