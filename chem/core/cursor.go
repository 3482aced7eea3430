package core

import "sync/atomic"

// Mark identifies an element by where it came from rather than by its value.
// Two cursors over the same source hand out the same Mark for the same
// element, whichever direction they walk. Equal values from different
// positions get different Marks.
type Mark struct {
	src uint64
	pos uint64
}

// Source returns the id of the source that produced the element.
func (m Mark) Source() uint64 { return m.src }

// Pos returns the element's position within its source.
func (m Mark) Pos() uint64 { return m.pos }

var sourceIDs atomic.Uint64

// NewSourceID returns a process-unique id for a new element source.
func NewSourceID() uint64 {
	return sourceIDs.Add(1)
}

// MarkOf returns the Mark for position pos of source src.
func MarkOf(src, pos uint64) Mark {
	return Mark{src: src, pos: pos}
}

// Cursor produces the elements of a sequence on demand.
// Pull returns ErrExhausted once no elements remain; any other error is a
// genuine failure.
type Cursor[T any] interface {
	Pull() (T, Mark, error)
}

// CursorFunc adapts a function to the Cursor interface.
type CursorFunc[T any] func() (T, Mark, error)

func (f CursorFunc[T]) Pull() (T, Mark, error) { return f() }

// Puller adapts a plain next function to a Cursor, numbering the elements it
// yields under a fresh source id. Return ErrExhausted to end the sequence.
func Puller[T any](next func() (T, error)) Cursor[T] {
	src := NewSourceID()
	var pos uint64
	return CursorFunc[T](func() (T, Mark, error) {
		v, err := next()
		if err != nil {
			var zero T
			return zero, Mark{}, err
		}
		m := Mark{src: src, pos: pos}
		pos++
		return v, m, nil
	})
}

// exhausted is a Cursor that never yields.
type exhausted[T any] struct{}

func (exhausted[T]) Pull() (T, Mark, error) {
	var zero T
	return zero, Mark{}, ErrExhausted
}

// Exhausted returns a Cursor that is already at its end.
func Exhausted[T any]() Cursor[T] {
	return exhausted[T]{}
}

// Lazy defers building a Cursor until its first pull. A construction error is
// returned by that pull and every pull after it.
func Lazy[T any](build func() (Cursor[T], error)) Cursor[T] {
	var cur Cursor[T]
	var err error
	return CursorFunc[T](func() (T, Mark, error) {
		if cur == nil && err == nil {
			cur, err = build()
		}
		if err != nil {
			var zero T
			return zero, Mark{}, err
		}
		return cur.Pull()
	})
}

// counting wraps a Cursor and tallies the elements it has handed out.
type counting[T any] struct {
	cur Cursor[T]
	n   int
}

func (c *counting[T]) Pull() (T, Mark, error) {
	v, m, err := c.cur.Pull()
	if err == nil {
		c.n++
	}
	return v, m, err
}
