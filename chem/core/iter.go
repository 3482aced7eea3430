// Package core defines the cursor-pair abstraction every chemical adaptor is
// built on: element identity (Mark), pull-based Cursors, the Iter that pairs a
// forward cursor with an optional reverse one, and Bounds tracking.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other chem packages.
package core

import (
	"iter"
)

// Iter pairs a forward cursor with an optional reverse cursor over the same
// elements and carries a Bounds estimate of how many elements remain.
//
// An Iter has exactly one owner. Adaptors take ownership of the Iter they wrap;
// pulling from an Iter after handing it to an adaptor gives unspecified
// results.
type Iter[T any] struct {
	front  *counting[T]
	back   *counting[T] // nil when the source only walks one way
	bounds Bounds
	err    error
}

// Option configures an Iter built by New.
type Option[T any] func(*Iter[T])

// WithReverse supplies the cursor that walks the same elements back to front.
func WithReverse[T any](back Cursor[T]) Option[T] {
	return func(it *Iter[T]) {
		if back != nil {
			it.back = &counting[T]{cur: back}
		}
	}
}

// WithBounds supplies a known element-count estimate. Without it an Iter
// promises nothing about its length.
func WithBounds[T any](b Bounds) Option[T] {
	return func(it *Iter[T]) {
		it.bounds = b
	}
}

// New wraps a forward cursor into an Iter.
func New[T any](front Cursor[T], opts ...Option[T]) *Iter[T] {
	it := &Iter[T]{front: &counting[T]{cur: front}}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Derive builds the Iter an adaptor produces. back may be nil.
func Derive[T any](front, back Cursor[T], b Bounds) *Iter[T] {
	if back == nil {
		return New(front, WithBounds[T](b))
	}
	return New(front, WithReverse(back), WithBounds[T](b))
}

// Pull implements Cursor so an Iter can feed another Iter.
func (it *Iter[T]) Pull() (T, Mark, error) {
	return it.front.Pull()
}

// Next returns the next element, or ErrExhausted at the end.
func (it *Iter[T]) Next() (T, error) {
	v, _, err := it.front.Pull()
	return v, err
}

// Front returns the forward cursor. Callers take ownership of it.
func (it *Iter[T]) Front() Cursor[T] {
	return it.front
}

// Back returns the reverse cursor, if there is one. Callers take ownership
// of it.
func (it *Iter[T]) Back() (Cursor[T], bool) {
	if it.back == nil {
		return nil, false
	}
	return it.back, true
}

// Reversible reports whether Rev can succeed.
func (it *Iter[T]) Reversible() bool {
	return it.back != nil
}

// Bounds returns the estimate of elements still to come from the front,
// accounting for what has already been pulled.
func (it *Iter[T]) Bounds() Bounds {
	if it.front.n == 0 {
		return it.bounds
	}
	return it.bounds.Skip(it.front.n)
}

// Consumed returns how many elements each side has handed out so far.
func (it *Iter[T]) Consumed() (front, back int) {
	if it.back != nil {
		back = it.back.n
	}
	return it.front.n, back
}

// Rev swaps the two sides: the returned Iter walks back to front.
// It fails with ErrIrreversible when there is no reverse cursor.
func (it *Iter[T]) Rev() (*Iter[T], error) {
	if it.back == nil {
		return nil, ErrIrreversible
	}
	return &Iter[T]{front: it.back, back: it.front, bounds: it.bounds}, nil
}

// All returns an iterator over the remaining elements for use with range.
// Iteration stops at the first error; a genuine failure is reported by Err.
func (it *Iter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, _, err := it.front.Pull()
			if err != nil {
				if !IsExhausted(err) {
					it.err = err
				}
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Err returns the first non-exhaustion error encountered by All.
func (it *Iter[T]) Err() error {
	return it.err
}
