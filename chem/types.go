// Package chem provides lazy, double-ended iterator combinators for Go.
//
// This package is the primary user-facing API. It wraps a core.Iter in a
// fluent It with a sticky error, and re-exports the sources and the
// type-changing adaptors as generic functions. The chem/core subpackage holds
// the cursor-pair abstraction every adaptor is built on; the remaining
// subpackages hold one operator family each.
package chem

import (
	"iter"

	"github.com/reid23/chemical/chem/core"
)

// Type aliases for the core abstractions.
// These allow users to work with chem without importing core directly.
type (
	// Iter pairs a forward cursor with an optional reverse cursor.
	Iter[T any] = core.Iter[T]

	// Cursor is a pull-based source of marked elements.
	Cursor[T any] = core.Cursor[T]

	// Mark identifies an element independently of its value.
	Mark = core.Mark

	// Bounds is a lower/optional-upper estimate of remaining elements.
	Bounds = core.Bounds

	// Tuple is the pair produced by Zip and Enumerate.
	Tuple[A, B any] = core.Tuple[A, B]

	// Hooks holds typed observation callbacks.
	Hooks[T any] = core.Hooks[T]

	// Factory builds an Iter for a registered extension.
	Factory[T any] = core.Factory[T]

	// Registry maps extension names to Factories.
	Registry = core.Registry

	// Into builds the container a Collect drains into.
	Into[T, C any] = core.Into[T, C]
)

// Errors re-exported from core.
var (
	ErrExhausted        = core.ErrExhausted
	ErrNothingToPeek    = core.ErrNothingToPeek
	ErrUnknownExtension = core.ErrUnknownExtension
	ErrExtensionType    = core.ErrExtensionType
	ErrPrecondition     = core.ErrPrecondition
	ErrIrreversible     = core.ErrIrreversible
)

// From wraps the elements of a slice.
func From[T any](items []T) *It[T] {
	return Wrap(core.FromSlice(items))
}

// Of wraps the given values.
func Of[T any](values ...T) *It[T] {
	return Wrap(core.FromSlice(values))
}

// Str wraps the runes of s.
func Str(s string) *It[rune] {
	return Wrap(core.FromString(s))
}

// Range wraps the integers in [start, end).
func Range(start, end int) *It[int] {
	return Wrap(core.Range(start, end))
}

// RangeStep wraps start, start+step, ... up to but excluding end.
func RangeStep(start, end, step int) *It[int] {
	return Wrap(core.RangeStep(start, end, step))
}

// Seq wraps a Go iterator. The result is one-directional.
func Seq[T any](seq iter.Seq[T]) *It[T] {
	return Wrap(core.FromSeq(seq))
}

// Func wraps a generator that returns ErrExhausted at its end.
func Func[T any](fn func() (T, error)) *It[T] {
	return Wrap(core.FromFunc(fn))
}

// Repeat wraps an infinite repetition of value.
func Repeat[T any](value T) *It[T] {
	return Wrap(core.Repeat(value))
}

// Counter wraps the infinite sequence start, start+step, ...
func Counter(start, step int) *It[int] {
	return Wrap(core.Counter(start, step))
}

// Iterate wraps the infinite sequence seed, fn(seed), fn(fn(seed)), ...
func Iterate[T any](seed T, fn func(T) T) *It[T] {
	return Wrap(core.Iterate(seed, fn))
}

// Empty wraps no elements.
func Empty[T any]() *It[T] {
	return Wrap(core.Empty[T]())
}

// Register adds an extension to the default registry under name.
func Register[T any](name string, f Factory[T]) error {
	return core.Register(core.DefaultRegistry(), name, f)
}

// Extensions lists the names in the default registry.
func Extensions() []string {
	return core.DefaultRegistry().Names()
}
