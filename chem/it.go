package chem

import (
	"context"
	"iter"

	"github.com/reid23/chemical/chem/combine"
	"github.com/reid23/chemical/chem/core"
	"github.com/reid23/chemical/chem/filter"
	"github.com/reid23/chemical/chem/lookahead"
	"github.com/reid23/chemical/chem/observe"
	"github.com/reid23/chemical/chem/parallel"
	"github.com/reid23/chemical/chem/transform"
)

// It is a fluent wrapper around an Iter.
//
// Adaptors that can fail (a bad Skip count, Rev on a one-directional source,
// an unknown extension) record the error instead of returning it. Once an It
// holds an error every further adaptor is a no-op and every terminal returns
// that error, so a chain only needs checking at its end:
//
//	got, err := chem.Range(0, 10).Skip(2).StepBy(3).Rev().Collect()
type It[T any] struct {
	it  *core.Iter[T]
	err error
}

// Wrap makes it fluent.
func Wrap[T any](it *core.Iter[T]) *It[T] {
	return &It[T]{it: it}
}

// Fail returns an It that holds err.
func Fail[T any](err error) *It[T] {
	return &It[T]{it: core.Empty[T](), err: err}
}

func (i *It[T]) then(fn func(*core.Iter[T]) (*core.Iter[T], error)) *It[T] {
	if i.err != nil {
		return i
	}
	next, err := fn(i.it)
	if err != nil {
		return &It[T]{it: core.Empty[T](), err: err}
	}
	return &It[T]{it: next}
}

func (i *It[T]) apply(fn func(*core.Iter[T]) *core.Iter[T]) *It[T] {
	if i.err != nil {
		return i
	}
	return &It[T]{it: fn(i.it)}
}

// Iter returns the wrapped Iter, or the held error.
func (i *It[T]) Iter() (*core.Iter[T], error) {
	return i.it, i.err
}

// Err returns the held error, or the first genuine failure seen by All.
func (i *It[T]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.it.Err()
}

// Bounds returns the remaining-element estimate.
func (i *It[T]) Bounds() core.Bounds {
	return i.it.Bounds()
}

// Consumed returns how many elements each side has handed out.
func (i *It[T]) Consumed() (front, back int) {
	return i.it.Consumed()
}

// Next returns the next element.
func (i *It[T]) Next() (T, error) {
	if i.err != nil {
		var zero T
		return zero, i.err
	}
	return i.it.Next()
}

// All returns an iterator over the remaining elements for use with range.
// Check Err afterwards.
func (i *It[T]) All() iter.Seq[T] {
	if i.err != nil {
		return func(func(T) bool) {}
	}
	return i.it.All()
}

// Adaptors.

func (i *It[T]) Skip(n int) *It[T] {
	return i.then(func(it *core.Iter[T]) (*core.Iter[T], error) { return filter.Skip(it, n) })
}

func (i *It[T]) StepBy(step int) *It[T] {
	return i.then(func(it *core.Iter[T]) (*core.Iter[T], error) { return filter.StepBy(it, step) })
}

func (i *It[T]) Take(n int) *It[T] {
	return i.then(func(it *core.Iter[T]) (*core.Iter[T], error) { return filter.Take(it, n) })
}

// Islice yields the elements at start, start+step, ... before stop. Pass
// filter.NoStop as stop to run to the end.
func (i *It[T]) Islice(start, stop, step int) *It[T] {
	return i.then(func(it *core.Iter[T]) (*core.Iter[T], error) { return filter.Islice(it, start, stop, step) })
}

func (i *It[T]) Filter(keep func(T) bool) *It[T] {
	return i.apply(func(it *core.Iter[T]) *core.Iter[T] { return filter.Filter(it, keep) })
}

func (i *It[T]) TakeWhile(keep func(T) bool) *It[T] {
	return i.apply(func(it *core.Iter[T]) *core.Iter[T] { return filter.TakeWhile(it, keep) })
}

func (i *It[T]) SkipWhile(drop func(T) bool) *It[T] {
	return i.apply(func(it *core.Iter[T]) *core.Iter[T] { return filter.SkipWhile(it, drop) })
}

// Chain appends other. An error held by other is carried over.
func (i *It[T]) Chain(other *It[T]) *It[T] {
	if other.err != nil && i.err == nil {
		return other
	}
	return i.apply(func(it *core.Iter[T]) *core.Iter[T] { return combine.Chain(it, other.it) })
}

func (i *It[T]) Cycle() *It[T] {
	return i.apply(combine.Cycle[T])
}

// Map applies a same-typed fn. Use the package-level Map to change type.
func (i *It[T]) Map(fn func(T) T) *It[T] {
	return i.apply(func(it *core.Iter[T]) *core.Iter[T] { return core.Map(it, fn) })
}

func (i *It[T]) Inspect(fn func(T)) *It[T] {
	return i.apply(func(it *core.Iter[T]) *core.Iter[T] { return transform.Inspect(it, fn) })
}

// Rev swaps the two sides. One-directional sources record ErrIrreversible.
func (i *It[T]) Rev() *It[T] {
	return i.then(func(it *core.Iter[T]) (*core.Iter[T], error) { return it.Rev() })
}

// ParIter pulls on a worker pool sized by parallel.Workers(ctx).
func (i *It[T]) ParIter(ctx context.Context) *It[T] {
	return i.apply(func(it *core.Iter[T]) *core.Iter[T] { return parallel.ParIter(ctx, it) })
}

// Observe invokes hooks on every pull.
func (i *It[T]) Observe(hooks ...core.Hooks[T]) *It[T] {
	return i.apply(func(it *core.Iter[T]) *core.Iter[T] { return observe.Observe(it, hooks...) })
}

// Call applies the extension registered as name in the default registry.
// An unknown name records an error wrapping ErrUnknownExtension.
func (i *It[T]) Call(name string, args ...any) *It[T] {
	return i.CallContext(context.Background(), name, args...)
}

// CallContext is Call against the registry attached to ctx.
func (i *It[T]) CallContext(ctx context.Context, name string, args ...any) *It[T] {
	r := core.GetRegistry(ctx)
	return i.then(func(it *core.Iter[T]) (*core.Iter[T], error) { return core.Extend(r, name, it, args...) })
}

// Lookahead.

// Peekable wraps the remaining elements for one-element lookahead.
func (i *It[T]) Peekable() (*lookahead.Peekable[T], error) {
	if i.err != nil {
		return nil, i.err
	}
	return lookahead.NewPeekable(i.it), nil
}

// Current wraps the remaining elements for lookahead that also remembers
// the last element returned.
func (i *It[T]) Current() (*lookahead.Current[T], error) {
	if i.err != nil {
		return nil, i.err
	}
	return lookahead.NewCurrent(i.it), nil
}

// Terminals.

// Collect drains the remaining elements into a slice.
func (i *It[T]) Collect() ([]T, error) {
	return Collect(i, core.ToSlice[T]())
}

func (i *It[T]) Count() (int, error) {
	if i.err != nil {
		return 0, i.err
	}
	return core.Count(i.it)
}

func (i *It[T]) Last() (T, error) {
	if i.err != nil {
		var zero T
		return zero, i.err
	}
	return core.Last(i.it)
}

// Nth pulls n elements and returns the last of them; Nth(1) is the next element.
func (i *It[T]) Nth(n int) (T, error) {
	if i.err != nil {
		var zero T
		return zero, i.err
	}
	return core.Nth(i.it, n)
}

// Go drains the remaining elements for their side effects.
func (i *It[T]) Go() error {
	if i.err != nil {
		return i.err
	}
	return core.Go(i.it)
}

// Each drains the remaining elements, calling fn on every one. See ForEach
// for the lazy form.
func (i *It[T]) Each(fn func(T)) error {
	if i.err != nil {
		return i.err
	}
	return core.Each(i.it, fn)
}
