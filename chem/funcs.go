package chem

import (
	"cmp"
	"context"

	"github.com/reid23/chemical/chem/aggregate"
	"github.com/reid23/chemical/chem/combine"
	"github.com/reid23/chemical/chem/core"
	"github.com/reid23/chemical/chem/parallel"
	"github.com/reid23/chemical/chem/transform"
)

// Go methods cannot introduce type parameters, so adaptors and terminals
// whose result type differs from the input live here as functions.

func lift[IN, OUT any](in *It[IN], fn func(*core.Iter[IN]) *core.Iter[OUT]) *It[OUT] {
	if in.err != nil {
		return Fail[OUT](in.err)
	}
	return Wrap(fn(in.it))
}

// Map applies fn to every element.
func Map[IN, OUT any](in *It[IN], fn func(IN) OUT) *It[OUT] {
	return lift(in, func(it *core.Iter[IN]) *core.Iter[OUT] { return core.Map(it, fn) })
}

// TryMap applies fn to every element; an error from fn is returned by the
// pull that triggered it.
func TryMap[IN, OUT any](in *It[IN], fn func(IN) (OUT, error)) *It[OUT] {
	return lift(in, func(it *core.Iter[IN]) *core.Iter[OUT] { return core.TryMap(it, fn) })
}

// ForEach lazily calls fn on every element and yields its results. Nothing
// runs until the returned It is drained; It.Each runs a closure eagerly.
func ForEach[T, R any](in *It[T], fn func(T) R) *It[R] {
	return lift(in, func(it *core.Iter[T]) *core.Iter[R] { return transform.ForEach(it, fn) })
}

// Enumerate pairs every element with its index.
func Enumerate[T any](in *It[T]) *It[Tuple[int, T]] {
	return lift(in, transform.Enumerate[T])
}

// Zip pairs a and b positionally, stopping at the shorter.
func Zip[A, B any](a *It[A], b *It[B]) *It[Tuple[A, B]] {
	if b.err != nil {
		return Fail[Tuple[A, B]](b.err)
	}
	return lift(a, func(it *core.Iter[A]) *core.Iter[Tuple[A, B]] { return combine.Zip(it, b.it) })
}

// StarMap applies fn to the unpacked fields of every pair.
func StarMap[A, B, C any](in *It[Tuple[A, B]], fn func(A, B) C) *It[C] {
	return lift(in, func(it *core.Iter[Tuple[A, B]]) *core.Iter[C] { return transform.StarMap(it, fn) })
}

// Scan yields the running accumulation of fn, not including seed.
func Scan[T, R any](in *It[T], seed R, fn func(R, T) R) *It[R] {
	return lift(in, func(it *core.Iter[T]) *core.Iter[R] { return transform.Scan(it, seed, fn) })
}

// FlatMap replaces every element with the elements fn returns for it.
func FlatMap[T, U any](in *It[T], fn func(T) []U) *It[U] {
	return lift(in, func(it *core.Iter[T]) *core.Iter[U] { return transform.FlatMap(it, fn) })
}

// Flatten unnests sequence-like elements up to maxDepth levels; pass
// combine.Unbounded for no limit.
func Flatten(in *It[any], preserveStrings bool, maxDepth int) *It[any] {
	return lift(in, func(it *core.Iter[any]) *core.Iter[any] { return combine.Flatten(it, preserveStrings, maxDepth) })
}

// ParMap applies fn concurrently, preserving order.
func ParMap[IN, OUT any](ctx context.Context, in *It[IN], fn func(IN) OUT) *It[OUT] {
	return lift(in, func(it *core.Iter[IN]) *core.Iter[OUT] { return parallel.ParMap(ctx, it, fn) })
}

// Collect drains in into the container built by into, for example
// core.ToSet or core.ToString.
func Collect[T, C any](in *It[T], into Into[T, C]) (C, error) {
	if in.err != nil {
		var zero C
		return zero, in.err
	}
	return core.Collect(in.it, into)
}

// Fold combines every element into an accumulator starting at initial.
func Fold[T, R any](in *It[T], initial R, fn func(R, T) R) (R, error) {
	if in.err != nil {
		return initial, in.err
	}
	return aggregate.Fold(in.it, initial, fn)
}

// Reduce is Fold seeded with the first element.
func Reduce[T any](in *It[T], fn func(T, T) T) (T, error) {
	if in.err != nil {
		var zero T
		return zero, in.err
	}
	return aggregate.Reduce(in.it, fn)
}

// Sum adds up the elements.
func Sum[T aggregate.Numeric](in *It[T]) (T, error) {
	if in.err != nil {
		var zero T
		return zero, in.err
	}
	return aggregate.Sum(in.it)
}

// Max returns the largest element.
func Max[T cmp.Ordered](in *It[T]) (T, error) {
	if in.err != nil {
		var zero T
		return zero, in.err
	}
	return aggregate.Max(in.it)
}

// Min returns the smallest element.
func Min[T cmp.Ordered](in *It[T]) (T, error) {
	if in.err != nil {
		var zero T
		return zero, in.err
	}
	return aggregate.Min(in.it)
}

// All reports whether pred holds for every element.
func All[T any](in *It[T], pred func(T) bool) (bool, error) {
	if in.err != nil {
		return false, in.err
	}
	return aggregate.All(in.it, pred)
}

// Any reports whether pred holds for some element.
func Any[T any](in *It[T], pred func(T) bool) (bool, error) {
	if in.err != nil {
		return false, in.err
	}
	return aggregate.Any(in.it, pred)
}

// None reports whether pred holds for no element.
func None[T any](in *It[T], pred func(T) bool) (bool, error) {
	if in.err != nil {
		return false, in.err
	}
	return aggregate.None(in.it, pred)
}
