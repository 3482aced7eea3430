package core

import "fmt"

// Terminal functions drain an Iter into a final value. ErrExhausted is the
// normal end of the sequence and is never returned by a terminal except where
// noted; any other pull error stops the drain and is returned as is.

// Drain pulls from in until it is exhausted or fn returns false.
func Drain[T any](in *Iter[T], fn func(T) bool) error {
	for {
		v, _, err := in.Pull()
		if err != nil {
			if IsExhausted(err) {
				return nil
			}
			return err
		}
		if !fn(v) {
			return nil
		}
	}
}

// Slice collects the remaining elements into a new slice.
func Slice[T any](in *Iter[T]) ([]T, error) {
	return Collect(in, ToSlice[T]())
}

// Collect drains in into a fresh container built by into. The container is
// pre-sized from the lower bound of in.
func Collect[T, C any](in *Iter[T], into Into[T, C]) (C, error) {
	c := into()
	c.Grow(in.Bounds().Lower())
	if err := Drain(in, func(v T) bool {
		c.Add(v)
		return true
	}); err != nil {
		var zero C
		return zero, err
	}
	return c.Result(), nil
}

// Count drains in and returns how many elements it produced.
func Count[T any](in *Iter[T]) (int, error) {
	n := 0
	err := Drain(in, func(T) bool {
		n++
		return true
	})
	return n, err
}

// Last drains in and returns its final element. An empty Iter yields an
// error wrapping ErrExhausted.
func Last[T any](in *Iter[T]) (T, error) {
	var last T
	seen := false
	if err := Drain(in, func(v T) bool {
		last, seen = v, true
		return true
	}); err != nil {
		return last, err
	}
	if !seen {
		return last, fmt.Errorf("last: %w", ErrExhausted)
	}
	return last, nil
}

// Nth pulls n elements and returns the last of them, so Nth(in, 1) is the
// next element. Running out first yields an error wrapping ErrExhausted.
func Nth[T any](in *Iter[T], n int) (T, error) {
	var zero T
	if n < 1 {
		return zero, Precondition("nth", "n must be >= 1, got %d", n)
	}
	for i := 1; ; i++ {
		v, _, err := in.Pull()
		if err != nil {
			if IsExhausted(err) {
				return zero, fmt.Errorf("nth(%d): %w", n, err)
			}
			return zero, err
		}
		if i == n {
			return v, nil
		}
	}
}

// First returns the next element of in.
func First[T any](in *Iter[T]) (T, error) {
	return Nth(in, 1)
}

// Go drains in for its side effects.
func Go[T any](in *Iter[T]) error {
	return Drain(in, func(T) bool { return true })
}

// Each drains in, calling fn on every remaining element.
func Each[T any](in *Iter[T], fn func(T)) error {
	return Drain(in, func(v T) bool {
		fn(v)
		return true
	})
}
