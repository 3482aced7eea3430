package core

import "fmt"

// Tuple holds two values produced together, such as the elements paired by
// Zip or the index and value yielded by Enumerate.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// T2 builds a Tuple.
func T2[A, B any](a A, b B) Tuple[A, B] {
	return Tuple[A, B]{First: a, Second: b}
}

// Unpack returns both values.
func (t Tuple[A, B]) Unpack() (A, B) {
	return t.First, t.Second
}

func (t Tuple[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.First, t.Second)
}
