package combine

import (
	"github.com/reid23/chemical/chem/core"
)

// Zip pairs the elements of a and b positionally and stops at the shorter
// of the two. Each pair carries the identity of its element from a.
//
// The reverse side pairs the two reverse cursors positionally as well. When
// a and b differ in length this pairs their tails, not the elements the
// forward side paired: zip(a, b) reversed is not reverse(zip(a, b)) unless
// both inputs have the same length.
func Zip[A, B any](a *core.Iter[A], b *core.Iter[B]) *core.Iter[core.Tuple[A, B]] {
	var back core.Cursor[core.Tuple[A, B]]
	ab, aok := a.Back()
	bb, bok := b.Back()
	if aok && bok {
		back = &zipCursor[A, B]{a: ab, b: bb}
	}
	front := &zipCursor[A, B]{a: a.Front(), b: b.Front()}
	return core.Derive[core.Tuple[A, B]](front, back, a.Bounds().Zip(b.Bounds()))
}

// ZipWith pairs a and b positionally and combines each pair with fn.
func ZipWith[A, B, C any](a *core.Iter[A], b *core.Iter[B], fn func(A, B) C) *core.Iter[C] {
	return core.Map(Zip(a, b), func(t core.Tuple[A, B]) C { return fn(t.First, t.Second) })
}

type zipCursor[A, B any] struct {
	a core.Cursor[A]
	b core.Cursor[B]
}

func (z *zipCursor[A, B]) Pull() (core.Tuple[A, B], core.Mark, error) {
	var zero core.Tuple[A, B]
	av, m, err := z.a.Pull()
	if err != nil {
		return zero, m, err
	}
	bv, _, err := z.b.Pull()
	if err != nil {
		return zero, m, err
	}
	return core.T2(av, bv), m, nil
}
