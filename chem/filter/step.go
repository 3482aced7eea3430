package filter

import (
	"github.com/reid23/chemical/chem/core"
)

// StepBy yields the first element and then every step-th element after it.
// step must be >= 1.
//
// The reverse side applies its own StepBy to the existing reverse cursor: it
// strides from the back and is not required to land on the same elements as
// the forward side.
func StepBy[T any](in *core.Iter[T], step int) (*core.Iter[T], error) {
	if step < 1 {
		return nil, core.Precondition("step_by", "step must be >= 1, got %d", step)
	}
	var back core.Cursor[T]
	if c, ok := in.Back(); ok {
		back = &stepCursor[T]{cur: c, step: step}
	}
	return core.Derive[T](&stepCursor[T]{cur: in.Front(), step: step}, back, in.Bounds().StepBy(step)), nil
}

type stepCursor[T any] struct {
	cur     core.Cursor[T]
	step    int
	pending error
}

func (s *stepCursor[T]) Pull() (T, core.Mark, error) {
	if s.pending != nil {
		var zero T
		err := s.pending
		s.pending = nil
		return zero, core.Mark{}, err
	}
	v, m, err := s.cur.Pull()
	if err != nil {
		return v, m, err
	}
	// Running out while discarding is not an error; the element in hand is
	// still returned. A genuine failure is held for the next pull.
	for i := 1; i < s.step; i++ {
		if _, _, err := s.cur.Pull(); err != nil {
			if !core.IsExhausted(err) {
				s.pending = err
			}
			break
		}
	}
	return v, m, nil
}
