package combine

import (
	"github.com/reid23/chemical/chem/core"
)

// Cycle yields the elements of in and then repeats them forever. Elements are
// saved as they are first pulled; an empty input gives an empty cycle.
// Without a Take or similar bound the result never reports ErrExhausted.
//
// The reverse side cycles the reverse cursor.
func Cycle[T any](in *core.Iter[T]) *core.Iter[T] {
	var back core.Cursor[T]
	if c, ok := in.Back(); ok {
		back = &cycleCursor[T]{cur: c}
	}
	return core.Derive[T](&cycleCursor[T]{cur: in.Front()}, back, in.Bounds().Unbounded())
}

type saved[T any] struct {
	v T
	m core.Mark
}

type cycleCursor[T any] struct {
	cur       core.Cursor[T]
	seen      []saved[T]
	replaying bool
	next      int
}

func (c *cycleCursor[T]) Pull() (T, core.Mark, error) {
	if !c.replaying {
		v, m, err := c.cur.Pull()
		if err == nil {
			c.seen = append(c.seen, saved[T]{v: v, m: m})
			return v, m, nil
		}
		if !core.IsExhausted(err) || len(c.seen) == 0 {
			return v, m, err
		}
		c.replaying = true
	}
	s := c.seen[c.next]
	c.next = (c.next + 1) % len(c.seen)
	return s.v, s.m, nil
}
