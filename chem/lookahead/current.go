package lookahead

import (
	"github.com/reid23/chemical/chem/core"
)

// Current is a Peekable that also remembers the element Next returned last.
type Current[T any] struct {
	*Peekable[T]
	curr    T
	started bool
}

// NewCurrent wraps in.
func NewCurrent[T any](in *core.Iter[T]) *Current[T] {
	return &Current[T]{Peekable: NewPeekable(in)}
}

// Curr returns the element most recently returned by Next. Before the first
// Next it is the result of Peek.
func (c *Current[T]) Curr() (T, error) {
	if !c.started {
		return c.Peek()
	}
	return c.curr, nil
}

// Pull implements core.Cursor.
func (c *Current[T]) Pull() (T, core.Mark, error) {
	v, m, err := c.Peekable.Pull()
	if err == nil {
		c.curr, c.started = v, true
	}
	return v, m, err
}

// Next returns the next element and remembers it as the current one.
func (c *Current[T]) Next() (T, error) {
	v, _, err := c.Pull()
	return v, err
}

// Iter wraps c back into an Iter.
func (c *Current[T]) Iter() *core.Iter[T] {
	var back core.Cursor[T]
	if b, ok := c.in.Back(); ok {
		back = b
	}
	return core.Derive[T](c, back, c.Bounds())
}
