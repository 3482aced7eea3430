package transform

import (
	"github.com/reid23/chemical/chem/core"
)

// FlatMap replaces every element with the elements of fn's result, in order.
//
// The reverse side walks the reverse cursor and each result back to front.
// Results are identified by the element that produced them, so an element
// reached from either side carries the same Mark. The upper bound is lost.
func FlatMap[T, U any](in *core.Iter[T], fn func(T) []U) *core.Iter[U] {
	ids := make(map[core.Mark]uint64)
	var back core.Cursor[U]
	if c, ok := in.Back(); ok {
		back = &flatMapCursor[T, U]{cur: c, fn: fn, ids: ids, reverse: true}
	}
	front := &flatMapCursor[T, U]{cur: in.Front(), fn: fn, ids: ids}
	return core.Derive[U](front, back, core.Unknown())
}

type flatMapCursor[T, U any] struct {
	cur     core.Cursor[T]
	fn      func(T) []U
	ids     map[core.Mark]uint64
	reverse bool

	items []U
	src   uint64
	next  int
}

func (c *flatMapCursor[T, U]) Pull() (U, core.Mark, error) {
	for c.next >= len(c.items) {
		v, m, err := c.cur.Pull()
		if err != nil {
			var zero U
			return zero, m, err
		}
		id, ok := c.ids[m]
		if !ok {
			id = core.NewSourceID()
			c.ids[m] = id
		}
		c.items, c.src, c.next = c.fn(v), id, 0
	}
	i := c.next
	if c.reverse {
		i = len(c.items) - 1 - c.next
	}
	c.next++
	return c.items[i], core.MarkOf(c.src, uint64(i)), nil
}
