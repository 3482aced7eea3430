package core

// Mapper is a one-to-one transformation that may fail. It is the lowest level
// of abstraction in a chain: it answers "what is done to each element?".
type Mapper[IN, OUT any] func(IN) (OUT, error)

// mapCursor applies a Mapper to every element of the wrapped cursor. The mark
// of the input element is kept, so mapped elements keep their identity.
type mapCursor[IN, OUT any] struct {
	cur Cursor[IN]
	fn  Mapper[IN, OUT]
}

func (c *mapCursor[IN, OUT]) Pull() (OUT, Mark, error) {
	v, m, err := c.cur.Pull()
	if err != nil {
		var zero OUT
		return zero, m, err
	}
	out, err := c.fn(v)
	if err != nil {
		var zero OUT
		return zero, m, err
	}
	return out, m, nil
}

// MapCursor applies fn lazily to every element pulled from cur.
func MapCursor[IN, OUT any](cur Cursor[IN], fn Mapper[IN, OUT]) Cursor[OUT] {
	return &mapCursor[IN, OUT]{cur: cur, fn: fn}
}

// TryMap applies fn to every element on both sides of in. An error from fn is
// returned by the pull that triggered it. Bounds are unchanged.
func TryMap[IN, OUT any](in *Iter[IN], fn Mapper[IN, OUT]) *Iter[OUT] {
	var back Cursor[OUT]
	if c, ok := in.Back(); ok {
		back = MapCursor(c, fn)
	}
	return Derive(MapCursor(in.Front(), fn), back, in.Bounds())
}

// Map applies fn to every element on both sides of in. Bounds are unchanged.
func Map[IN, OUT any](in *Iter[IN], fn func(IN) OUT) *Iter[OUT] {
	return TryMap[IN, OUT](in, func(v IN) (OUT, error) { return fn(v), nil })
}
