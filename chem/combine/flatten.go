package combine

import (
	"iter"
	"reflect"
	"unicode/utf8"

	"github.com/reid23/chemical/chem/core"
)

// Unbounded passed as maxDepth to Flatten descends without limit.
const Unbounded = -1

// Flatten descends into nested sequence-like elements up to maxDepth levels
// and yields their contents in place. The top-level elements are at depth 0,
// so maxDepth 1 unnests one level and Unbounded unnests everything.
//
// Sequence-like means a slice or array, an iter.Seq[any] or a *core.Iter[any].
// Strings and byte slices are atomic when preserveStrings is set; otherwise a
// string yields its runes as one-rune strings and a []byte yields its bytes.
// Maps and every other value are atomic.
//
// The reverse side walks the reverse cursor and descends into each nested
// element back to front, so it is the exact reverse of the forward side for
// slices, arrays and reversible Iters.
func Flatten(in *core.Iter[any], preserveStrings bool, maxDepth int) *core.Iter[any] {
	st := &flattenState{preserveStrings: preserveStrings, maxDepth: maxDepth, ids: make(map[core.Mark]uint64)}
	var back core.Cursor[any]
	if c, ok := in.Back(); ok {
		back = st.cursor(c, true)
	}
	return core.Derive[any](st.cursor(in.Front(), false), back, in.Bounds().Unbounded())
}

// flattenState is shared by both sides so nested elements get the same
// identity whichever direction reaches them first.
type flattenState struct {
	preserveStrings bool
	maxDepth        int
	ids             map[core.Mark]uint64
}

func (st *flattenState) cursor(root core.Cursor[any], reverse bool) *flattenCursor {
	return &flattenCursor{st: st, reverse: reverse, stack: []frame{{cur: root}}}
}

// containerID returns a stable source id for the container identified by m.
func (st *flattenState) containerID(m core.Mark) uint64 {
	id, ok := st.ids[m]
	if !ok {
		id = core.NewSourceID()
		st.ids[m] = id
	}
	return id
}

type frame struct {
	cur   core.Cursor[any]
	depth int
}

type flattenCursor struct {
	st      *flattenState
	reverse bool
	stack   []frame
}

func (f *flattenCursor) Pull() (any, core.Mark, error) {
	for len(f.stack) > 0 {
		top := f.stack[len(f.stack)-1]
		v, m, err := top.cur.Pull()
		if err != nil {
			if !core.IsExhausted(err) {
				return nil, m, err
			}
			f.stack = f.stack[:len(f.stack)-1]
			continue
		}
		if f.st.maxDepth < 0 || top.depth < f.st.maxDepth {
			if child, ok := f.children(v, m); ok {
				f.stack = append(f.stack, frame{cur: child, depth: top.depth + 1})
				continue
			}
		}
		return v, m, nil
	}
	return nil, core.Mark{}, core.ErrExhausted
}

// children returns a cursor over the elements of v when v is sequence-like.
func (f *flattenCursor) children(v any, parent core.Mark) (core.Cursor[any], bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case string:
		if f.st.preserveStrings || utf8.RuneCountInString(x) <= 1 {
			return nil, false
		}
		parts := make([]any, 0, len(x))
		for _, r := range x {
			parts = append(parts, string(r))
		}
		return f.indexed(reflect.ValueOf(parts), parent), true
	case []byte:
		if f.st.preserveStrings {
			return nil, false
		}
		return f.indexed(reflect.ValueOf(x), parent), true
	case *core.Iter[any]:
		if f.reverse {
			if back, ok := x.Back(); ok {
				return back, true
			}
		}
		return x.Front(), true
	case iter.Seq[any]:
		return core.FromSeq(x).Front(), true
	case func(func(any) bool):
		return core.FromSeq(iter.Seq[any](x)).Front(), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return f.indexed(rv, parent), true
	}
	return nil, false
}

func (f *flattenCursor) indexed(rv reflect.Value, parent core.Mark) core.Cursor[any] {
	return &indexCursor{v: rv, n: rv.Len(), reverse: f.reverse, src: f.st.containerID(parent)}
}

type indexCursor struct {
	v       reflect.Value
	n, next int
	reverse bool
	src     uint64
}

func (c *indexCursor) Pull() (any, core.Mark, error) {
	if c.next >= c.n {
		return nil, core.Mark{}, core.ErrExhausted
	}
	i := c.next
	if c.reverse {
		i = c.n - 1 - c.next
	}
	c.next++
	return c.v.Index(i).Interface(), core.MarkOf(c.src, uint64(i)), nil
}
