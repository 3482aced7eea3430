// Package lookahead provides single-slot buffering adaptors that let callers
// look at the next element without consuming it.
package lookahead

import (
	"errors"

	"github.com/reid23/chemical/chem/core"
)

type state int

const (
	fresh state = iota
	buffered
	exhausted
)

// Peekable buffers one element ahead of its caller.
//
// Next hands out the buffered element and immediately pulls the one after
// it, so exhaustion is detected one call early: once Next has returned the
// last element, Peek fails with core.ErrNothingToPeek.
type Peekable[T any] struct {
	in    *core.Iter[T]
	state state
	buf   T // once exhausted, the last element produced
	mark  core.Mark
	err   error // genuine failure from the eager pull, returned by the next call
}

// NewPeekable wraps in. No element is pulled until the first Peek or Next.
func NewPeekable[T any](in *core.Iter[T]) *Peekable[T] {
	return &Peekable[T]{in: in}
}

// fill pulls one element into the buffer.
func (p *Peekable[T]) fill() {
	v, m, err := p.in.Pull()
	if err != nil {
		p.state = exhausted
		if !core.IsExhausted(err) {
			p.err = err
		}
		return
	}
	p.buf, p.mark, p.state = v, m, buffered
}

// Peek returns the next element without consuming it. Repeated calls return
// the same element until Next is called.
func (p *Peekable[T]) Peek() (T, error) {
	if p.state == fresh {
		p.fill()
	}
	if p.state == exhausted {
		var zero T
		if p.err != nil {
			return zero, p.err
		}
		return zero, core.ErrNothingToPeek
	}
	return p.buf, nil
}

// HasNext reports whether Next would return an element.
func (p *Peekable[T]) HasNext() bool {
	_, err := p.Peek()
	return err == nil
}

// Pull implements core.Cursor.
func (p *Peekable[T]) Pull() (T, core.Mark, error) {
	if p.state == fresh {
		p.fill()
	}
	if p.state == exhausted {
		var zero T
		if err := p.err; err != nil {
			p.err = nil
			return zero, core.Mark{}, err
		}
		return zero, core.Mark{}, core.ErrExhausted
	}
	v, m := p.buf, p.mark
	p.fill()
	return v, m, nil
}

// Next returns the next element and advances by exactly one position.
func (p *Peekable[T]) Next() (T, error) {
	v, _, err := p.Pull()
	return v, err
}

// Iter wraps p back into an Iter. The reverse side, if any, is the reverse
// cursor of the wrapped Iter and does not see the buffer.
func (p *Peekable[T]) Iter() *core.Iter[T] {
	var back core.Cursor[T]
	if c, ok := p.in.Back(); ok {
		back = c
	}
	return core.Derive[T](p, back, p.Bounds())
}

// Bounds returns the estimate of elements still to come, buffer included.
func (p *Peekable[T]) Bounds() core.Bounds {
	b := p.in.Bounds()
	if p.state == buffered {
		return b.Chain(core.Exact(1))
	}
	return b
}

// IsNothingToPeek reports whether err means a Peek found the source empty.
func IsNothingToPeek(err error) bool {
	return errors.Is(err, core.ErrNothingToPeek)
}
