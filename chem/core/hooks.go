package core

import (
	"context"
)

// Hooks holds typed observation callbacks for an Iter.
// All fields are optional - nil means no observation for that event.
// Hooks run synchronously inside the pull that triggers them, so they
// should be fast.
type Hooks[T any] struct {
	OnStart    func()      // First pull on this side
	OnValue    func(T)     // Element handed out
	OnError    func(error) // Genuine failure (never ErrExhausted)
	OnComplete func()      // Source reported ErrExhausted; fires once
}

// hooksKey is unexported to prevent collisions with user context keys.
type hooksKey[T any] struct{}

// WithHooks attaches typed hooks to the context.
// Multiple calls to WithHooks compose in FIFO order - hooks from earlier
// calls are invoked before hooks from later calls.
//
// Example:
//
//	ctx := core.WithHooks(ctx, core.Hooks[int]{
//	    OnValue: func(v int) { log.Printf("Value: %d", v) },
//	})
//	it := core.Observed(ctx, core.Range(0, 10))
func WithHooks[T any](ctx context.Context, hooks Hooks[T]) context.Context {
	if ctx == nil {
		panic("nil context")
	}
	existing := hooksFrom[T](ctx)
	sets := make([]Hooks[T], len(existing)+1)
	copy(sets, existing)
	sets[len(existing)] = hooks
	return context.WithValue(ctx, hooksKey[T]{}, sets)
}

func hooksFrom[T any](ctx context.Context) []Hooks[T] {
	if ctx == nil {
		return nil
	}
	sets, _ := ctx.Value(hooksKey[T]{}).([]Hooks[T])
	return sets
}

// Observed wraps in with every Hooks[T] attached to ctx. It returns in
// unchanged when the context carries none.
func Observed[T any](ctx context.Context, in *Iter[T]) *Iter[T] {
	sets := hooksFrom[T](ctx)
	if len(sets) == 0 {
		return in
	}
	return Hook(in, sets...)
}

// Hook wraps both sides of in so every pull is reported to hooks, in FIFO
// order. Bounds pass through unchanged.
func Hook[T any](in *Iter[T], hooks ...Hooks[T]) *Iter[T] {
	b := in.Bounds()
	var back Cursor[T]
	if c, ok := in.Back(); ok {
		back = &hookCursor[T]{cur: c, hooks: hooks}
	}
	return Derive[T](&hookCursor[T]{cur: in.Front(), hooks: hooks}, back, b)
}

type hookCursor[T any] struct {
	cur     Cursor[T]
	hooks   []Hooks[T]
	started bool
	done    bool
}

func (h *hookCursor[T]) Pull() (T, Mark, error) {
	if !h.started {
		h.started = true
		for _, hs := range h.hooks {
			if hs.OnStart != nil {
				hs.OnStart()
			}
		}
	}
	v, m, err := h.cur.Pull()
	switch {
	case err == nil:
		for _, hs := range h.hooks {
			if hs.OnValue != nil {
				hs.OnValue(v)
			}
		}
	case IsExhausted(err):
		if !h.done {
			h.done = true
			for _, hs := range h.hooks {
				if hs.OnComplete != nil {
					hs.OnComplete()
				}
			}
		}
	default:
		for _, hs := range h.hooks {
			if hs.OnError != nil {
				hs.OnError(err)
			}
		}
	}
	return v, m, err
}

// SafeHooks wraps Hooks[T] to recover from panics in hook functions.
// Use this when hooks are user-provided and a panic should not unwind the
// caller's pull.
type SafeHooks[T any] struct {
	Hooks[T]
	panicHandler func(any)
}

// NewSafeHooks creates SafeHooks from regular Hooks.
// If panicHandler is nil, panics are silently recovered.
func NewSafeHooks[T any](hooks Hooks[T], panicHandler func(any)) SafeHooks[T] {
	if panicHandler == nil {
		panicHandler = func(any) {}
	}
	safe := SafeHooks[T]{panicHandler: panicHandler}
	guard := func(fn func()) {
		defer func() {
			if r := recover(); r != nil {
				safe.panicHandler(r)
			}
		}()
		fn()
	}

	if hooks.OnStart != nil {
		safe.OnStart = func() { guard(hooks.OnStart) }
	}
	if hooks.OnValue != nil {
		safe.OnValue = func(v T) { guard(func() { hooks.OnValue(v) }) }
	}
	if hooks.OnError != nil {
		safe.OnError = func(err error) { guard(func() { hooks.OnError(err) }) }
	}
	if hooks.OnComplete != nil {
		safe.OnComplete = func() { guard(hooks.OnComplete) }
	}
	return safe
}

// WithSafeHooks is a convenience function that wraps hooks with panic recovery
// before attaching them to the context.
func WithSafeHooks[T any](ctx context.Context, hooks Hooks[T], panicHandler func(any)) context.Context {
	return WithHooks(ctx, NewSafeHooks(hooks, panicHandler).Hooks)
}
