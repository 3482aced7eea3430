// Package parallel provides order-preserving concurrent adaptors.
//
// Pulls from the wrapped cursor are always serialized: a cursor has a single
// owner and is not safe for concurrent use. ParIter therefore only overlaps
// pulling with whatever the consumer does between pulls. To run per-element
// work concurrently, put it in ParMap, which applies its function outside
// the pull lock on up to Workers elements at once.
package parallel

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/reid23/chemical/chem/core"
)

// ParIter pulls from in on a pool of workers and yields the elements in
// their original order. See ParMap.
func ParIter[T any](ctx context.Context, in *core.Iter[T]) *core.Iter[T] {
	return ParMap(ctx, in, func(v T) T { return v })
}

// ParMap applies fn to the elements of in on a pool of Workers(ctx)
// goroutines. Output order matches input order regardless of which worker
// finishes first. A panic in fn is recovered and returned as core.ErrPanic
// by the pull for that element.
//
// No work starts until the first pull. At most Workers(ctx) elements are in
// flight or waiting to be yielded at any time. The first error from the
// wrapped cursor ends the pool; it is returned after every element pulled
// before it. Cancelling ctx stops the workers, though a pull or fn call that
// is already running completes in the background. A caller that abandons
// the Iter before it is exhausted should cancel ctx to release the workers.
//
// Both sides get their own pool. Bounds are unchanged.
func ParMap[IN, OUT any](ctx context.Context, in *core.Iter[IN], fn func(IN) OUT) *core.Iter[OUT] {
	if ctx == nil {
		ctx = context.Background()
	}
	n := Workers(ctx)
	var back core.Cursor[OUT]
	if c, ok := in.Back(); ok {
		back = newPool(ctx, c, fn, n)
	}
	return core.Derive[OUT](newPool(ctx, in.Front(), fn, n), back, in.Bounds())
}

type indexed[T any] struct {
	index int
	v     T
	m     core.Mark
	err   error
	last  bool // the wrapped cursor failed; nothing follows
}

// pool is the consumer side of one worker pool. Workers claim an index and
// pull under mu; results are reassembled in index order by Pull.
type pool[IN, OUT any] struct {
	ctx     context.Context
	src     core.Cursor[IN]
	fn      func(IN) OUT
	workers int

	once    sync.Once
	cancel  context.CancelFunc
	sem     chan struct{}
	results chan indexed[OUT]

	pending   map[int]indexed[OUT]
	nextIndex int
	done      bool
}

func newPool[IN, OUT any](ctx context.Context, src core.Cursor[IN], fn func(IN) OUT, workers int) *pool[IN, OUT] {
	if workers <= 0 {
		workers = 1
	}
	return &pool[IN, OUT]{
		ctx:     ctx,
		src:     src,
		fn:      fn,
		workers: workers,
		pending: make(map[int]indexed[OUT]),
	}
}

func (p *pool[IN, OUT]) start() {
	ctx, cancel := context.WithCancel(p.ctx)
	p.cancel = cancel
	p.sem = make(chan struct{}, p.workers)
	p.results = make(chan indexed[OUT], p.workers)

	g, ctx := errgroup.WithContext(ctx)
	var (
		mu      sync.Mutex
		index   int
		stopped bool
	)
	for range p.workers {
		g.Go(func() error {
			for ctx.Err() == nil {
				// A token is held from claiming an index until Pull yields it.
				select {
				case <-ctx.Done():
					return nil
				case p.sem <- struct{}{}:
				}

				mu.Lock()
				if stopped {
					mu.Unlock()
					<-p.sem
					return nil
				}
				r := indexed[OUT]{index: index}
				index++
				v, m, err := p.src.Pull()
				if err != nil {
					stopped = true
				}
				mu.Unlock()

				r.m = m
				if err != nil {
					r.err, r.last = err, true
				} else {
					r.v, r.err = p.apply(v)
				}

				select {
				case <-ctx.Done():
					return nil
				case p.results <- r:
				}
				if r.last {
					return nil
				}
			}
			return nil
		})
	}
	go func() {
		_ = g.Wait()
		close(p.results)
	}()
}

// apply runs fn with panic recovery.
func (p *pool[IN, OUT]) apply(v IN) (out OUT, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = core.NewPanicError(r)
		}
	}()
	return p.fn(v), nil
}

func (p *pool[IN, OUT]) Pull() (OUT, core.Mark, error) {
	var zero OUT
	if p.done {
		return zero, core.Mark{}, core.ErrExhausted
	}
	p.once.Do(p.start)
	for {
		if r, ok := p.pending[p.nextIndex]; ok {
			delete(p.pending, p.nextIndex)
			p.nextIndex++
			<-p.sem
			if r.last {
				p.finish()
			}
			return r.v, r.m, r.err
		}
		r, ok := <-p.results
		if !ok {
			p.finish()
			if err := p.ctx.Err(); err != nil {
				return zero, core.Mark{}, err
			}
			return zero, core.Mark{}, core.ErrExhausted
		}
		p.pending[r.index] = r
	}
}

func (p *pool[IN, OUT]) finish() {
	p.done = true
	p.cancel()
}
