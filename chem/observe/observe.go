// Package observe attaches monitoring to an Iter without changing what it
// yields: typed hooks, pull statistics, OpenTelemetry counters and slog
// output. Everything here runs synchronously inside the observed pull.
package observe

import (
	"time"

	"github.com/reid23/chemical/chem/core"
)

// Observe invokes hooks on every pull from either side of in.
func Observe[T any](in *core.Iter[T], hooks ...core.Hooks[T]) *core.Iter[T] {
	return core.Hook(in, hooks...)
}

// Stats holds statistics about one side of an Iter.
type Stats struct {
	Values int64
	Errors int64

	StartTime time.Time
	EndTime   time.Time

	ValuesPerSecond float64
}

// Measure collects Stats about the forward side of in. onComplete is called
// with the final numbers once the forward side reports exhaustion.
func Measure[T any](in *core.Iter[T], onComplete func(Stats)) *core.Iter[T] {
	var s Stats
	front := core.Hook(core.New(in.Front()), core.Hooks[T]{
		OnStart: func() { s.StartTime = time.Now() },
		OnValue: func(T) { s.Values++ },
		OnError: func(error) { s.Errors++ },
		OnComplete: func() {
			s.EndTime = time.Now()
			if d := s.EndTime.Sub(s.StartTime).Seconds(); d > 0 {
				s.ValuesPerSecond = float64(s.Values) / d
			}
			if onComplete != nil {
				onComplete(s)
			}
		},
	})
	var back core.Cursor[T]
	if c, ok := in.Back(); ok {
		back = c
	}
	return core.Derive[T](front, back, in.Bounds())
}
