package observe

import (
	"context"
	"log/slog"

	"github.com/reid23/chemical/chem/core"
)

// Log writes every pull from either side of in to logger: values at Debug,
// exhaustion at Info and genuine errors at Error. Records carry the
// iterator name and the side ("front" or "back") that was pulled, and each
// side counts its own values. A nil logger uses slog.Default().
func Log[T any](in *core.Iter[T], logger *slog.Logger, name string) *core.Iter[T] {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("iterator", name))
	front := core.Hook(core.New(in.Front()), logHooks[T](logger.With(slog.String("side", "front"))))
	var back core.Cursor[T]
	if c, ok := in.Back(); ok {
		back = core.Hook(core.New(c), logHooks[T](logger.With(slog.String("side", "back"))))
	}
	return core.Derive[T](front, back, in.Bounds())
}

func logHooks[T any](logger *slog.Logger) core.Hooks[T] {
	ctx := context.Background()
	var n int
	return core.Hooks[T]{
		OnValue: func(v T) {
			n++
			if logger.Enabled(ctx, slog.LevelDebug) {
				logger.DebugContext(ctx, "value", slog.Any("value", v))
			}
		},
		OnError: func(err error) {
			logger.ErrorContext(ctx, "pull failed", slog.Any("error", err))
		},
		OnComplete: func() {
			logger.InfoContext(ctx, "exhausted", slog.Int("values", n))
		},
	}
}
