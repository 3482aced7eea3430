package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/reid23/chemical/chem/core"
)

// Meter records pulls from either side of in as OpenTelemetry counters:
// chem.pulls for elements handed out, chem.errors for genuine failures and
// chem.exhausted when a side runs out. Every measurement carries the
// attribute iterator=name.
func Meter[T any](in *core.Iter[T], meter metric.Meter, name string) (*core.Iter[T], error) {
	pulls, err := meter.Int64Counter("chem.pulls", metric.WithDescription("elements handed out"))
	if err != nil {
		return nil, fmt.Errorf("create pulls counter: %w", err)
	}
	errs, err := meter.Int64Counter("chem.errors", metric.WithDescription("pulls that failed"))
	if err != nil {
		return nil, fmt.Errorf("create errors counter: %w", err)
	}
	exhausted, err := meter.Int64Counter("chem.exhausted", metric.WithDescription("sides that ran out"))
	if err != nil {
		return nil, fmt.Errorf("create exhausted counter: %w", err)
	}

	ctx := context.Background()
	attrs := metric.WithAttributes(attribute.String("iterator", name))
	return core.Hook(in, core.Hooks[T]{
		OnValue:    func(T) { pulls.Add(ctx, 1, attrs) },
		OnError:    func(error) { errs.Add(ctx, 1, attrs) },
		OnComplete: func() { exhausted.Add(ctx, 1, attrs) },
	}), nil
}
