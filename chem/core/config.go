package core

import (
	"context"
)

type configKey[C any] struct{}

// WithConfig returns a child of ctx carrying cfg. Values are keyed by their
// static type C, so a later WithConfig of the same type shadows an earlier one.
// Adaptors that take a context, such as the parallel pool, read their
// settings from here before falling back to the environment.
func WithConfig[C any](ctx context.Context, cfg C) context.Context {
	return context.WithValue(ctx, configKey[C]{}, cfg)
}

// GetConfig looks up the value of type C stored by WithConfig.
func GetConfig[C any](ctx context.Context) (cfg C, ok bool) {
	if ctx == nil {
		return cfg, false
	}
	cfg, ok = ctx.Value(configKey[C]{}).(C)
	return cfg, ok
}
