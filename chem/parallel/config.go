package parallel

import (
	"context"
	"fmt"
	"runtime"

	"github.com/caarlos0/env/v11"

	"github.com/reid23/chemical/chem/core"
)

// Config controls the worker pool used by ParIter and ParMap.
type Config struct {
	// Workers is the number of concurrent workers. Values below 1 mean
	// "not set" and fall through to the next source.
	Workers int `env:"CHEM_PAR_WORKERS"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Workers resolves the pool size for ctx: a *Config attached with
// core.WithConfig wins, then CHEM_PAR_WORKERS, then runtime.GOMAXPROCS(0).
func Workers(ctx context.Context) int {
	if cfg, ok := core.GetConfig[*Config](ctx); ok && cfg != nil && cfg.Workers > 0 {
		return cfg.Workers
	}
	if cfg, err := LoadConfig(); err == nil && cfg.Workers > 0 {
		return cfg.Workers
	}
	return runtime.GOMAXPROCS(0)
}
