// SPDX-License-Identifier: MIT
// Package apsp: functional options for RelaxAllPairs and Solve.

package apsp

import "context"

// Options configures the relaxation.
//
// Workers    – number of goroutines sharing the i-rows for each fixed k.
//
//	1 (default) runs the sequential kernel.
//
// ReturnPath – if true, Solve also tracks a successor matrix for Path.
// Ctx        – checked once per intermediate vertex; cancellation aborts
//
//	the run with ctx.Err() and leaves the matrix partially relaxed.
type Options struct {
	Workers    int
	ReturnPath bool
	Ctx        context.Context
}

// Option represents a functional option for configuring the relaxation.
type Option func(*Options)

// WithWorkers sets the number of workers for the inner (i, j) loops.
// Values below 1 make RelaxAllPairs return ErrBadWorkers.
func WithWorkers(w int) Option {
	return func(o *Options) {
		o.Workers = w
	}
}

// WithReturnPath enables the successor matrix used by Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithContext attaches a context checked between intermediate vertices.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// DefaultOptions returns the sequential, non-cancellable configuration.
//
// Defaults:
//   - Workers:    1
//   - ReturnPath: false
//   - Ctx:        context.Background()
func DefaultOptions() Options {
	return Options{
		Workers:    1,
		ReturnPath: false,
		Ctx:        context.Background(),
	}
}

// buildOptions applies opts over DefaultOptions and validates the result.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Workers < 1 {
		return cfg, ErrBadWorkers
	}
	if cfg.Ctx == nil {
		cfg.Ctx = context.Background()
	}

	return cfg, nil
}
