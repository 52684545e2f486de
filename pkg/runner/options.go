package runner

import (
	"log/slog"

	"github.com/aretw0/sortvis/internal/runtime"
	"github.com/aretw0/sortvis/pkg/dataset"
	"github.com/aretw0/sortvis/pkg/ports"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithEngine configures the replay engine.
// If not provided, a default engine sharing the runner's logger is created.
func WithEngine(engine *runtime.Engine) Option {
	return func(r *Runner) {
		r.engine = engine
	}
}

// WithRenderer configures where snapshots are pushed after every change.
func WithRenderer(renderer ports.Renderer) Option {
	return func(r *Runner) {
		r.renderer = renderer
	}
}

// WithTickerFactory replaces the wall-clock ticker, e.g. with a ManualClock.
func WithTickerFactory(factory TickerFactory) Option {
	return func(r *Runner) {
		if factory != nil {
			r.tickers = factory
		}
	}
}

// WithGenerator configures the source of base arrays.
func WithGenerator(gen *dataset.Generator) Option {
	return func(r *Runner) {
		r.gen = gen
	}
}

// WithSize sets the initial array size. Out of range values are clamped.
func WithSize(n int) Option {
	return func(r *Runner) {
		r.size = n
	}
}

// WithSpeed sets the initial speed. Out of range values are clamped.
func WithSpeed(speed float64) Option {
	return func(r *Runner) {
		r.speed = speed
	}
}
