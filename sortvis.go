package sortvis

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/sortvis/internal/runtime"
	"github.com/aretw0/sortvis/pkg/dataset"
	"github.com/aretw0/sortvis/pkg/domain"
	"github.com/aretw0/sortvis/pkg/ports"
	"github.com/aretw0/sortvis/pkg/runner"
)

// Visualizer is the high-level entry point of the library.
// It wraps the replay engine and the runner and provides a simplified API for consumers.
type Visualizer struct {
	engine *runtime.Engine
	runner *runner.Runner

	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	cache    ports.StepCache
	renderer ports.Renderer
	tickers  runner.TickerFactory
	size     int
	speed    float64
	seed     *uint64
}

// Option defines a functional option for configuring the Visualizer.
type Option func(*Visualizer)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Visualizer) {
		v.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(v *Visualizer) {
		v.hooks = v.hooks.Merge(hooks)
	}
}

// WithRenderer sets the UI binding receiving snapshots after every change.
func WithRenderer(r ports.Renderer) Option {
	return func(v *Visualizer) {
		v.renderer = r
	}
}

// WithSize sets the initial array size (clamped to [5, 50]).
func WithSize(n int) Option {
	return func(v *Visualizer) {
		v.size = n
	}
}

// WithSpeed sets the initial speed multiplier (clamped to [0.2, 10]).
func WithSpeed(speed float64) Option {
	return func(v *Visualizer) {
		v.speed = speed
	}
}

// WithSeed makes the generated arrays reproducible.
func WithSeed(seed uint64) Option {
	return func(v *Visualizer) {
		v.seed = &seed
	}
}

// WithStepCache memoizes step lists, e.g. in Redis.
func WithStepCache(cache ports.StepCache) Option {
	return func(v *Visualizer) {
		v.cache = cache
	}
}

// WithTickerFactory replaces wall-clock ticks, mostly for tests.
func WithTickerFactory(f runner.TickerFactory) Option {
	return func(v *Visualizer) {
		v.tickers = f
	}
}

// New creates a Visualizer with two idle boards over a shared random array.
func New(opts ...Option) *Visualizer {
	v := &Visualizer{
		size:  dataset.DefaultSize,
		speed: 1,
	}
	for _, opt := range opts {
		opt(v)
	}

	if v.logger == nil {
		v.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	engineOpts := []runtime.EngineOption{
		runtime.WithLogger(v.logger),
		runtime.WithLifecycleHooks(v.hooks),
	}
	if v.cache != nil {
		engineOpts = append(engineOpts, runtime.WithStepCache(v.cache))
	}
	v.engine = runtime.NewEngine(engineOpts...)

	gen := dataset.NewGenerator()
	if v.seed != nil {
		gen = dataset.NewSeededGenerator(*v.seed)
	}

	runnerOpts := []runner.Option{
		runner.WithLogger(v.logger),
		runner.WithEngine(v.engine),
		runner.WithGenerator(gen),
		runner.WithSize(v.size),
		runner.WithSpeed(v.speed),
		runner.WithTickerFactory(v.tickers),
	}
	if v.renderer != nil {
		runnerOpts = append(runnerOpts, runner.WithRenderer(v.renderer))
	}
	v.runner = runner.NewRunner(runnerOpts...)
	return v
}

// Play arms both boards and starts their tickers.
func (v *Visualizer) Play(ctx context.Context) error {
	return v.runner.Play(ctx)
}

// Pause stops playback, keeping every board's cursor.
func (v *Visualizer) Pause() {
	v.runner.Pause()
}

// SetSpeed changes the speed, rescheduling live tickers. It returns the applied speed.
func (v *Visualizer) SetSpeed(speed float64) float64 {
	return v.runner.SetSpeed(speed)
}

// Shuffle stops playback and loads a new random array.
func (v *Visualizer) Shuffle(ctx context.Context) {
	v.runner.Shuffle(ctx)
}

// Resize stops playback and loads a new random array of size n. It returns the applied size.
func (v *Visualizer) Resize(ctx context.Context, n int) int {
	return v.runner.Resize(ctx, n)
}

// Load stops playback and loads values into every board.
func (v *Visualizer) Load(ctx context.Context, values []int) {
	v.runner.Load(ctx, values)
}

// Snapshots returns the visible state of every board.
func (v *Visualizer) Snapshots() []domain.Snapshot {
	return v.runner.Snapshots()
}

// Wait blocks until both boards have finished, the boards are replaced by a
// Shuffle, Resize or Load, or ctx is done.
func (v *Visualizer) Wait(ctx context.Context) error {
	return v.runner.Wait(ctx)
}

// Playing reports whether playback is running.
func (v *Visualizer) Playing() bool {
	return v.runner.Playing()
}

// Speed returns the current speed setting.
func (v *Visualizer) Speed() float64 {
	return v.runner.Speed()
}

// Size returns the current array size.
func (v *Visualizer) Size() int {
	return v.runner.Size()
}

// Interval returns the tick period at the current speed.
func (v *Visualizer) Interval() time.Duration {
	return v.runner.Interval()
}

// Runner exposes the underlying runner, e.g. for key controls.
func (v *Visualizer) Runner() *runner.Runner {
	return v.runner
}

// BuildSteps returns the step list of alg over values without touching the boards.
func (v *Visualizer) BuildSteps(ctx context.Context, alg domain.Algorithm, values []int) ([]domain.Step, error) {
	return v.engine.BuildSteps(ctx, alg, values)
}

// Simulate replays alg over values on a detached board and returns its final state.
func (v *Visualizer) Simulate(ctx context.Context, alg domain.Algorithm, values []int) (domain.Snapshot, error) {
	return v.engine.Simulate(ctx, alg, values)
}

var _ ports.Replayer = (*Visualizer)(nil)
