package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/sortvis/pkg/domain"
	"github.com/aretw0/sortvis/pkg/ports"
	"github.com/aretw0/sortvis/pkg/steps"
)

// Engine is the replay state machine: it arms boards with their step lists and
// advances them one step at a time.
//
//	idle --Arm--> armed --Advance--> playing --Advance (last step)--> finished
//	  ^______________________Reset (from any state)_____________________|
type Engine struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	cache  ports.StepCache
	now    func() time.Time
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithStepCache memoizes built step lists.
func WithStepCache(cache ports.StepCache) EngineOption {
	return func(e *Engine) {
		e.cache = cache
	}
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates a new replay engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewBoard creates an idle board for alg over a copy of base.
func (e *Engine) NewBoard(alg domain.Algorithm, base []int) *domain.Board {
	return domain.NewBoard(alg, base)
}

// Reset discards every step and overlay and returns a fresh idle board built
// from base. It is valid from any state.
func (e *Engine) Reset(ctx context.Context, b *domain.Board, base []int) *domain.Board {
	fresh := domain.NewBoard(b.Algorithm, base)
	e.logger.Debug("board reset", "algorithm", b.Algorithm, "size", len(base), "discarded_cursor", b.Cursor)
	e.emit(ctx, e.hooks.OnReset, domain.EventReset, fresh, nil)
	return fresh
}

// BuildSteps returns the steps for alg over values, consulting the cache first.
// Cache failures are logged and never fatal: steps can always be rebuilt.
func (e *Engine) BuildSteps(ctx context.Context, alg domain.Algorithm, values []int) ([]domain.Step, error) {
	build, err := steps.For(alg)
	if err != nil {
		return nil, err
	}
	if e.cache == nil {
		return build(values), nil
	}

	cached, err := e.cache.Get(ctx, alg, values)
	if err == nil {
		e.logger.Debug("step cache hit", "algorithm", alg, "size", len(values))
		return cached, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		e.logger.Warn("step cache read failed", "algorithm", alg, "err", err)
	}

	list := build(values)
	if err := e.cache.Put(ctx, alg, values, list); err != nil {
		e.logger.Warn("step cache write failed", "algorithm", alg, "err", err)
	}
	return list, nil
}

// Arm populates the board's steps from its current data, exactly once.
// Calling Arm on an already armed board is a no-op: rebuilding from partially
// replayed data would produce a wrong animation.
func (e *Engine) Arm(ctx context.Context, b *domain.Board) error {
	if b.Armed {
		return nil
	}
	list, err := e.BuildSteps(ctx, b.Algorithm, b.Data)
	if err != nil {
		return fmt.Errorf("failed to arm %s board: %w", b.Algorithm, err)
	}
	b.Steps = list
	b.Armed = true
	e.logger.Debug("board armed", "algorithm", b.Algorithm, "steps", len(list))
	e.emit(ctx, e.hooks.OnArm, domain.EventArm, b, nil)
	return nil
}

// Advance folds the step under the cursor and moves the cursor forward.
// It reports whether the board changed. Idle boards are never advanced, and a
// finished board is left untouched since a tick racing with timer cancellation
// is expected.
func (e *Engine) Advance(ctx context.Context, b *domain.Board) bool {
	if b.Finished || !b.Armed {
		return false
	}
	if b.Cursor < len(b.Steps) {
		step := b.Steps[b.Cursor]
		ApplyStep(b, step)
		b.Cursor++
		e.emit(ctx, e.hooks.OnStep, domain.EventStep, b, step)
	}
	if b.Cursor >= len(b.Steps) {
		b.Finished = true
		e.logger.Debug("board finished", "algorithm", b.Algorithm, "steps", len(b.Steps))
		e.emit(ctx, e.hooks.OnFinish, domain.EventFinish, b, nil)
	}
	return true
}

// Replay arms the board if needed and advances it to the terminal state.
func (e *Engine) Replay(ctx context.Context, b *domain.Board) error {
	if err := e.Arm(ctx, b); err != nil {
		return err
	}
	for e.Advance(ctx, b) {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

// Simulate replays alg over values on a fresh board and returns the final snapshot.
func (e *Engine) Simulate(ctx context.Context, alg domain.Algorithm, values []int) (domain.Snapshot, error) {
	b := domain.NewBoard(alg, values)
	if err := e.Replay(ctx, b); err != nil {
		return domain.Snapshot{}, fmt.Errorf("simulate %s: %w", alg, err)
	}
	return b.Snapshot(), nil
}

func (e *Engine) emit(ctx context.Context, hook func(context.Context, *domain.BoardEvent), typ domain.EventType, b *domain.Board, step domain.Step) {
	if hook == nil {
		return
	}
	hook(ctx, &domain.BoardEvent{
		Timestamp: e.now(),
		Type:      typ,
		Algorithm: b.Algorithm,
		Cursor:    b.Cursor,
		StepCount: len(b.Steps),
		Step:      step,
	})
}
