package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/sortvis/internal/runtime"
	"github.com/aretw0/sortvis/pkg/dataset"
	"github.com/aretw0/sortvis/pkg/domain"
	"github.com/aretw0/sortvis/pkg/pacing"
	"github.com/aretw0/sortvis/pkg/ports"
)

// Runner drives the side-by-side replay of every algorithm over a shared base
// array. It owns one tick handle per board; all ticks and control calls are
// serialized under its mutex.
type Runner struct {
	mu sync.Mutex

	engine   *runtime.Engine
	logger   *slog.Logger
	renderer ports.Renderer
	tickers  TickerFactory
	gen      *dataset.Generator

	size  int
	speed float64

	base    []int
	boards  []*domain.Board
	handles map[domain.Algorithm]Ticker
	// epoch identifies the live ticker set; ticks carrying an older epoch are dropped.
	epoch uint64

	ctx     context.Context
	playing bool
	// stopped is closed when the current play session ends (pause, reset or finish).
	stopped chan struct{}
	// done is closed once every board of the current base array has finished,
	// or when that base array is replaced.
	done chan struct{}
}

// NewRunner creates a runner with idle boards over a freshly generated array.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		tickers: NewTimeTicker,
		size:    dataset.DefaultSize,
		speed:   pacing.DefaultSpeed,
		handles: make(map[domain.Algorithm]Ticker),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.engine == nil {
		r.engine = runtime.NewEngine(runtime.WithLogger(r.logger))
	}
	if r.gen == nil {
		r.gen = dataset.NewGenerator()
	}
	r.size = dataset.ClampSize(r.size)
	r.speed = pacing.ClampSpeed(r.speed)
	r.resetLocked(context.Background(), r.gen.GenArray(r.size))
	return r
}

// Play arms every board and starts one ticker per unfinished board.
// Calling Play while already playing is a no-op. Cancelling ctx pauses playback.
func (r *Runner) Play(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.playing {
		return nil
	}
	for _, b := range r.boards {
		if err := r.engine.Arm(ctx, b); err != nil {
			return fmt.Errorf("play: %w", err)
		}
	}
	if r.allFinished() {
		r.logger.Debug("play ignored, every board finished")
		return nil
	}

	r.ctx = ctx
	r.playing = true
	r.stopped = make(chan struct{})
	r.scheduleLocked()
	r.renderLocked()

	go r.watch(ctx, r.stopped)
	return nil
}

func (r *Runner) watch(ctx context.Context, stopped <-chan struct{}) {
	select {
	case <-ctx.Done():
		r.Pause()
	case <-stopped:
	}
}

// Pause stops every ticker and keeps the boards where they are.
func (r *Runner) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

// SetSpeed clamps and stores the speed, rescheduling live tickers at the new
// interval without losing any board's cursor. It returns the applied speed.
func (r *Runner) SetSpeed(speed float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.speed = pacing.ClampSpeed(speed)
	if r.playing {
		r.cancelTickersLocked()
		r.scheduleLocked()
	}
	r.logger.Debug("speed changed", "speed", r.speed, "interval", pacing.ComputeInterval(r.speed))
	return r.speed
}

// Shuffle stops playback and resets every board to a new random base array.
func (r *Runner) Shuffle(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
	r.resetLocked(ctx, r.gen.GenArray(r.size))
	r.renderLocked()
}

// Resize clamps n to the supported sizes and shuffles at the new size.
// It returns the applied size.
func (r *Runner) Resize(ctx context.Context, n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.size = dataset.ClampSize(n)
	r.stopLocked()
	r.resetLocked(ctx, r.gen.GenArray(r.size))
	r.renderLocked()
	return r.size
}

// Load stops playback and resets every board to a copy of values.
func (r *Runner) Load(ctx context.Context, values []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
	r.size = len(values)
	r.resetLocked(ctx, values)
	r.renderLocked()
}

// Wait blocks until every board has finished or ctx is done. A Shuffle, Resize
// or Load while waiting also releases the waiter, since the boards it was
// waiting on no longer exist.
func (r *Runner) Wait(ctx context.Context) error {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshots returns a copy of every board's visible state, in display order.
func (r *Runner) Snapshots() []domain.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotsLocked()
}

// Base returns a copy of the shared input array.
func (r *Runner) Base() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.base...)
}

// Playing reports whether tickers are live.
func (r *Runner) Playing() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.playing
}

// Speed returns the current speed setting.
func (r *Runner) Speed() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.speed
}

// Size returns the current array size.
func (r *Runner) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}

// Interval returns the tick period at the current speed.
func (r *Runner) Interval() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return pacing.ComputeInterval(r.speed)
}

// tick advances one board. Ticks scheduled before the last reschedule are dropped.
func (r *Runner) tick(alg domain.Algorithm, epoch uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	handle, ok := r.handles[alg]
	if !r.playing || !ok || r.epoch != epoch {
		return
	}
	b := r.board(alg)
	if b == nil || !r.engine.Advance(r.ctx, b) {
		return
	}
	if b.Finished {
		handle.Stop()
		delete(r.handles, alg)
	}
	finished := r.allFinished()
	if finished {
		r.logger.Debug("every board finished")
		r.stopLocked()
	}
	// The final frame is rendered before waiters are released.
	r.renderLocked()
	if finished {
		r.releaseWaitersLocked()
	}
}

func (r *Runner) scheduleLocked() {
	r.epoch++
	epoch := r.epoch
	interval := pacing.ComputeInterval(r.speed)
	for _, b := range r.boards {
		if b.Finished {
			continue
		}
		alg := b.Algorithm
		r.handles[alg] = r.tickers(interval, func() { r.tick(alg, epoch) })
	}
}

func (r *Runner) cancelTickersLocked() {
	r.epoch++
	for alg, h := range r.handles {
		h.Stop()
		delete(r.handles, alg)
	}
}

func (r *Runner) releaseWaitersLocked() {
	select {
	case <-r.done:
	default:
		close(r.done)
	}
}

func (r *Runner) stopLocked() {
	r.cancelTickersLocked()
	if r.playing {
		r.playing = false
		close(r.stopped)
	}
}

func (r *Runner) resetLocked(ctx context.Context, base []int) {
	r.base = append([]int(nil), base...)
	if r.boards == nil {
		for _, alg := range domain.Algorithms() {
			r.boards = append(r.boards, r.engine.NewBoard(alg, r.base))
		}
	} else {
		for i, b := range r.boards {
			r.boards[i] = r.engine.Reset(ctx, b, r.base)
		}
		r.releaseWaitersLocked()
	}
	r.done = make(chan struct{})
}

func (r *Runner) board(alg domain.Algorithm) *domain.Board {
	for _, b := range r.boards {
		if b.Algorithm == alg {
			return b
		}
	}
	return nil
}

func (r *Runner) allFinished() bool {
	for _, b := range r.boards {
		if !b.Finished {
			return false
		}
	}
	return true
}

func (r *Runner) snapshotsLocked() []domain.Snapshot {
	out := make([]domain.Snapshot, len(r.boards))
	for i, b := range r.boards {
		out[i] = b.Snapshot()
	}
	return out
}

func (r *Runner) renderLocked() {
	if r.renderer == nil {
		return
	}
	ctx := r.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if err := r.renderer.Render(ctx, r.snapshotsLocked()); err != nil {
		r.logger.Warn("render failed", "err", err)
	}
}
