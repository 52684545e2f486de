package runtime_test

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/aretw0/sortvis/internal/runtime"
	"github.com/aretw0/sortvis/pkg/adapters/memory"
	"github.com/aretw0/sortvis/pkg/dataset"
	"github.com/aretw0/sortvis/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_ArmIsIdempotent(t *testing.T) {
	ctx := context.Background()
	e := runtime.NewEngine()
	b := e.NewBoard(domain.Bubble, []int{2, 1, 3})
	assert.Equal(t, domain.StatusIdle, b.Status())

	require.NoError(t, e.Arm(ctx, b))
	assert.Equal(t, domain.StatusArmed, b.Status())
	assert.Len(t, b.Steps, 4) // 3 compares + 1 swap

	e.Advance(ctx, b)
	stepsBefore := b.Steps
	require.NoError(t, e.Arm(ctx, b))
	assert.Equal(t, 1, b.Cursor)
	assert.Equal(t, stepsBefore, b.Steps)
}

func TestEngine_AdvanceIdleBoard(t *testing.T) {
	e := runtime.NewEngine()
	b := e.NewBoard(domain.Quick, []int{1})
	assert.False(t, e.Advance(context.Background(), b))
	assert.False(t, b.Finished)
}

func TestEngine_AdvanceToFinished(t *testing.T) {
	ctx := context.Background()
	e := runtime.NewEngine()
	b := e.NewBoard(domain.Bubble, []int{2, 1})
	require.NoError(t, e.Arm(ctx, b))
	require.Len(t, b.Steps, 2)

	assert.True(t, e.Advance(ctx, b))
	assert.Equal(t, domain.StatusPlaying, b.Status())
	assert.True(t, e.Advance(ctx, b))
	assert.Equal(t, domain.StatusFinished, b.Status())
	assert.Equal(t, []int{1, 2}, b.Data)

	snap := b.Snapshot()
	assert.False(t, e.Advance(ctx, b), "finished boards ignore ticks")
	assert.Equal(t, snap, b.Snapshot())
}

func TestEngine_EmptyStepListFinishesOnFirstAdvance(t *testing.T) {
	ctx := context.Background()
	e := runtime.NewEngine()
	b := e.NewBoard(domain.Quick, []int{7})
	require.NoError(t, e.Arm(ctx, b))

	// A single element still gets the pivot/range trailer.
	b.Steps = nil
	assert.True(t, e.Advance(ctx, b))
	assert.True(t, b.Finished)
	assert.Zero(t, b.Cursor)
}

func TestEngine_Reset(t *testing.T) {
	ctx := context.Background()
	e := runtime.NewEngine()
	b := e.NewBoard(domain.Quick, []int{3, 1, 2})
	require.NoError(t, e.Replay(ctx, b))

	fresh := e.Reset(ctx, b, []int{5, 4, 3, 2, 1})
	assert.Equal(t, domain.Quick, fresh.Algorithm)
	assert.Equal(t, domain.StatusIdle, fresh.Status())
	assert.Equal(t, []int{5, 4, 3, 2, 1}, fresh.Data)
	assert.Empty(t, fresh.Steps)
}

func TestEngine_ReplaySortsAndPermutesLabels(t *testing.T) {
	ctx := context.Background()
	e := runtime.NewEngine()
	gen := dataset.NewSeededGenerator(7)

	for _, alg := range domain.Algorithms() {
		for range 25 {
			base := gen.GenArray(20)
			b := e.NewBoard(alg, base)
			require.NoError(t, e.Replay(ctx, b))

			assert.True(t, slices.IsSorted(b.Data), "%s did not sort %v", alg, base)
			assert.True(t, dataset.IsPermutation(b.IDs))
			for i, id := range b.IDs {
				assert.Equal(t, base[id-1], b.Data[i], "label %d lost its value", id)
			}
			assert.Equal(t, domain.ClearedOverlay().Pivot, b.Overlay.Pivot)
			assert.Nil(t, b.Overlay.Range)
		}
	}
}

func TestEngine_Deterministic(t *testing.T) {
	ctx := context.Background()
	base := []int{8, 3, 5, 1, 9, 2, 7, 4, 6}

	record := func() []domain.Snapshot {
		e := runtime.NewEngine()
		b := e.NewBoard(domain.Quick, base)
		require.NoError(t, e.Arm(ctx, b))
		var out []domain.Snapshot
		for e.Advance(ctx, b) {
			out = append(out, b.Snapshot())
		}
		return out
	}

	first := record()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, record())
}

func TestEngine_Hooks(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var events []domain.BoardEvent
	record := func(_ context.Context, ev *domain.BoardEvent) { events = append(events, *ev) }

	e := runtime.NewEngine(
		runtime.WithClock(func() time.Time { return fixed }),
		runtime.WithLifecycleHooks(domain.LifecycleHooks{
			OnArm:    record,
			OnStep:   record,
			OnFinish: record,
			OnReset:  record,
		}),
	)
	b := e.NewBoard(domain.Bubble, []int{2, 1})
	require.NoError(t, e.Replay(ctx, b))
	e.Reset(ctx, b, []int{1, 2})

	types := make([]domain.EventType, 0, len(events))
	for _, ev := range events {
		types = append(types, ev.Type)
		assert.Equal(t, fixed, ev.Timestamp)
	}
	assert.Equal(t, []domain.EventType{
		domain.EventArm, domain.EventStep, domain.EventStep, domain.EventFinish, domain.EventReset,
	}, types)
	assert.Equal(t, domain.Compare{I: 0, J: 1}, events[1].Step)
	assert.Equal(t, 2, events[2].Cursor)
}

func TestEngine_BuildStepsUsesCache(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewCache()
	e := runtime.NewEngine(runtime.WithStepCache(cache))
	values := []int{4, 2, 3, 1}

	first, err := e.BuildSteps(ctx, domain.Quick, values)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())

	// Poison the entry to prove the second call is served from the cache.
	require.NoError(t, cache.Put(ctx, domain.Quick, values, []domain.Step{domain.ClearMarks{}}))
	second, err := e.BuildSteps(ctx, domain.Quick, values)
	require.NoError(t, err)
	assert.Equal(t, []domain.Step{domain.ClearMarks{}}, second)
	assert.NotEqual(t, first, second)
}

func TestEngine_UnknownAlgorithm(t *testing.T) {
	e := runtime.NewEngine()
	_, err := e.Simulate(context.Background(), domain.Algorithm("heap"), []int{1})
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}

func TestEngine_Simulate(t *testing.T) {
	e := runtime.NewEngine()
	snap, err := e.Simulate(context.Background(), domain.Bubble, []int{3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, snap.Data)
	assert.Equal(t, []int{3, 2, 1}, snap.IDs)
	assert.Equal(t, domain.StatusFinished, snap.Status)
	assert.Equal(t, 6, snap.StepCount)
}

func TestEngine_ReplayHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := runtime.NewEngine()
	b := e.NewBoard(domain.Bubble, []int{3, 2, 1})
	assert.ErrorIs(t, e.Replay(ctx, b), context.Canceled)
}
