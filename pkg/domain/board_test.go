package domain_test

import (
	"context"
	"testing"

	"github.com/aretw0/sortvis/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	base := []int{3, 1, 2}
	b := domain.NewBoard(domain.Bubble, base)

	assert.Equal(t, []int{3, 1, 2}, b.Data)
	assert.Equal(t, []int{1, 2, 3}, b.IDs)
	assert.Equal(t, domain.StatusIdle, b.Status())
	assert.Equal(t, domain.ClearedOverlay(), b.Overlay)

	b.Data[0] = 99
	assert.Equal(t, 3, base[0], "board must own a private copy")
}

func TestBoard_Status(t *testing.T) {
	b := domain.NewBoard(domain.Quick, []int{2, 1})
	b.Steps = []domain.Step{domain.Swap{I: 0, J: 1}}
	b.Armed = true
	assert.Equal(t, domain.StatusArmed, b.Status())

	b.Cursor = 1
	assert.Equal(t, domain.StatusPlaying, b.Status())

	b.Finished = true
	assert.Equal(t, domain.StatusFinished, b.Status())
	assert.Zero(t, b.Remaining())
}

func TestBoard_SnapshotIsDeepCopy(t *testing.T) {
	b := domain.NewBoard(domain.Quick, []int{4, 2, 8})
	b.Overlay.Range = &domain.Span{Lo: 0, Hi: 2}
	b.Overlay.Compare = &domain.Pair{I: 0, J: 2}
	b.Overlay.Pivot = 2

	s := b.Snapshot()
	b.Data[0] = 1
	b.IDs[0] = 3
	b.Overlay.Range.Hi = 1
	b.Overlay.Compare.I = 1

	assert.Equal(t, []int{4, 2, 8}, s.Data)
	assert.Equal(t, []int{1, 2, 3}, s.IDs)
	assert.Equal(t, 2, s.Overlay.Range.Hi)
	assert.Equal(t, 0, s.Overlay.Compare.I)
	require.NotNil(t, s.PivotHeight)
	assert.InDelta(t, 100.0, *s.PivotHeight, 1e-9)
}

func TestParseAlgorithm(t *testing.T) {
	alg, err := domain.ParseAlgorithm(" Quick ")
	require.NoError(t, err)
	assert.Equal(t, domain.Quick, alg)

	_, err = domain.ParseAlgorithm("heap")
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{OnStep: func(_ context.Context, _ *domain.BoardEvent) { calls = append(calls, "a") }}
	b := domain.LifecycleHooks{
		OnStep:   func(_ context.Context, _ *domain.BoardEvent) { calls = append(calls, "b") },
		OnFinish: func(_ context.Context, _ *domain.BoardEvent) { calls = append(calls, "finish") },
	}

	merged := a.Merge(b)
	merged.OnStep(context.Background(), &domain.BoardEvent{})
	merged.OnFinish(context.Background(), &domain.BoardEvent{})
	assert.Nil(t, merged.OnArm)
	assert.Equal(t, []string{"a", "b", "finish"}, calls)
}
