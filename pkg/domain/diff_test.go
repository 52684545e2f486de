package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotOf(data []int) Snapshot {
	b := NewBoard(Quick, data)
	b.Steps = []Step{Swap{I: 0, J: 1}, ClearMarks{}}
	b.Armed = true
	return b.Snapshot()
}

func TestDiff_InitialLoad(t *testing.T) {
	s := snapshotOf([]int{3, 1, 2})
	d := Diff(nil, s)
	require.NotNil(t, d)

	assert.Equal(t, Quick, d.Algorithm)
	require.NotNil(t, d.Size)
	assert.Equal(t, 3, *d.Size)
	assert.Len(t, d.Cells, 3)
	assert.Equal(t, StatusArmed, *d.Status)
	assert.NotNil(t, d.Overlay)
}

func TestDiff_NoChanges(t *testing.T) {
	s := snapshotOf([]int{3, 1, 2})
	assert.Nil(t, Diff(&s, s))
}

func TestDiff_SwapOnlyListsMovedCells(t *testing.T) {
	b := NewBoard(Quick, []int{3, 1, 2})
	b.Steps = []Step{Swap{I: 0, J: 1}}
	b.Armed = true
	before := b.Snapshot()

	b.Data[0], b.Data[1] = b.Data[1], b.Data[0]
	b.IDs[0], b.IDs[1] = b.IDs[1], b.IDs[0]
	b.Cursor = 1
	b.Overlay.Swap = &Pair{I: 0, J: 1}
	after := b.Snapshot()

	d := Diff(&before, after)
	require.NotNil(t, d)
	assert.Nil(t, d.Size)
	assert.Equal(t, []Cell{{Index: 0, Value: 1, ID: 2}, {Index: 1, Value: 3, ID: 1}}, d.Cells)
	assert.Equal(t, 1, *d.Cursor)
	assert.Nil(t, d.StepCount)

	assert.Equal(t, after, Patch(before, d))
}

func TestPatch_PivotLifecycle(t *testing.T) {
	b := NewBoard(Quick, []int{2, 4, 1, 3})
	s0 := b.Snapshot()

	b.Overlay.Pivot = 3
	s1 := b.Snapshot()
	require.NotNil(t, s1.PivotHeight)
	assert.InDelta(t, 75.0, *s1.PivotHeight, 1e-9)

	b.Overlay.Pivot = NoIndex
	s2 := b.Snapshot()

	p1 := Patch(s0, Diff(&s0, s1))
	assert.Equal(t, s1, p1)
	assert.Equal(t, s2, Patch(p1, Diff(&p1, s2)))
}

func TestDiff_JSONOmitsUnchanged(t *testing.T) {
	s := snapshotOf([]int{1, 2})
	next := s
	next.Cursor = 1
	next.Status = StatusPlaying

	raw, err := json.Marshal(Diff(&s, next))
	require.NoError(t, err)
	assert.JSONEq(t, `{"algorithm":"quick","status":"playing","cursor":1}`, string(raw))
}
