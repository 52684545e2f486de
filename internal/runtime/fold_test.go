package runtime

import (
	"testing"

	"github.com/aretw0/sortvis/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestApplyStep(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(b *domain.Board)
		step   domain.Step
		verify func(t *testing.T, b *domain.Board)
	}{
		{
			name: "compare highlights without touching data",
			step: domain.Compare{I: 0, J: 2},
			verify: func(t *testing.T, b *domain.Board) {
				assert.Equal(t, &domain.Pair{I: 0, J: 2}, b.Overlay.Compare)
				assert.Equal(t, []int{3, 1, 2}, b.Data)
			},
		},
		{
			name: "swap moves values and labels",
			setup: func(b *domain.Board) {
				b.Overlay.CandidateLeft = 0
				b.Overlay.CandidateRight = 1
			},
			step: domain.Swap{I: 0, J: 1},
			verify: func(t *testing.T, b *domain.Board) {
				assert.Equal(t, []int{1, 3, 2}, b.Data)
				assert.Equal(t, []int{2, 1, 3}, b.IDs)
				assert.Equal(t, &domain.Pair{I: 0, J: 1}, b.Overlay.Swap)
				assert.Equal(t, domain.NoIndex, b.Overlay.CandidateLeft)
				assert.Equal(t, domain.NoIndex, b.Overlay.CandidateRight)
			},
		},
		{
			name:  "swap relocates the pivot marker",
			setup: func(b *domain.Board) { b.Overlay.Pivot = 2 },
			step:  domain.Swap{I: 2, J: 0},
			verify: func(t *testing.T, b *domain.Board) {
				assert.Equal(t, 0, b.Overlay.Pivot)
			},
		},
		{
			name:  "swap leaves an unrelated pivot",
			setup: func(b *domain.Board) { b.Overlay.Pivot = 2 },
			step:  domain.Swap{I: 0, J: 1},
			verify: func(t *testing.T, b *domain.Board) {
				assert.Equal(t, 2, b.Overlay.Pivot)
			},
		},
		{
			name:  "compare clears the previous swap",
			setup: func(b *domain.Board) { b.Overlay.Swap = &domain.Pair{I: 0, J: 1} },
			step:  domain.Compare{I: 1, J: 2},
			verify: func(t *testing.T, b *domain.Board) {
				assert.Nil(t, b.Overlay.Swap)
			},
		},
		{
			name: "range resets the partition overlay",
			setup: func(b *domain.Board) {
				b.Overlay.Pivot = 1
				b.Overlay.CandidateLeft = 0
			},
			step: domain.Range{Lo: 0, Hi: 2},
			verify: func(t *testing.T, b *domain.Board) {
				assert.Equal(t, &domain.Span{Lo: 0, Hi: 2}, b.Overlay.Range)
				assert.Equal(t, 0, b.Overlay.Boundary)
				assert.True(t, b.Overlay.BoundaryVisible)
				assert.Equal(t, domain.NoIndex, b.Overlay.Pivot)
				assert.Equal(t, domain.NoIndex, b.Overlay.CandidateLeft)
			},
		},
		{
			name: "clear range blanks everything",
			setup: func(b *domain.Board) {
				b.Overlay.Range = &domain.Span{Lo: 0, Hi: 2}
				b.Overlay.Boundary = 1
				b.Overlay.BoundaryVisible = true
				b.Overlay.Pivot = 2
			},
			step: domain.ClearRange{},
			verify: func(t *testing.T, b *domain.Board) {
				assert.Equal(t, domain.ClearedOverlay(), b.Overlay)
			},
		},
		{
			name: "hidden boundary",
			step: domain.Boundary{K: 1, Lo: 0, Hi: 2},
			verify: func(t *testing.T, b *domain.Board) {
				assert.Equal(t, 1, b.Overlay.Boundary)
				assert.False(t, b.Overlay.BoundaryVisible)
			},
		},
		{
			name: "pivot set and cleared",
			step: domain.Pivot{Index: 2},
			verify: func(t *testing.T, b *domain.Board) {
				assert.Equal(t, 2, b.Overlay.Pivot)
				ApplyStep(b, domain.ClearPivot{})
				assert.Equal(t, domain.NoIndex, b.Overlay.Pivot)
			},
		},
		{
			name: "marks",
			step: domain.MarkLeft{I: 0},
			verify: func(t *testing.T, b *domain.Board) {
				ApplyStep(b, domain.MarkRight{I: 1})
				assert.Equal(t, 0, b.Overlay.CandidateLeft)
				assert.Equal(t, 1, b.Overlay.CandidateRight)
				ApplyStep(b, domain.ClearMarks{})
				assert.Equal(t, domain.NoIndex, b.Overlay.CandidateLeft)
				assert.Equal(t, domain.NoIndex, b.Overlay.CandidateRight)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := domain.NewBoard(domain.Quick, []int{3, 1, 2})
			if tt.setup != nil {
				tt.setup(b)
			}
			ApplyStep(b, tt.step)
			tt.verify(t, b)
		})
	}
}
