package graph_test

import (
	"testing"

	"github.com/aretw0/sortvis/internal/presentation/graph"
	"github.com/aretw0/sortvis/pkg/domain"
	"github.com/aretw0/sortvis/pkg/steps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var handSteps = []domain.Step{
	domain.Range{Lo: 0, Hi: 4}, domain.Pivot{Index: 4},
	domain.Swap{I: 0, J: 1}, domain.Swap{I: 2, J: 4}, domain.Pivot{Index: 2},
	domain.ClearRange{},
	domain.Range{Lo: 0, Hi: 1}, domain.Pivot{Index: 1}, domain.ClearRange{},
	domain.Range{Lo: 3, Hi: 4}, domain.Pivot{Index: 4}, domain.ClearRange{},
	domain.ClearPivot{}, domain.ClearRange{},
}

func TestPartitionTree(t *testing.T) {
	parts := graph.PartitionTree([]int{2, 1, 5, 4, 3}, handSteps)

	assert.Equal(t, []graph.Partition{
		{ID: "r0_4", Lo: 0, Hi: 4, Pivot: 2, PivotValue: 3, Swaps: 2, FirstStep: 0, LastStep: 5},
		{ID: "r0_1", Lo: 0, Hi: 1, Pivot: 1, PivotValue: 2, Parent: "r0_4", FirstStep: 6, LastStep: 8},
		{ID: "r3_4", Lo: 3, Hi: 4, Pivot: 4, PivotValue: 5, Parent: "r0_4", FirstStep: 9, LastStep: 11},
	}, parts)
}

func TestPartitionTree_FromBuilder(t *testing.T) {
	values := []int{7, 3, 9, 1, 5, 2, 8, 6, 4, 10}
	parts := graph.PartitionTree(values, steps.BuildQuickSteps(values))
	require.NotEmpty(t, parts)

	ids := make(map[string]graph.Partition)
	pivots := make(map[int]bool)
	for _, p := range parts {
		ids[p.ID] = p
		require.NotEqual(t, domain.NoIndex, p.Pivot, p.ID)
		assert.False(t, pivots[p.Pivot], "pivot %d placed twice", p.Pivot)
		pivots[p.Pivot] = true
		// Values are a permutation of 1..n, so a placed pivot sits at value-1.
		assert.Equal(t, p.PivotValue-1, p.Pivot, p.ID)
	}
	assert.Empty(t, parts[0].Parent)
	for _, p := range parts[1:] {
		parent, ok := ids[p.Parent]
		require.True(t, ok, "%s has no parent", p.ID)
		assert.True(t, parent.Lo <= p.Lo && p.Hi <= parent.Hi)
	}
}

func TestGenerateMermaid(t *testing.T) {
	parts := graph.PartitionTree([]int{2, 1, 5, 4, 3}, handSteps)

	assert.Equal(t, `graph TD
    r0_4["0..4 pivot 3"]
    r0_1["0..1 pivot 2"]
    r0_4 -- "left" --> r0_1
    r3_4["3..4 pivot 5"]
    r0_4 -- "right" --> r3_4
`, graph.GenerateMermaid(parts, nil))
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	parts := graph.PartitionTree([]int{2, 1, 5, 4, 3}, handSteps)
	out := graph.GenerateMermaid(parts, &graph.GraphOverlay{Cursor: 7})

	assert.Contains(t, out, "classDef done")
	assert.Contains(t, out, "class r0_4 done;")
	assert.Contains(t, out, "class r0_1 current;")
	assert.NotContains(t, out, "class r3_4")
}

func TestGenerateMermaid_Empty(t *testing.T) {
	assert.Equal(t, "graph TD\n", graph.GenerateMermaid(graph.PartitionTree(nil, nil), nil))
}
