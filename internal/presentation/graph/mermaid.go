package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/sortvis/pkg/domain"
)

// Partition is one quicksort range and where its pivot landed.
type Partition struct {
	ID         string
	Lo, Hi     int
	Pivot      int // final pivot index, domain.NoIndex when never set
	PivotValue int
	Parent     string
	Swaps      int

	// FirstStep and LastStep bound the steps spent inside this range.
	FirstStep, LastStep int
}

// GraphOverlay highlights replay progress on the tree.
type GraphOverlay struct {
	// Cursor is the number of steps already replayed.
	Cursor int
}

// PartitionTree folds a quicksort step list over values into its partition
// tree. A Range opens a partition, the last Pivot inside it records the final
// pivot position and ClearRange closes it. The parent of a partition is the
// nearest earlier one whose range contains it.
func PartitionTree(values []int, steps []domain.Step) []Partition {
	data := append([]int(nil), values...)
	var parts []Partition
	open := -1

	for k, s := range steps {
		switch s := s.(type) {
		case domain.Range:
			p := Partition{
				ID:        fmt.Sprintf("r%d_%d", s.Lo, s.Hi),
				Lo:        s.Lo,
				Hi:        s.Hi,
				Pivot:     domain.NoIndex,
				FirstStep: k,
				LastStep:  len(steps) - 1,
			}
			for i := len(parts) - 1; i >= 0; i-- {
				if parts[i].Lo <= s.Lo && s.Hi <= parts[i].Hi {
					p.Parent = parts[i].ID
					break
				}
			}
			parts = append(parts, p)
			open = len(parts) - 1
		case domain.Pivot:
			if open >= 0 && s.Index >= 0 && s.Index < len(data) {
				parts[open].Pivot = s.Index
				parts[open].PivotValue = data[s.Index]
			}
		case domain.Swap:
			if s.I >= 0 && s.J >= 0 && s.I < len(data) && s.J < len(data) {
				data[s.I], data[s.J] = data[s.J], data[s.I]
			}
			if open >= 0 {
				parts[open].Swaps++
			}
		case domain.ClearRange:
			if open >= 0 {
				parts[open].LastStep = k
				open = -1
			}
		}
	}
	return parts
}

// GenerateMermaid produces a Mermaid flowchart of a partition tree. Each edge
// is labeled with the side of the parent pivot the child range lies on.
// Overlay styles mark finished partitions and the one being replayed.
func GenerateMermaid(parts []Partition, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	byID := make(map[string]Partition, len(parts))
	for _, p := range parts {
		byID[p.ID] = p

		label := fmt.Sprintf("%d..%d", p.Lo, p.Hi)
		if p.Pivot != domain.NoIndex {
			label += fmt.Sprintf(" pivot %d", p.PivotValue)
		}
		fmt.Fprintf(&sb, "    %s[\"%s\"]\n", p.ID, label)

		parent, ok := byID[p.Parent]
		if !ok {
			continue
		}
		side := "right"
		if p.Hi < parent.Pivot {
			side = "left"
		}
		fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", parent.ID, side, p.ID)
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Black text keeps contrast on light fills under both themes.
		sb.WriteString("    classDef done fill:#e1f5e4,stroke:#2e7d32,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffd166,stroke:#e4a300,stroke-width:4px,color:#000;\n")
		for _, p := range parts {
			switch {
			case p.LastStep < overlay.Cursor:
				fmt.Fprintf(&sb, "    class %s done;\n", p.ID)
			case p.FirstStep < overlay.Cursor:
				fmt.Fprintf(&sb, "    class %s current;\n", p.ID)
			}
		}
	}

	return sb.String()
}
