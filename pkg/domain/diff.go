package domain

import (
	"reflect"
)

// SnapshotDiff represents the changes between two snapshots of the same board.
// It is designed to be serialized to JSON for partial updates on the client.
type SnapshotDiff struct {
	// Algorithm is always present to identify the target board.
	Algorithm Algorithm `json:"algorithm"`

	Status    *Status `json:"status,omitempty"`
	Cursor    *int    `json:"cursor,omitempty"`
	StepCount *int    `json:"step_count,omitempty"`
	Finished  *bool   `json:"finished,omitempty"`

	// Cells lists positions whose value or label changed.
	// When the board size changed, every position is listed.
	Cells []Cell `json:"cells,omitempty"`

	// Size is set when the number of positions changed; clients should truncate.
	Size *int `json:"size,omitempty"`

	Overlay     *Overlay `json:"overlay,omitempty"`
	PivotHeight *float64 `json:"pivot_height,omitempty"`
}

// Cell is one position of a board.
type Cell struct {
	Index int `json:"index"`
	Value int `json:"value"`
	ID    int `json:"id"`
}

// Diff calculates the difference between old and new.
// If old is nil, it returns a diff representing the entire new snapshot (initial load).
// It returns nil when nothing changed.
func Diff(old *Snapshot, new Snapshot) *SnapshotDiff {
	diff := &SnapshotDiff{Algorithm: new.Algorithm}

	// 1. Scalars
	if old == nil || old.Status != new.Status {
		diff.Status = &new.Status
	}
	if old == nil || old.Cursor != new.Cursor {
		diff.Cursor = &new.Cursor
	}
	if old == nil || old.StepCount != new.StepCount {
		diff.StepCount = &new.StepCount
	}
	if old == nil || old.Finished != new.Finished {
		diff.Finished = &new.Finished
	}

	// 2. Cells
	diff.Cells, diff.Size = diffCells(old, new)

	// 3. Overlay
	if old == nil || !reflect.DeepEqual(old.Overlay, new.Overlay) {
		o := new.Overlay.Clone()
		diff.Overlay = &o
	}
	if old == nil || !reflect.DeepEqual(old.PivotHeight, new.PivotHeight) {
		diff.PivotHeight = new.PivotHeight
	}

	if diff.Status == nil &&
		diff.Cursor == nil &&
		diff.StepCount == nil &&
		diff.Finished == nil &&
		len(diff.Cells) == 0 &&
		diff.Size == nil &&
		diff.Overlay == nil &&
		diff.PivotHeight == nil {
		return nil
	}
	return diff
}

func diffCells(old *Snapshot, new Snapshot) ([]Cell, *int) {
	full := old == nil || len(old.Data) != len(new.Data)

	var cells []Cell
	for i := range new.Data {
		if full || old.Data[i] != new.Data[i] || old.IDs[i] != new.IDs[i] {
			cells = append(cells, Cell{Index: i, Value: new.Data[i], ID: new.IDs[i]})
		}
	}

	if full {
		size := len(new.Data)
		return cells, &size
	}
	return cells, nil
}

// Patch applies a diff onto a snapshot, returning the updated copy.
// Patch(old, Diff(old, new)) reproduces new.
func Patch(old Snapshot, d *SnapshotDiff) Snapshot {
	out := old
	out.Data = append([]int(nil), old.Data...)
	out.IDs = append([]int(nil), old.IDs...)
	out.Overlay = old.Overlay.Clone()
	if d == nil {
		return out
	}

	out.Algorithm = d.Algorithm
	if d.Status != nil {
		out.Status = *d.Status
	}
	if d.Cursor != nil {
		out.Cursor = *d.Cursor
	}
	if d.StepCount != nil {
		out.StepCount = *d.StepCount
	}
	if d.Finished != nil {
		out.Finished = *d.Finished
	}
	if d.Size != nil {
		out.Data = make([]int, *d.Size)
		out.IDs = make([]int, *d.Size)
	}
	for _, c := range d.Cells {
		out.Data[c.Index] = c.Value
		out.IDs[c.Index] = c.ID
	}
	if d.Overlay != nil {
		out.Overlay = d.Overlay.Clone()
	}
	// PivotHeight travels only when it changed; a cleared pivot also clears it.
	if d.PivotHeight != nil {
		h := *d.PivotHeight
		out.PivotHeight = &h
	} else if out.Overlay.Pivot == NoIndex {
		out.PivotHeight = nil
	}
	return out
}
