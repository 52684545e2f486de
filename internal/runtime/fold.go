package runtime

import "github.com/aretw0/sortvis/pkg/domain"

// ApplyStep folds one step into the board's data and overlay, in place.
//
// Compare and Swap highlights are cleared before every fold; they only live for
// the tick that produced them. Indices are not bounds checked: a step list must
// only ever be replayed on the board it was built for.
func ApplyStep(b *domain.Board, step domain.Step) {
	o := &b.Overlay
	o.Compare = nil
	o.Swap = nil

	switch s := step.(type) {
	case domain.Compare:
		o.Compare = &domain.Pair{I: s.I, J: s.J}

	case domain.Swap:
		b.Data[s.I], b.Data[s.J] = b.Data[s.J], b.Data[s.I]
		b.IDs[s.I], b.IDs[s.J] = b.IDs[s.J], b.IDs[s.I]
		o.Swap = &domain.Pair{I: s.I, J: s.J}
		o.CandidateLeft = domain.NoIndex
		o.CandidateRight = domain.NoIndex
		// The pivot marker follows its value.
		switch o.Pivot {
		case domain.NoIndex:
		case s.I:
			o.Pivot = s.J
		case s.J:
			o.Pivot = s.I
		}

	case domain.Pivot:
		o.Pivot = s.Index

	case domain.ClearPivot:
		o.Pivot = domain.NoIndex

	case domain.Range:
		// Entering a partition blanks the previous partition's pivot and marks.
		o.Range = &domain.Span{Lo: s.Lo, Hi: s.Hi}
		o.Boundary = s.Lo
		o.BoundaryVisible = true
		o.Pivot = domain.NoIndex
		o.CandidateLeft = domain.NoIndex
		o.CandidateRight = domain.NoIndex

	case domain.ClearRange:
		o.Range = nil
		o.Boundary = domain.NoIndex
		o.BoundaryVisible = false
		o.Pivot = domain.NoIndex
		o.CandidateLeft = domain.NoIndex
		o.CandidateRight = domain.NoIndex

	case domain.Boundary:
		o.Boundary = s.K
		o.BoundaryVisible = s.Visible

	case domain.MarkLeft:
		o.CandidateLeft = s.I

	case domain.MarkRight:
		o.CandidateRight = s.I

	case domain.ClearMarks:
		o.CandidateLeft = domain.NoIndex
		o.CandidateRight = domain.NoIndex
	}
}
