package tui

import "github.com/aretw0/sortvis/pkg/domain"

// Class is the highlight a single bar receives in a frame.
type Class int

const (
	ClassPlain Class = iota
	ClassCompare
	ClassSwap
	ClassPivot
	ClassCandidateLeft
	ClassCandidateRight
	ClassSorted
	ClassOutside
)

// Palette colors, as hex strings understood by termenv and lipgloss.
const (
	ColorBar       = "#7aa2f7"
	ColorDim       = "#3b4261"
	ColorCompare   = "#f7768e"
	ColorSwap      = "#ff4d6d"
	ColorPivot     = "#ffd166"
	ColorSorted    = "#9ece6a"
	ColorCandLeft  = "#d58cff"
	ColorCandRight = "#7affc6"
	ColorBoundary  = "#6df3ff"
	ColorPivotLine = "#ffad5b"
	ColorHeader    = "#cbd5ff"
	ColorMuted     = "#aab3d0"
)

var classColors = map[Class]string{
	ClassPlain:          ColorBar,
	ClassCompare:        ColorCompare,
	ClassSwap:           ColorSwap,
	ClassPivot:          ColorPivot,
	ClassCandidateLeft:  ColorCandLeft,
	ClassCandidateRight: ColorCandRight,
	ClassSorted:         ColorSorted,
	ClassOutside:        ColorDim,
}

// classMarks tag the row under the bars so highlights survive on colorless terminals.
var classMarks = map[Class]byte{
	ClassCompare:        '^',
	ClassSwap:           'x',
	ClassPivot:          'p',
	ClassCandidateLeft:  'l',
	ClassCandidateRight: 'r',
}

// CellClass resolves the highlight of bar i. A finished board is all sorted;
// otherwise the one-tick swap wins over compare, which wins over the
// persistent pivot and candidate marks. Bars outside the active range are dimmed.
func CellClass(s domain.Snapshot, i int) Class {
	o := s.Overlay
	switch {
	case s.Finished:
		return ClassSorted
	case o.Swap != nil && (o.Swap.I == i || o.Swap.J == i):
		return ClassSwap
	case o.Compare != nil && (o.Compare.I == i || o.Compare.J == i):
		return ClassCompare
	case o.Pivot == i:
		return ClassPivot
	case o.CandidateLeft == i:
		return ClassCandidateLeft
	case o.CandidateRight == i:
		return ClassCandidateRight
	case o.Range != nil && (i < o.Range.Lo || i > o.Range.Hi):
		return ClassOutside
	}
	return ClassPlain
}
