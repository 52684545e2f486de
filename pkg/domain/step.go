package domain

// StepKind is the wire tag of a Step variant.
type StepKind string

const (
	KindCompare    StepKind = "compare"
	KindSwap       StepKind = "swap"
	KindPivot      StepKind = "pivot"
	KindRange      StepKind = "range"
	KindBoundary   StepKind = "boundary"
	KindMarkLeft   StepKind = "markL"
	KindMarkRight  StepKind = "markR"
	KindClearMarks StepKind = "clearMarks"
)

// Step is one atomic, replayable fact about the progress of a sort.
// The set of variants is closed: only types in this package implement it.
type Step interface {
	Kind() StepKind
	isStep()
}

// Compare marks the two indices under comparison for a single tick.
type Compare struct{ I, J int }

// Swap exchanges the values (and labels) at I and J.
type Swap struct{ I, J int }

// Pivot designates the active pivot index.
type Pivot struct{ Index int }

// ClearPivot removes the pivot designation.
type ClearPivot struct{}

// Range designates the sub-array [Lo, Hi] being partitioned.
type Range struct{ Lo, Hi int }

// ClearRange removes the active range and every partition overlay.
type ClearRange struct{}

// Boundary moves the partition boundary to K within [Lo, Hi].
type Boundary struct {
	K, Lo, Hi int
	Visible   bool
}

// MarkLeft flags the candidate found by the left scan.
type MarkLeft struct{ I int }

// MarkRight flags the candidate found by the right scan.
type MarkRight struct{ I int }

// ClearMarks removes both candidate flags.
type ClearMarks struct{}

func (Compare) Kind() StepKind    { return KindCompare }
func (Swap) Kind() StepKind       { return KindSwap }
func (Pivot) Kind() StepKind      { return KindPivot }
func (ClearPivot) Kind() StepKind { return KindPivot }
func (Range) Kind() StepKind      { return KindRange }
func (ClearRange) Kind() StepKind { return KindRange }
func (Boundary) Kind() StepKind   { return KindBoundary }
func (MarkLeft) Kind() StepKind   { return KindMarkLeft }
func (MarkRight) Kind() StepKind  { return KindMarkRight }
func (ClearMarks) Kind() StepKind { return KindClearMarks }

func (Compare) isStep()    {}
func (Swap) isStep()       {}
func (Pivot) isStep()      {}
func (ClearPivot) isStep() {}
func (Range) isStep()      {}
func (ClearRange) isStep() {}
func (Boundary) isStep()   {}
func (MarkLeft) isStep()   {}
func (MarkRight) isStep()  {}
func (ClearMarks) isStep() {}

// CountKind returns how many steps in the list carry the given tag.
func CountKind(steps []Step, kind StepKind) int {
	n := 0
	for _, s := range steps {
		if s.Kind() == kind {
			n++
		}
	}
	return n
}
