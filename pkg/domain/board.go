package domain

import (
	"fmt"
	"strings"
)

// NoIndex marks an unset index overlay (no pivot, no candidate, no boundary).
const NoIndex = -1

// Algorithm identifies which sort a Board replays.
type Algorithm string

const (
	Bubble Algorithm = "bubble"
	Quick  Algorithm = "quick"
)

// Algorithms lists the supported algorithms in display order.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, Quick}
}

// ParseAlgorithm resolves a user supplied algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(name))) {
	case Bubble:
		return Bubble, nil
	case Quick:
		return Quick, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Status is the replay phase of a Board.
type Status string

const (
	StatusIdle     Status = "idle"     // No steps built yet
	StatusArmed    Status = "armed"    // Steps built, nothing replayed
	StatusPlaying  Status = "playing"  // Cursor advancing
	StatusFinished Status = "finished" // Terminal
)

// Pair is an ordered pair of indices highlighted together.
type Pair struct {
	I int `json:"i"`
	J int `json:"j"`
}

// Span is an inclusive index range.
type Span struct {
	Lo int `json:"lo"`
	Hi int `json:"hi"`
}

// Overlay holds the visual annotations derived from the replayed steps.
type Overlay struct {
	// Compare and Swap live for a single tick.
	Compare *Pair `json:"compare,omitempty"`
	Swap    *Pair `json:"swap,omitempty"`

	Pivot           int   `json:"pivot"`
	CandidateLeft   int   `json:"cand_left"`
	CandidateRight  int   `json:"cand_right"`
	Range           *Span `json:"range,omitempty"`
	Boundary        int   `json:"boundary"`
	BoundaryVisible bool  `json:"boundary_visible"`
}

// ClearedOverlay returns an overlay with nothing highlighted.
func ClearedOverlay() Overlay {
	return Overlay{
		Pivot:          NoIndex,
		CandidateLeft:  NoIndex,
		CandidateRight: NoIndex,
		Boundary:       NoIndex,
	}
}

// Clone deep copies the overlay.
func (o Overlay) Clone() Overlay {
	c := o
	if o.Compare != nil {
		p := *o.Compare
		c.Compare = &p
	}
	if o.Swap != nil {
		p := *o.Swap
		c.Swap = &p
	}
	if o.Range != nil {
		s := *o.Range
		c.Range = &s
	}
	return c
}

// Board is the mutable replay state of one algorithm instance.
// Data and IDs are owned by the replay engine, which is their only writer.
type Board struct {
	Algorithm Algorithm

	// Data is the current arrangement of values.
	Data []int

	// IDs labels each value with a stable identity (1..n) that travels with it on swaps.
	IDs []int

	Steps  []Step
	Cursor int

	// Armed is set once Steps have been built, even when the list is empty.
	Armed    bool
	Finished bool

	Overlay Overlay
}

// NewBoard creates an idle board over a private copy of base.
func NewBoard(alg Algorithm, base []int) *Board {
	data := make([]int, len(base))
	copy(data, base)
	ids := make([]int, len(base))
	for i := range ids {
		ids[i] = i + 1
	}
	return &Board{
		Algorithm: alg,
		Data:      data,
		IDs:       ids,
		Overlay:   ClearedOverlay(),
	}
}

// Status derives the replay phase.
func (b *Board) Status() Status {
	switch {
	case b.Finished:
		return StatusFinished
	case !b.Armed:
		return StatusIdle
	case b.Cursor == 0:
		return StatusArmed
	default:
		return StatusPlaying
	}
}

// Remaining reports how many steps are left to replay.
func (b *Board) Remaining() int {
	return len(b.Steps) - b.Cursor
}

// Snapshot is an immutable copy of a Board's visible state, handed to renderers.
type Snapshot struct {
	Algorithm Algorithm `json:"algorithm"`
	Status    Status    `json:"status"`
	Data      []int     `json:"data"`
	IDs       []int     `json:"ids"`
	Cursor    int       `json:"cursor"`
	StepCount int       `json:"step_count"`
	Finished  bool      `json:"finished"`
	Overlay   Overlay   `json:"overlay"`

	// PivotHeight is the pivot value as a percentage of the largest value,
	// used to draw the horizontal pivot line. Nil when no pivot is set.
	PivotHeight *float64 `json:"pivot_height,omitempty"`
}

// Snapshot copies the board's visible state.
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Algorithm: b.Algorithm,
		Status:    b.Status(),
		Data:      append([]int(nil), b.Data...),
		IDs:       append([]int(nil), b.IDs...),
		Cursor:    b.Cursor,
		StepCount: len(b.Steps),
		Finished:  b.Finished,
		Overlay:   b.Overlay.Clone(),
	}
	if p := b.Overlay.Pivot; p >= 0 && p < len(b.Data) {
		h := float64(b.Data[p]) / float64(MaxValue(b.Data)) * 100
		s.PivotHeight = &h
	}
	return s
}

// MaxValue returns the largest value, or 1 for an empty or non-positive list.
func MaxValue(values []int) int {
	m := 1
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}
