package domain

import (
	"encoding/json"
	"fmt"
)

// WireStep is the flat, tagged encoding of a Step shared by every transport
// (HTTP, MCP, NDJSON, YAML export, cache payloads).
// Absent pointer fields encode the "none" cases of Pivot and Range.
type WireStep struct {
	T    StepKind `json:"t" yaml:"t"`
	I    *int     `json:"i,omitempty" yaml:"i,omitempty"`
	J    *int     `json:"j,omitempty" yaml:"j,omitempty"`
	K    *int     `json:"k,omitempty" yaml:"k,omitempty"`
	Lo   *int     `json:"lo,omitempty" yaml:"lo,omitempty"`
	Hi   *int     `json:"hi,omitempty" yaml:"hi,omitempty"`
	Show *bool    `json:"show,omitempty" yaml:"show,omitempty"`
}

func ref[T any](v T) *T {
	return &v
}

// ToWire flattens a Step into its tagged wire form.
func ToWire(s Step) WireStep {
	switch v := s.(type) {
	case Compare:
		return WireStep{T: KindCompare, I: ref(v.I), J: ref(v.J)}
	case Swap:
		return WireStep{T: KindSwap, I: ref(v.I), J: ref(v.J)}
	case Pivot:
		return WireStep{T: KindPivot, I: ref(v.Index)}
	case ClearPivot:
		return WireStep{T: KindPivot}
	case Range:
		return WireStep{T: KindRange, Lo: ref(v.Lo), Hi: ref(v.Hi)}
	case ClearRange:
		return WireStep{T: KindRange}
	case Boundary:
		return WireStep{T: KindBoundary, K: ref(v.K), Lo: ref(v.Lo), Hi: ref(v.Hi), Show: ref(v.Visible)}
	case MarkLeft:
		return WireStep{T: KindMarkLeft, I: ref(v.I)}
	case MarkRight:
		return WireStep{T: KindMarkRight, I: ref(v.I)}
	default:
		return WireStep{T: KindClearMarks}
	}
}

// FromWire rebuilds a Step from its wire form.
func FromWire(w WireStep) (Step, error) {
	switch w.T {
	case KindCompare, KindSwap:
		if w.I == nil || w.J == nil {
			return nil, fmt.Errorf("%w: %s requires i and j", ErrMalformedStep, w.T)
		}
		if w.T == KindCompare {
			return Compare{I: *w.I, J: *w.J}, nil
		}
		return Swap{I: *w.I, J: *w.J}, nil
	case KindPivot:
		if w.I == nil {
			return ClearPivot{}, nil
		}
		return Pivot{Index: *w.I}, nil
	case KindRange:
		if w.Lo == nil && w.Hi == nil {
			return ClearRange{}, nil
		}
		if w.Lo == nil || w.Hi == nil {
			return nil, fmt.Errorf("%w: range needs both lo and hi or neither", ErrMalformedStep)
		}
		return Range{Lo: *w.Lo, Hi: *w.Hi}, nil
	case KindBoundary:
		if w.K == nil || w.Lo == nil || w.Hi == nil {
			return nil, fmt.Errorf("%w: boundary requires k, lo and hi", ErrMalformedStep)
		}
		b := Boundary{K: *w.K, Lo: *w.Lo, Hi: *w.Hi}
		if w.Show != nil {
			b.Visible = *w.Show
		}
		return b, nil
	case KindMarkLeft, KindMarkRight:
		if w.I == nil {
			return nil, fmt.Errorf("%w: %s requires i", ErrMalformedStep, w.T)
		}
		if w.T == KindMarkLeft {
			return MarkLeft{I: *w.I}, nil
		}
		return MarkRight{I: *w.I}, nil
	case KindClearMarks:
		return ClearMarks{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, w.T)
	}
}

// WireSteps converts a step list to its wire form.
func WireSteps(steps []Step) []WireStep {
	out := make([]WireStep, len(steps))
	for i, s := range steps {
		out[i] = ToWire(s)
	}
	return out
}

// StepsFromWire converts a wire list back into steps.
func StepsFromWire(wire []WireStep) ([]Step, error) {
	out := make([]Step, 0, len(wire))
	for i, w := range wire {
		s, err := FromWire(w)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// MarshalSteps encodes a step list as a JSON array of tagged objects.
func MarshalSteps(steps []Step) ([]byte, error) {
	return json.Marshal(WireSteps(steps))
}

// UnmarshalSteps decodes the output of MarshalSteps.
func UnmarshalSteps(data []byte) ([]Step, error) {
	var wire []WireStep
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("failed to decode steps: %w", err)
	}
	return StepsFromWire(wire)
}
