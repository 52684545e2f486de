package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventArm    EventType = "board_arm"
	EventStep   EventType = "board_step"
	EventFinish EventType = "board_finish"
	EventReset  EventType = "board_reset"
)

// BoardEvent describes something that happened to a Board during replay.
type BoardEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Algorithm Algorithm `json:"algorithm"`
	Cursor    int       `json:"cursor"`
	StepCount int       `json:"step_count"`

	// Step is set for EventStep only.
	Step Step `json:"-"`
}

// LifecycleHooks defines callbacks for replay observability.
type LifecycleHooks struct {
	OnArm    func(context.Context, *BoardEvent)
	OnStep   func(context.Context, *BoardEvent)
	OnFinish func(context.Context, *BoardEvent)
	OnReset  func(context.Context, *BoardEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnArm:    chain(h.OnArm, other.OnArm),
		OnStep:   chain(h.OnStep, other.OnStep),
		OnFinish: chain(h.OnFinish, other.OnFinish),
		OnReset:  chain(h.OnReset, other.OnReset),
	}
}

func chain(a, b func(context.Context, *BoardEvent)) func(context.Context, *BoardEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *BoardEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
