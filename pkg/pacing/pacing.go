// Package pacing maps the user-facing speed setting to a tick interval.
package pacing

import (
	"math"
	"time"
)

const (
	// BaseStepMS is the tick period at an effective speed of 1.
	BaseStepMS = 600
	// SpeedCoefficient scales the user speed into the effective speed.
	SpeedCoefficient = 0.7
	// MinTimerMS is the floor below which ticks are never scheduled.
	MinTimerMS = 4

	MinSpeed     = 0.2
	MaxSpeed     = 10.0
	DefaultSpeed = 1.0
	// SpeedStep is the increment used by stepper controls.
	SpeedStep = 0.05
)

// ClampSpeed bounds speed to [MinSpeed, MaxSpeed]. NaN maps to DefaultSpeed.
func ClampSpeed(speed float64) float64 {
	if math.IsNaN(speed) {
		return DefaultSpeed
	}
	return math.Min(MaxSpeed, math.Max(MinSpeed, speed))
}

// ComputeInterval returns the tick period for a speed setting.
// It is strictly decreasing in speed over [MinSpeed, MaxSpeed] and never
// below MinTimerMS.
func ComputeInterval(speed float64) time.Duration {
	return time.Duration(IntervalMS(speed)) * time.Millisecond
}

// IntervalMS is ComputeInterval in whole milliseconds.
func IntervalMS(speed float64) int {
	s := ClampSpeed(speed)
	ms := int(math.Floor(BaseStepMS / (SpeedCoefficient * s)))
	if ms < MinTimerMS {
		return MinTimerMS
	}
	return ms
}

// Nudge moves speed by delta stepper increments and clamps the result,
// rounding to the stepper granularity.
func Nudge(speed float64, delta int) float64 {
	next := speed + float64(delta)*SpeedStep
	return ClampSpeed(math.Round(next*100) / 100)
}
