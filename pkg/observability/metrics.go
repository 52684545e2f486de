package observability

import (
	"context"

	"github.com/aretw0/sortvis/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by the replay hooks.
type Metrics struct {
	StepsApplied   *prometheus.CounterVec
	BoardsArmed    *prometheus.CounterVec
	BoardsFinished *prometheus.CounterVec
	StepsPerRun    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil registerer leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		StepsApplied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sortvis_steps_applied_total",
				Help: "Total number of steps folded into a board",
			},
			[]string{"algorithm", "kind"},
		),
		BoardsArmed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sortvis_boards_armed_total",
				Help: "Total number of boards armed with a step list",
			},
			[]string{"algorithm"},
		),
		BoardsFinished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sortvis_boards_finished_total",
				Help: "Total number of boards replayed to completion",
			},
			[]string{"algorithm"},
		),
		StepsPerRun: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sortvis_steps_per_run",
				Help:    "Length of the step list of each armed board",
				Buckets: prometheus.ExponentialBuckets(8, 2, 10),
			},
			[]string{"algorithm"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.StepsApplied, m.BoardsArmed, m.BoardsFinished, m.StepsPerRun)
	}
	return m
}

// Hooks returns lifecycle hooks recording into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnArm: func(_ context.Context, e *domain.BoardEvent) {
			alg := string(e.Algorithm)
			m.BoardsArmed.WithLabelValues(alg).Inc()
			m.StepsPerRun.WithLabelValues(alg).Observe(float64(e.StepCount))
		},
		OnStep: func(_ context.Context, e *domain.BoardEvent) {
			if e.Step == nil {
				return
			}
			m.StepsApplied.WithLabelValues(string(e.Algorithm), string(e.Step.Kind())).Inc()
		},
		OnFinish: func(_ context.Context, e *domain.BoardEvent) {
			m.BoardsFinished.WithLabelValues(string(e.Algorithm)).Inc()
		},
	}
}
