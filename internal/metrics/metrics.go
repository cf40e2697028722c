// Package metrics exposes Prometheus instruments for the execution engine.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the engine's instruments.
type Metrics struct {
	instructions *prometheus.CounterVec
	events       *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	runs         *prometheus.CounterVec
	queueDepth   prometheus.Gauge
}

// New creates the instruments and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		instructions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphflow_instructions_total",
				Help: "Instructions processed by workers, by template and outcome.",
			},
			[]string{"template", "outcome"},
		),
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphflow_events_fired_total",
				Help: "Events fired by processors, by template and event.",
			},
			[]string{"template", "event"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "graphflow_instruction_duration_seconds",
				Help:    "Time spent inside a processor per instruction.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"template"},
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphflow_runs_total",
				Help: "Graph runs by final status.",
			},
			[]string{"status"},
		),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "graphflow_queue_depth",
			Help: "Messages waiting in the dispatch channel.",
		}),
	}
	reg.MustRegister(m.instructions, m.events, m.duration, m.runs, m.queueDepth)
	return m
}

// Instruction records one processed instruction.
func (m *Metrics) Instruction(template, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.instructions.WithLabelValues(template, outcome).Inc()
	m.duration.WithLabelValues(template).Observe(took.Seconds())
}

// EventFired records one fired event.
func (m *Metrics) EventFired(template, event string) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(template, event).Inc()
}

// RunFinished records the end of a run.
func (m *Metrics) RunFinished(status string) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(status).Inc()
}

// QueueDepth sets the current channel length.
func (m *Metrics) QueueDepth(n int) {
	if m == nil {
		return
	}
	m.queueDepth.Set(float64(n))
}
