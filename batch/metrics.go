package batch

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "nwalign"

// Metrics records alignment throughput for a Runner.
//
// All collectors are registered on the Registerer passed to NewMetrics, so
// tests and the CLI use private registries rather than the global default.
type Metrics struct {
	// AlignmentsTotal counts alignments by result ("ok" or "error").
	AlignmentsTotal *prometheus.CounterVec

	// CellsTotal counts DP cells filled, (len(a)+1)·(len(b)+1) per alignment.
	CellsTotal prometheus.Counter

	// AlignmentDuration observes wall time per alignment.
	AlignmentDuration prometheus.Histogram
}

// NewMetrics creates and registers the collectors on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AlignmentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "alignments_total",
			Help:      "Total pairwise alignments by result",
		}, []string{"result"}),
		CellsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cells_total",
			Help:      "Total dynamic programming cells filled",
		}),
		AlignmentDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "alignment_duration_seconds",
			Help:      "Pairwise alignment duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
	}
	if reg != nil {
		reg.MustRegister(m.AlignmentsTotal, m.CellsTotal, m.AlignmentDuration)
	}

	return m
}

// observe records one alignment. Safe on a nil receiver.
func (m *Metrics) observe(cells int, seconds float64, ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	m.AlignmentsTotal.WithLabelValues(result).Inc()
	m.CellsTotal.Add(float64(cells))
	m.AlignmentDuration.Observe(seconds)
}
