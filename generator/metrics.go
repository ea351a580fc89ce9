// SPDX-License-Identifier: MIT
// Package: dcpgen/generator
//
// metrics.go: Prometheus instrumentation of the generator.

package generator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Violation outcome label values.
const (
	OutcomeInjected    = "injected"
	OutcomeSkipped     = "skipped"     // tree had at most one internal node
	OutcomeNoCandidate = "no_candidate" // no same-arity swapped production
	OutcomeUnavailable = "unavailable"  // every attempt failed
)

// Metrics groups the generator's collectors. A nil *Metrics records nothing.
type Metrics struct {
	Trees        prometheus.Counter
	Fallbacks    prometheus.Counter
	DepthCeiling prometheus.Counter
	Violations   *prometheus.CounterVec
	Depth        prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Trees: f.NewCounter(prometheus.CounterOpts{
			Namespace: "dcpgen",
			Subsystem: "generator",
			Name:      "trees_total",
			Help:      "Expression trees generated.",
		}),
		Fallbacks: f.NewCounter(prometheus.CounterOpts{
			Namespace: "dcpgen",
			Subsystem: "generator",
			Name:      "terminal_fallbacks_total",
			Help:      "Positions filled from the full terminal set because no production matched.",
		}),
		DepthCeiling: f.NewCounter(prometheus.CounterOpts{
			Namespace: "dcpgen",
			Subsystem: "generator",
			Name:      "depth_ceiling_total",
			Help:      "Positions forced to a terminal by the recursion ceiling.",
		}),
		Violations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dcpgen",
			Subsystem: "generator",
			Name:      "violations_total",
			Help:      "Violation injection outcomes.",
		}, []string{"outcome"}),
		Depth: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dcpgen",
			Subsystem: "generator",
			Name:      "tree_depth",
			Help:      "Depth of generated trees.",
			Buckets:   prometheus.LinearBuckets(0, 1, 10),
		}),
	}
}

func (m *Metrics) tree(depth int) {
	if m == nil {
		return
	}
	m.Trees.Inc()
	m.Depth.Observe(float64(depth))
}

func (m *Metrics) fallback() {
	if m != nil {
		m.Fallbacks.Inc()
	}
}

func (m *Metrics) ceiling() {
	if m != nil {
		m.DepthCeiling.Inc()
	}
}

func (m *Metrics) violation(outcome string) {
	if m != nil {
		m.Violations.WithLabelValues(outcome).Inc()
	}
}
