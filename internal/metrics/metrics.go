// Package metrics exposes Prometheus instrumentation for the engine.
// The background error channel for fire-and-forget writes terminates here
// and in the logger, never in a caller's control flow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the engine's Prometheus collectors.
type Metrics struct {
	// AnalyzerFailures counts analyzer errors by kind.
	AnalyzerFailures *prometheus.CounterVec

	// AggregationLatency observes end-to-end aggregation duration.
	AggregationLatency prometheus.Histogram

	// AggregationsDegraded counts aggregations that used neutral defaults.
	AggregationsDegraded prometheus.Counter

	// SwallowedWrites counts persistence failures absorbed by the
	// fire-and-forget policy, by operation.
	SwallowedWrites *prometheus.CounterVec

	// Selections counts content selections by reason.
	Selections *prometheus.CounterVec

	// TierTransitions counts tier changes by direction (advance, regress).
	TierTransitions *prometheus.CounterVec
}

// New registers the engine collectors with the given registerer.
// Pass prometheus.DefaultRegisterer in production, a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		AnalyzerFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chaoslimba",
			Subsystem: "feedback",
			Name:      "analyzer_failures_total",
			Help:      "Analyzer invocations that failed or timed out, by kind.",
		}, []string{"kind"}),

		AggregationLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "chaoslimba",
			Subsystem: "feedback",
			Name:      "aggregation_seconds",
			Help:      "End-to-end feedback aggregation latency.",
			Buckets:   prometheus.DefBuckets,
		}),

		AggregationsDegraded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "chaoslimba",
			Subsystem: "feedback",
			Name:      "aggregations_degraded_total",
			Help:      "Aggregations that substituted neutral defaults for failed components.",
		}),

		SwallowedWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chaoslimba",
			Subsystem: "tracking",
			Name:      "swallowed_writes_total",
			Help:      "Persistence failures absorbed by the log-and-continue policy.",
		}, []string{"operation"}),

		Selections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chaoslimba",
			Subsystem: "selection",
			Name:      "content_selections_total",
			Help:      "Content selections by reason.",
		}, []string{"reason"}),

		TierTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chaoslimba",
			Subsystem: "challenge",
			Name:      "tier_transitions_total",
			Help:      "Destabilization tier transitions by direction.",
		}, []string{"direction"}),
	}
}

// NewNop returns metrics bound to a throwaway registry, for tests and
// callers that don't scrape.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
