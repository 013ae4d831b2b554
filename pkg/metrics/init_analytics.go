package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalyticsMetrics() {
	r.OperationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "socialnet_operations_total",
			Help: "Total number of analytics operations",
		},
		[]string{"operation", "status"},
	)

	r.OperationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "socialnet_operation_duration_seconds",
			Help:    "Analytics operation duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0, 60.0},
		},
		[]string{"operation"},
	)

	r.SuggestionsReturned = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "socialnet_suggestions_returned",
			Help:    "Number of friend suggestions returned per call",
			Buckets: []float64{0, 1, 5, 10, 50, 100, 1000},
		},
		[]string{"mode"},
	)

	r.CommunitiesDetected = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "socialnet_communities_detected",
			Help:    "Number of communities found per community detection run",
			Buckets: []float64{1, 2, 5, 10, 50, 100, 1000},
		},
	)

	r.EdgesRemovedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "socialnet_edges_removed_total",
			Help: "Total friendships removed from working copies by community detection",
		},
	)

	r.CommunityModularity = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "socialnet_community_modularity",
			Help: "Modularity of the most recent community partition",
		},
	)
}
