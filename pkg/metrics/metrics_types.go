package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Analytics Metrics
	OperationsTotal     *prometheus.CounterVec
	OperationDuration   *prometheus.HistogramVec
	SuggestionsReturned *prometheus.HistogramVec
	CommunitiesDetected prometheus.Histogram
	EdgesRemovedTotal   prometheus.Counter
	CommunityModularity prometheus.Gauge

	// Graph Metrics
	PeopleTotal      prometheus.Gauge
	FriendshipsTotal prometheus.Gauge
	MutationsTotal   *prometheus.CounterVec

	// Ingestion Metrics
	RecordsIngestedTotal *prometheus.CounterVec
	IngestErrorsTotal    *prometheus.CounterVec

	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initAnalyticsMetrics()
	r.initGraphMetrics()
	r.initIngestMetrics()
	r.initHTTPMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
