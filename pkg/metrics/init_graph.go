package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.PeopleTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "socialnet_people_total",
			Help: "Number of people in the graph",
		},
	)

	r.FriendshipsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "socialnet_friendships_total",
			Help: "Number of distinct friendships in the graph",
		},
	)

	r.MutationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "socialnet_mutations_total",
			Help: "Total graph mutations by kind",
		},
		[]string{"kind"},
	)
}

func (r *Registry) initIngestMetrics() {
	r.RecordsIngestedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "socialnet_records_ingested_total",
			Help: "Total person records loaded by source kind",
		},
		[]string{"source"},
	)

	r.IngestErrorsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "socialnet_ingest_errors_total",
			Help: "Total ingestion failures by source kind",
		},
		[]string{"source"},
	)
}
