package metrics

import (
	"time"
)

// Status label values
const (
	StatusOK       = "ok"
	StatusNotFound = "not_found"
)

// RecordOperation records an analytics call with its duration
func (r *Registry) RecordOperation(operation, status string, duration time.Duration) {
	r.OperationsTotal.WithLabelValues(operation, status).Inc()
	r.OperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordSuggestions records how many suggestions a mode produced
func (r *Registry) RecordSuggestions(mode string, count int) {
	r.SuggestionsReturned.WithLabelValues(mode).Observe(float64(count))
}

// RecordCommunityDetection records the outcome of one community detection run
func (r *Registry) RecordCommunityDetection(communities, edgesRemoved int, modularity float64) {
	r.CommunitiesDetected.Observe(float64(communities))
	r.EdgesRemovedTotal.Add(float64(edgesRemoved))
	r.CommunityModularity.Set(modularity)
}

// RecordMutation counts a graph mutation such as "add_person"
func (r *Registry) RecordMutation(kind string) {
	r.MutationsTotal.WithLabelValues(kind).Inc()
}

// UpdateGraphSize sets the people and friendship gauges
func (r *Registry) UpdateGraphSize(people, friendships int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.PeopleTotal.Set(float64(people))
	r.FriendshipsTotal.Set(float64(friendships))
}

// RecordIngest records a load from a source
func (r *Registry) RecordIngest(source string, records int, err error) {
	if err != nil {
		r.IngestErrorsTotal.WithLabelValues(source).Inc()
		return
	}
	r.RecordsIngestedTotal.WithLabelValues(source).Add(float64(records))
}

// RecordHTTPRequest records a served HTTP request
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
