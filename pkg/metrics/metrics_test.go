package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var metric dto.Metric
	if err := c.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return metric.Counter.GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var metric dto.Metric
	if err := g.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return metric.Gauge.GetValue()
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if r.OperationsTotal == nil {
		t.Error("OperationsTotal not initialized")
	}
	if r.PeopleTotal == nil {
		t.Error("PeopleTotal not initialized")
	}
	if r.RecordsIngestedTotal == nil {
		t.Error("RecordsIngestedTotal not initialized")
	}
	if r.GetPrometheusRegistry() == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	r1 := DefaultRegistry()
	r2 := DefaultRegistry()

	if r1 != r2 {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestRecordOperation(t *testing.T) {
	r := NewRegistry()

	r.RecordOperation("degree_centrality", StatusOK, time.Millisecond)
	r.RecordOperation("degree_centrality", StatusOK, 2*time.Millisecond)
	r.RecordOperation("degree_centrality", StatusNotFound, time.Millisecond)

	ok, err := r.OperationsTotal.GetMetricWithLabelValues("degree_centrality", StatusOK)
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if got := counterValue(t, ok); got != 2 {
		t.Errorf("ok counter = %v, want 2", got)
	}

	missing, _ := r.OperationsTotal.GetMetricWithLabelValues("degree_centrality", StatusNotFound)
	if got := counterValue(t, missing); got != 1 {
		t.Errorf("not_found counter = %v, want 1", got)
	}
}

func TestRecordCommunityDetection(t *testing.T) {
	r := NewRegistry()

	r.RecordCommunityDetection(2, 1, 0.25)
	r.RecordCommunityDetection(3, 2, 0.4)

	if got := counterValue(t, r.EdgesRemovedTotal); got != 3 {
		t.Errorf("edges removed = %v, want 3", got)
	}
	if got := gaugeValue(t, r.CommunityModularity); got != 0.4 {
		t.Errorf("modularity = %v, want 0.4", got)
	}
}

func TestUpdateGraphSize(t *testing.T) {
	r := NewRegistry()

	r.UpdateGraphSize(10, 12)

	if got := gaugeValue(t, r.PeopleTotal); got != 10 {
		t.Errorf("people = %v, want 10", got)
	}
	if got := gaugeValue(t, r.FriendshipsTotal); got != 12 {
		t.Errorf("friendships = %v, want 12", got)
	}
}

func TestRecordIngest(t *testing.T) {
	r := NewRegistry()

	r.RecordIngest("file", 5, nil)
	r.RecordIngest("file", 0, errors.New("bad line"))

	loaded, _ := r.RecordsIngestedTotal.GetMetricWithLabelValues("file")
	if got := counterValue(t, loaded); got != 5 {
		t.Errorf("records = %v, want 5", got)
	}
	failed, _ := r.IngestErrorsTotal.GetMetricWithLabelValues("file")
	if got := counterValue(t, failed); got != 1 {
		t.Errorf("errors = %v, want 1", got)
	}
}

func TestRegistryGather(t *testing.T) {
	r := NewRegistry()
	r.RecordMutation("add_friendship")
	r.RecordSuggestions("age", 3)

	families, err := r.GetPrometheusRegistry().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{"socialnet_mutations_total", "socialnet_suggestions_returned"} {
		if !names[want] {
			t.Errorf("metric family %s not gathered", want)
		}
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	r := NewRegistry()
	r.RecordHTTPRequest("POST", "/graphql", "200", 5*time.Millisecond)
	r.RecordHTTPRequest("POST", "/graphql", "200", 7*time.Millisecond)
	r.RecordHTTPRequest("POST", "/graphql", "401", time.Millisecond)

	if v := counterValue(t, r.HTTPRequestsTotal.WithLabelValues("POST", "/graphql", "200")); v != 2 {
		t.Errorf("Expected 2 successful requests, got %f", v)
	}
	if v := counterValue(t, r.HTTPRequestsTotal.WithLabelValues("POST", "/graphql", "401")); v != 1 {
		t.Errorf("Expected 1 rejected request, got %f", v)
	}

	r.HTTPRequestsInFlight.Inc()
	if v := gaugeValue(t, r.HTTPRequestsInFlight); v != 1 {
		t.Errorf("Expected 1 in-flight request, got %f", v)
	}
}
