// Package analysis serializes access to one social graph and attaches
// logging and metrics to each query.
package analysis

import (
	"fmt"
	"sync"
	"time"

	"github.com/dd0wney/cluso-social/pkg/algorithms"
	"github.com/dd0wney/cluso-social/pkg/events"
	"github.com/dd0wney/cluso-social/pkg/logging"
	"github.com/dd0wney/cluso-social/pkg/metrics"
	"github.com/dd0wney/cluso-social/pkg/social"
	"github.com/google/uuid"
)

// Notifier receives an event after every successful mutation.
type Notifier interface {
	Publish(events.Event) error
}

// Analyzer runs one operation at a time against its graph.
type Analyzer struct {
	mu       sync.Mutex
	graph    *social.Graph
	logger   logging.Logger
	metrics  *metrics.Registry
	notifier Notifier
}

// New wraps graph. A nil logger discards output and a nil registry disables
// metrics. The analyzer takes ownership of graph.
func New(graph *social.Graph, logger logging.Logger, registry *metrics.Registry) *Analyzer {
	if graph == nil {
		graph = social.NewGraph()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	a := &Analyzer{
		graph:   graph,
		logger:  logger.With(logging.Component("analyzer")),
		metrics: registry,
	}
	a.updateSize()
	return a
}

// NewFromRecords builds the graph from ingested records.
func NewFromRecords(records []social.Record, logger logging.Logger, registry *metrics.Registry) *Analyzer {
	return New(social.NewGraphFromRecords(records), logger, registry)
}

// SetNotifier installs n as the mutation listener. A nil n removes it.
func (a *Analyzer) SetNotifier(n Notifier) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.notifier = n
}

// PersonExists reports whether id is in the graph.
func (a *Analyzer) PersonExists(id int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.graph.PersonExists(id)
}

// GetPerson returns a copy of the person at id.
func (a *Analyzer) GetPerson(id int) (*social.Person, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, err := a.graph.GetPerson(id)
	if err != nil {
		return nil, fmt.Errorf("person %d: %w", id, err)
	}
	return p.Clone(), nil
}

// Vertices returns a snapshot of every person keyed by id.
func (a *Analyzer) Vertices() map[int]*social.Person {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.graph.Vertices()
}

// People returns copies of every person in ascending id order.
func (a *Analyzer) People() []*social.Person {
	a.mu.Lock()
	defer a.mu.Unlock()

	ids := a.graph.IDs()
	people := make([]*social.Person, 0, len(ids))
	for _, id := range ids {
		p, _ := a.graph.GetPerson(id)
		people = append(people, p.Clone())
	}
	return people
}

// Size returns the number of people.
func (a *Analyzer) Size() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.graph.Size()
}

// FriendshipCount returns the number of distinct friendships.
func (a *Analyzer) FriendshipCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.graph.FriendshipCount()
}

// Stats summarizes the graph.
type Stats struct {
	People            int         `json:"people"`
	Friendships       int         `json:"friendships"`
	AverageClustering float64     `json:"average_clustering"`
	Degrees           map[int]int `json:"degrees"` // person id -> degree
}

// Stats computes graph-wide statistics.
func (a *Analyzer) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()

	defer a.observe("stats", metrics.StatusOK, time.Now())
	return Stats{
		People:            a.graph.Size(),
		Friendships:       a.graph.FriendshipCount(),
		AverageClustering: algorithms.AverageClusteringCoefficient(a.graph),
		Degrees:           algorithms.DegreeDistribution(a.graph),
	}
}

// AddPerson inserts or replaces person under its own id.
func (a *Analyzer) AddPerson(person *social.Person) {
	if person == nil {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.graph.AddPerson(person.ID(), person)
	a.mutated(events.Event{Kind: events.KindAddPerson, PersonID: person.ID()}, logging.PersonID(person.ID()))
}

// AddFriendship connects two existing people. It reports false and changes
// nothing if either is missing.
func (a *Analyzer) AddFriendship(id1, id2 int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.graph.PersonExists(id1) || !a.graph.PersonExists(id2) {
		return false
	}
	a.graph.AddFriendship(id1, id2)
	a.mutated(events.Event{Kind: events.KindAddFriendship, Friends: [2]int{id1, id2}}, logging.Friendship(id1, id2))
	return true
}

// RemoveFriendship disconnects two existing people. It reports false and
// changes nothing if either is missing.
func (a *Analyzer) RemoveFriendship(id1, id2 int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.graph.PersonExists(id1) || !a.graph.PersonExists(id2) {
		return false
	}
	a.graph.RemoveFriendship(id1, id2)
	a.mutated(events.Event{Kind: events.KindRemoveFriendship, Friends: [2]int{id1, id2}}, logging.Friendship(id1, id2))
	return true
}

// SuggestFriends returns suggestions for id under mode.
func (a *Analyzer) SuggestFriends(id int, mode algorithms.SuggestionMode) []int {
	a.mu.Lock()
	defer a.mu.Unlock()

	start := time.Now()
	suggestions := algorithms.SuggestFriends(a.graph, id, mode)
	a.observe("suggest_friends", a.status(id), start)
	if a.metrics != nil {
		a.metrics.RecordSuggestions(mode.String(), len(suggestions))
	}

	a.logger.Debug("friend suggestions",
		logging.PersonID(id),
		logging.Mode(mode.String()),
		logging.Count(len(suggestions)),
	)
	return suggestions
}

// DegreeCentrality returns the number of adjacency entries of id and logs
// the report line.
func (a *Analyzer) DegreeCentrality(id int) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	start := time.Now()
	degree := algorithms.DegreeCentrality(a.graph, id)
	a.observe("degree_centrality", a.status(id), start)

	a.logger.Info(fmt.Sprintf("Degree centrality of person %d is %d", id, degree),
		logging.PersonID(id),
		logging.Int("degree", degree),
	)
	return degree
}

// ClusteringCoefficient returns the local clustering coefficient of id.
func (a *Analyzer) ClusteringCoefficient(id int) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	start := time.Now()
	coefficient := algorithms.ClusteringCoefficient(a.graph, id)
	a.observe("clustering_coefficient", a.status(id), start)
	return coefficient
}

// AverageClusteringCoefficient returns the mean coefficient over everyone.
func (a *Analyzer) AverageClusteringCoefficient() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	defer a.observe("average_clustering_coefficient", metrics.StatusOK, time.Now())
	return algorithms.AverageClusteringCoefficient(a.graph)
}

// ShortestPaths returns one shortest path from id to every other person.
func (a *Analyzer) ShortestPaths(id int) map[int][]int {
	a.mu.Lock()
	defer a.mu.Unlock()

	defer a.observe("shortest_paths", a.status(id), time.Now())
	return algorithms.ShortestPaths(a.graph, id)
}

// EdgeBetweenness ranks friendships by betweenness. topK <= 0 returns all.
func (a *Analyzer) EdgeBetweenness(topK int) []algorithms.RankedEdge {
	a.mu.Lock()
	defer a.mu.Unlock()

	defer a.observe("edge_betweenness", metrics.StatusOK, time.Now())
	return algorithms.RankEdges(algorithms.EdgeBetweenness(a.graph), topK)
}

// CommunityDetection runs Girvan-Newman for the given number of edge
// removals. The analyzer's graph is left unchanged.
func (a *Analyzer) CommunityDetection(iterations int) *algorithms.CommunityDetectionResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	logger := a.logger.With(logging.RunID(uuid.NewString()), logging.Iterations(iterations))
	timer := logging.StartTimer(logger, "girvan-newman finished")

	result := algorithms.CommunityDetection(a.graph, iterations)

	for i, edge := range result.RemovedEdges {
		logger.Debug("removed edge", logging.Int("step", i+1), logging.Friendship(edge.From, edge.To))
	}
	if len(result.RemovedEdges) < iterations {
		logger.Debug("no edges left to remove", logging.Int("removed", len(result.RemovedEdges)))
	}

	elapsed := timer.End()
	logger.Info("communities detected",
		logging.Count(len(result.Communities)),
		logging.Int("edges_removed", len(result.RemovedEdges)),
		logging.Float64("modularity", result.Modularity),
	)

	if a.metrics != nil {
		a.metrics.RecordOperation("community_detection", metrics.StatusOK, elapsed)
		a.metrics.RecordCommunityDetection(len(result.Communities), len(result.RemovedEdges), result.Modularity)
	}
	return result
}

func (a *Analyzer) status(id int) string {
	if a.graph.PersonExists(id) {
		return metrics.StatusOK
	}
	return metrics.StatusNotFound
}

func (a *Analyzer) observe(operation, status string, start time.Time) {
	if a.metrics != nil {
		a.metrics.RecordOperation(operation, status, time.Since(start))
	}
}

// mutated must be called with mu held.
func (a *Analyzer) mutated(ev events.Event, fields ...logging.Field) {
	a.logger.Debug("graph mutated", append(fields, logging.Operation(ev.Kind))...)
	if a.metrics != nil {
		a.metrics.RecordMutation(ev.Kind)
	}
	a.updateSize()

	if a.notifier != nil {
		ev.People = a.graph.Size()
		if err := a.notifier.Publish(ev); err != nil {
			a.logger.Warn("failed to publish mutation", logging.Operation(ev.Kind), logging.Error(err))
		}
	}
}

func (a *Analyzer) updateSize() {
	if a.metrics != nil {
		a.metrics.UpdateGraphSize(a.graph.Size(), a.graph.FriendshipCount())
	}
}
