package algorithms

import (
	"maps"
	"slices"

	"github.com/dd0wney/cluso-social/pkg/social"
)

// EdgeBetweenness counts, over every source's shortest-path tree, how many
// source-target paths traverse each undirected friendship.
//
// Only one shortest path per pair is counted (see ShortestPaths), so this is
// an approximation of true edge betweenness.
func EdgeBetweenness(graph *social.Graph) map[Edge]float64 {
	betweenness := make(map[Edge]float64)

	for _, sourceID := range graph.IDs() {
		for _, path := range ShortestPaths(graph, sourceID) {
			for i := 0; i+1 < len(path); i++ {
				betweenness[NewEdge(path[i], path[i+1])]++
			}
		}
	}

	return betweenness
}

// HighestBetweennessEdge returns the edge with the strictly highest count.
// Edges are scanned in ascending (From, To) order, so the lowest edge wins
// ties. ok is false when there are no edges.
func HighestBetweennessEdge(betweenness map[Edge]float64) (edge Edge, ok bool) {
	maxBetweenness := -1.0
	for _, candidate := range sortedEdges(betweenness) {
		if betweenness[candidate] > maxBetweenness {
			maxBetweenness = betweenness[candidate]
			edge = candidate
			ok = true
		}
	}
	return edge, ok
}

// RankedEdge holds an edge with its betweenness score.
type RankedEdge struct {
	Edge  Edge    `json:"edge"`
	Score float64 `json:"score"`
}

// RankEdges orders edges by descending score, then ascending edge. topK <= 0
// returns all of them.
func RankEdges(betweenness map[Edge]float64, topK int) []RankedEdge {
	ranked := make([]RankedEdge, 0, len(betweenness))
	for _, edge := range sortedEdges(betweenness) {
		ranked = append(ranked, RankedEdge{Edge: edge, Score: betweenness[edge]})
	}

	slices.SortStableFunc(ranked, func(a, b RankedEdge) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	if topK > 0 && len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}

func sortedEdges(betweenness map[Edge]float64) []Edge {
	return slices.SortedFunc(maps.Keys(betweenness), func(a, b Edge) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
}
