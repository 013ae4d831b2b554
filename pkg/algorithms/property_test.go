package algorithms

import (
	"testing"

	"github.com/dd0wney/cluso-social/pkg/social"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// connectedGraph builds a chain 0..n-1 plus extra friendships drawn from seeds
func connectedGraph(n int, seeds []int) *social.Graph {
	g := social.NewGraph()
	for id := 0; id < n; id++ {
		g.AddPerson(id, social.NewPerson(id, "p", 20+id%3, "F", "Engineer", nil))
	}
	for id := 1; id < n; id++ {
		g.AddFriendship(id-1, id)
	}
	for _, s := range seeds {
		a, b := s%n, (s/n)%n
		if a == b {
			continue
		}
		if p, _ := g.GetPerson(a); p.IsFriendWith(b) {
			continue
		}
		g.AddFriendship(a, b)
	}
	return g
}

// TestAnalyticsProperties checks invariants that hold for any graph
func TestAnalyticsProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)

	properties.Property("zero iterations on a connected graph yields one community", prop.ForAll(
		func(n int, seeds []int) bool {
			g := connectedGraph(n, seeds)
			result := CommunityDetection(g, 0)
			return len(result.Communities) == 1 && result.Communities[0].Size == n
		},
		gen.IntRange(1, 15),
		gen.SliceOf(gen.IntRange(0, 10000)),
	))

	properties.Property("communities partition the people", prop.ForAll(
		func(n int, seeds []int, iterations int) bool {
			g := connectedGraph(n, seeds)
			result := CommunityDetection(g, iterations)

			seen := make(map[int]bool)
			for _, c := range result.Communities {
				for _, id := range c.Members {
					if seen[id] || !g.PersonExists(id) {
						return false
					}
					seen[id] = true
				}
			}
			return len(seen) == g.Size()
		},
		gen.IntRange(1, 12),
		gen.SliceOf(gen.IntRange(0, 10000)),
		gen.IntRange(0, 8),
	))

	properties.Property("degree equals adjacency length and clustering is a fraction", prop.ForAll(
		func(n int, seeds []int) bool {
			g := connectedGraph(n, seeds)
			for _, id := range g.IDs() {
				p, _ := g.GetPerson(id)
				if DegreeCentrality(g, id) != len(p.Friends()) {
					return false
				}
				c := ClusteringCoefficient(g, id)
				if c < 0 || c > 1 {
					return false
				}
			}
			return DegreeCentrality(g, -1) == 0 && ClusteringCoefficient(g, -1) == 0
		},
		gen.IntRange(1, 15),
		gen.SliceOf(gen.IntRange(0, 10000)),
	))

	properties.Property("suggestions for a missing person are empty", prop.ForAll(
		func(n int, mode int) bool {
			g := connectedGraph(n, nil)
			return len(SuggestFriends(g, n+1, SuggestionMode(mode))) == 0
		},
		gen.IntRange(1, 10),
		gen.IntRange(0, 4),
	))

	properties.TestingRun(t)
}
