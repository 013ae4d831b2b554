package algorithms

import (
	"slices"
	"testing"

	"github.com/dd0wney/cluso-social/pkg/social"
)

// setupSocialTestGraph creates a graph with people 1..n and the given friendships
func setupSocialTestGraph(t *testing.T, n int, friendships ...[2]int) *social.Graph {
	t.Helper()

	g := social.NewGraph()
	for id := 1; id <= n; id++ {
		g.AddPerson(id, social.NewPerson(id, "person", 30, "F", "Engineer", nil))
	}
	for _, f := range friendships {
		g.AddFriendship(f[0], f[1])
	}
	return g
}

// sameMembers compares two id lists as sets
func sameMembers(got, want []int) bool {
	a := slices.Clone(got)
	b := slices.Clone(want)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

// sortedCommunities normalises communities for set comparison
func sortedCommunities(members [][]int) [][]int {
	out := make([][]int, len(members))
	for i, m := range members {
		out[i] = slices.Sorted(slices.Values(m))
	}
	slices.SortFunc(out, func(a, b []int) int { return a[0] - b[0] })
	return out
}
