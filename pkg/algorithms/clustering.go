package algorithms

import "github.com/dd0wney/cluso-social/pkg/social"

// ClusteringCoefficient computes the local clustering coefficient of a person:
// the fraction of pairs in the friend list (duplicates included) whose members
// are friends with each other. Missing people and people with fewer than two
// friends score 0. A friend id that is not in the graph never connects.
func ClusteringCoefficient(graph *social.Graph, personID int) float64 {
	person, err := graph.GetPerson(personID)
	if err != nil {
		return 0.0
	}

	friends := person.Friends()
	n := len(friends)
	totalPairs := n * (n - 1) / 2
	if totalPairs == 0 {
		return 0.0
	}

	friendPairs := 0
	for i := 0; i < n; i++ {
		first, err := graph.GetPerson(friends[i])
		if err != nil {
			continue
		}
		for j := i + 1; j < n; j++ {
			if first.IsFriendWith(friends[j]) {
				friendPairs++
			}
		}
	}

	return float64(friendPairs) / float64(totalPairs)
}

// AverageClusteringCoefficient computes the mean clustering coefficient over
// all people, or 0 for an empty graph.
func AverageClusteringCoefficient(graph *social.Graph) float64 {
	ids := graph.IDs()
	if len(ids) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, id := range ids {
		sum += ClusteringCoefficient(graph, id)
	}
	return sum / float64(len(ids))
}
