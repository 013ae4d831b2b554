package algorithms

import "github.com/dd0wney/cluso-social/pkg/social"

// DegreeCentrality returns the number of adjacency-list entries of the
// person, duplicates included, or 0 if the person is missing.
func DegreeCentrality(graph *social.Graph, personID int) int {
	person, err := graph.GetPerson(personID)
	if err != nil {
		return 0
	}
	return person.Degree()
}

// DegreeDistribution returns the degree of every person.
func DegreeDistribution(graph *social.Graph) map[int]int {
	degrees := make(map[int]int, graph.Size())
	for _, id := range graph.IDs() {
		degrees[id] = DegreeCentrality(graph, id)
	}
	return degrees
}
