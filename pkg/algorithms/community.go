package algorithms

import "github.com/dd0wney/cluso-social/pkg/social"

// CommunityDetection partitions the graph with Girvan–Newman: on a deep
// working copy it removes the highest-betweenness friendship iterations
// times, recomputing betweenness after every removal, then returns the
// connected components that remain. The input graph is never modified.
//
// Once no friendships are left further iterations do nothing.
func CommunityDetection(graph *social.Graph, iterations int) *CommunityDetectionResult {
	work := graph.Clone()

	removed := make([]Edge, 0)
	for i := 0; i < iterations; i++ {
		edge, ok := HighestBetweennessEdge(EdgeBetweenness(work))
		if !ok {
			break
		}
		work.RemoveFriendship(edge.From, edge.To)
		removed = append(removed, edge)
	}

	result := extractComponents(work)
	result.RemovedEdges = removed
	scoreCommunities(graph, result)
	return result
}

// ConnectedComponents returns the connected components of the graph without
// modifying it.
func ConnectedComponents(graph *social.Graph) *CommunityDetectionResult {
	result := extractComponents(graph.Clone())
	scoreCommunities(graph, result)
	return result
}

// extractComponents consumes work: it repeatedly seeds a DFS at the lowest
// remaining id, records everything reachable as one community and deletes
// those people, until work is empty.
func extractComponents(work *social.Graph) *CommunityDetectionResult {
	communities := make([]*Community, 0)
	nodeCommunity := make(map[int]int, work.Size())

	for _, startID := range work.IDs() {
		if !work.PersonExists(startID) {
			continue
		}

		members := depthFirstSearch(work, startID)
		community := &Community{
			ID:      len(communities),
			Members: members,
			Size:    len(members),
		}
		for _, id := range members {
			nodeCommunity[id] = community.ID
			work.RemovePerson(id)
		}
		communities = append(communities, community)
	}

	return &CommunityDetectionResult{
		Communities:   communities,
		NodeCommunity: nodeCommunity,
	}
}

// depthFirstSearch collects every person reachable from startID in visit
// order. The stack may hold ids already visited; they are skipped on pop.
// Adjacency entries that are not people in the graph are ignored.
func depthFirstSearch(graph *social.Graph, startID int) []int {
	visited := make(map[int]bool)
	order := make([]int, 0)

	stack := []int{startID}
	for len(stack) > 0 {
		currentID := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[currentID] || !graph.PersonExists(currentID) {
			continue
		}
		visited[currentID] = true
		order = append(order, currentID)

		stack = append(stack, graph.Neighbors(currentID)...)
	}

	return order
}

// scoreCommunities fills Density and Modularity against the original graph,
// counting each distinct friendship once.
func scoreCommunities(graph *social.Graph, result *CommunityDetectionResult) {
	adjacency := distinctAdjacency(graph)

	totalEdges := 0
	for _, neighbors := range adjacency {
		totalEdges += len(neighbors)
	}
	totalEdges /= 2

	modularity := 0.0
	for _, community := range result.Communities {
		internal := 0
		degreeSum := 0
		for _, id := range community.Members {
			degreeSum += len(adjacency[id])
			for neighbor := range adjacency[id] {
				if result.NodeCommunity[neighbor] == community.ID {
					internal++
				}
			}
		}
		internal /= 2

		if possible := community.Size * (community.Size - 1) / 2; possible > 0 {
			community.Density = float64(internal) / float64(possible)
		}
		if totalEdges > 0 {
			m := float64(totalEdges)
			share := float64(degreeSum) / (2 * m)
			modularity += float64(internal)/m - share*share
		}
	}
	result.Modularity = modularity
}

func distinctAdjacency(graph *social.Graph) map[int]map[int]struct{} {
	adjacency := make(map[int]map[int]struct{}, graph.Size())
	for _, id := range graph.IDs() {
		adjacency[id] = make(map[int]struct{})
	}
	for _, id := range graph.IDs() {
		for _, neighbor := range graph.Neighbors(id) {
			if neighbor == id || !graph.PersonExists(neighbor) {
				continue
			}
			adjacency[id][neighbor] = struct{}{}
			adjacency[neighbor][id] = struct{}{}
		}
	}
	return adjacency
}
