package algorithms

import (
	"container/list"
	"slices"

	"github.com/dd0wney/cluso-social/pkg/social"
)

// ShortestPaths runs a BFS from sourceID and returns, for every other person
// in the graph, one shortest path from the source to that person.
//
// Each person records only the predecessor it was first discovered from, so
// when several equal-length paths exist exactly one is returned. A person
// the source cannot reach maps to a single-element path holding just that
// person.
func ShortestPaths(graph *social.Graph, sourceID int) map[int][]int {
	prev := shortestPathTree(graph, sourceID)

	paths := make(map[int][]int, graph.Size())
	for _, targetID := range graph.IDs() {
		if targetID == sourceID {
			continue
		}
		paths[targetID] = reconstructTreePath(prev, sourceID, targetID)
	}
	return paths
}

// shortestPathTree returns the BFS predecessor of every person reached from
// sourceID. The source itself has no entry.
func shortestPathTree(graph *social.Graph, sourceID int) map[int]int {
	prev := make(map[int]int)
	visited := map[int]bool{sourceID: true}

	queue := list.New()
	queue.PushBack(sourceID)

	for queue.Len() > 0 {
		currentID, ok := queue.Remove(queue.Front()).(int)
		if !ok {
			continue
		}

		for _, neighborID := range graph.Neighbors(currentID) {
			if visited[neighborID] {
				continue
			}
			visited[neighborID] = true
			prev[neighborID] = currentID
			queue.PushBack(neighborID)
		}
	}

	return prev
}

// reconstructTreePath walks predecessors back from targetID and reverses.
func reconstructTreePath(prev map[int]int, sourceID, targetID int) []int {
	if _, reached := prev[targetID]; !reached {
		return []int{targetID}
	}

	path := []int{targetID}
	for node := targetID; node != sourceID; {
		node = prev[node]
		path = append(path, node)
	}
	slices.Reverse(path)
	return path
}
