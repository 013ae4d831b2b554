package algorithms

import "fmt"

// Edge is an undirected friendship with the smaller id first.
type Edge struct {
	From int
	To   int
}

// NewEdge orders a and b so that From <= To.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{From: a, To: b}
}

// Less orders edges lexically by (From, To).
func (e Edge) Less(other Edge) bool {
	if e.From != other.From {
		return e.From < other.From
	}
	return e.To < other.To
}

func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.From, e.To)
}

// Community represents a detected community
type Community struct {
	ID      int
	Members []int // traversal order
	Size    int
	Density float64 // Friendship density within community, measured on the input graph
}

// CommunityDetectionResult contains detected communities
type CommunityDetectionResult struct {
	Communities   []*Community
	Modularity    float64     // Quality measure of the partitioning against the input graph
	NodeCommunity map[int]int // Person ID -> Community ID
	RemovedEdges  []Edge      // In removal order
}

// Members returns each community's ids in discovery order.
func (r *CommunityDetectionResult) Members() [][]int {
	out := make([][]int, len(r.Communities))
	for i, c := range r.Communities {
		out[i] = c.Members
	}
	return out
}
