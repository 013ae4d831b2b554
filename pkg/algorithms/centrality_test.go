package algorithms

import (
	"math"
	"testing"
)

// TestDegreeCentrality tests degree equals adjacency-list length
func TestDegreeCentrality(t *testing.T) {
	g := setupSocialTestGraph(t, 4, [2]int{1, 2}, [2]int{1, 3}, [2]int{1, 4})

	tests := []struct {
		name string
		id   int
		want int
	}{
		{"hub", 1, 3},
		{"leaf", 2, 1},
		{"missing", 42, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DegreeCentrality(g, tt.id); got != tt.want {
				t.Errorf("DegreeCentrality(%d) = %d, want %d", tt.id, got, tt.want)
			}
		})
	}
}

// TestDegreeCentrality_CountsDuplicates tests duplicate adjacency entries are counted
func TestDegreeCentrality_CountsDuplicates(t *testing.T) {
	g := setupSocialTestGraph(t, 2, [2]int{1, 2})
	p, _ := g.GetPerson(1)
	p.AddFriend(2)

	if got := DegreeCentrality(g, 1); got != 2 {
		t.Errorf("Expected degree 2 with duplicate entry, got %d", got)
	}
}

// TestDegreeDistribution tests the per-person degree map
func TestDegreeDistribution(t *testing.T) {
	g := setupSocialTestGraph(t, 3, [2]int{1, 2})

	got := DegreeDistribution(g)
	if got[1] != 1 || got[2] != 1 || got[3] != 0 || len(got) != 3 {
		t.Errorf("unexpected distribution: %v", got)
	}
}

// TestClusteringCoefficient tests triangle and star configurations
func TestClusteringCoefficient(t *testing.T) {
	// Triangle 1-2-3 plus pendant 1-4
	g := setupSocialTestGraph(t, 4,
		[2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3}, [2]int{1, 4})

	tests := []struct {
		name string
		id   int
		want float64
	}{
		{"one of three pairs connected", 1, 1.0 / 3.0},
		{"complete neighbourhood", 2, 1.0},
		{"single friend", 4, 0.0},
		{"missing", 99, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClusteringCoefficient(g, tt.id)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ClusteringCoefficient(%d) = %f, want %f", tt.id, got, tt.want)
			}
		})
	}
}

// TestClusteringCoefficient_NoFriends tests the guarded zero-pair case
func TestClusteringCoefficient_NoFriends(t *testing.T) {
	g := setupSocialTestGraph(t, 1)

	got := ClusteringCoefficient(g, 1)
	if got != 0.0 || math.IsNaN(got) {
		t.Errorf("Expected 0.0, got %f", got)
	}
}

// TestClusteringCoefficient_DanglingFriend tests a friend id with no person never connects
func TestClusteringCoefficient_DanglingFriend(t *testing.T) {
	g := setupSocialTestGraph(t, 3, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3})
	p, _ := g.GetPerson(1)
	p.AddFriend(77)

	// Pairs: (2,3) connected, (2,77) no, (3,77) no
	got := ClusteringCoefficient(g, 1)
	if math.Abs(got-1.0/3.0) > 1e-9 {
		t.Errorf("Expected 1/3, got %f", got)
	}
}

// TestAverageClusteringCoefficient tests averaging over all people
func TestAverageClusteringCoefficient(t *testing.T) {
	g := setupSocialTestGraph(t, 3, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3})

	if got := AverageClusteringCoefficient(g); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Expected 1.0 for a triangle, got %f", got)
	}

	empty := setupSocialTestGraph(t, 0)
	if got := AverageClusteringCoefficient(empty); got != 0.0 {
		t.Errorf("Expected 0.0 for empty graph, got %f", got)
	}
}
