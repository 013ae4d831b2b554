package algorithms

import (
	"slices"
	"testing"
)

// TestShortestPaths_Path tests paths along a simple chain
func TestShortestPaths_Path(t *testing.T) {
	g := setupSocialTestGraph(t, 4, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4})

	paths := ShortestPaths(g, 1)

	if len(paths) != 3 {
		t.Fatalf("Expected paths to 3 other people, got %d", len(paths))
	}
	if _, ok := paths[1]; ok {
		t.Error("source should not have a path entry")
	}
	if !slices.Equal(paths[4], []int{1, 2, 3, 4}) {
		t.Errorf("Expected [1 2 3 4], got %v", paths[4])
	}
	if !slices.Equal(paths[2], []int{1, 2}) {
		t.Errorf("Expected [1 2], got %v", paths[2])
	}
}

// TestShortestPaths_SinglePredecessor tests only the first-discovered path is kept
func TestShortestPaths_SinglePredecessor(t *testing.T) {
	// Diamond: 1-2, 1-3, 2-4, 3-4. Two shortest paths to 4.
	g := setupSocialTestGraph(t, 4, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 4}, [2]int{3, 4})

	paths := ShortestPaths(g, 1)

	if !slices.Equal(paths[4], []int{1, 2, 4}) {
		t.Errorf("Expected [1 2 4] via first-discovered neighbour, got %v", paths[4])
	}
}

// TestShortestPaths_Unreachable tests disconnected people yield single-element paths
func TestShortestPaths_Unreachable(t *testing.T) {
	g := setupSocialTestGraph(t, 3, [2]int{1, 2})

	paths := ShortestPaths(g, 1)

	if !slices.Equal(paths[3], []int{3}) {
		t.Errorf("Expected [3], got %v", paths[3])
	}
}

// TestShortestPaths_MissingSource tests a missing source reaches nobody
func TestShortestPaths_MissingSource(t *testing.T) {
	g := setupSocialTestGraph(t, 2, [2]int{1, 2})

	paths := ShortestPaths(g, 9)

	if len(paths) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(paths))
	}
	for id, path := range paths {
		if len(path) != 1 {
			t.Errorf("Expected single-element path for %d, got %v", id, path)
		}
	}
}
