package social

import (
	"maps"
	"slices"
)

// Graph owns a table of people keyed by id. Friendship is expected to be
// symmetric: the public AddFriendship/RemoveFriendship API keeps it so.
// A Graph is not safe for concurrent use.
type Graph struct {
	vertices map[int]*Person
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{vertices: make(map[int]*Person)}
}

// NewGraphFromRecords builds a graph from ingested records. Friend lists are
// taken as given; later records with a duplicate id replace earlier ones.
func NewGraphFromRecords(records []Record) *Graph {
	g := &Graph{vertices: make(map[int]*Person, len(records))}
	for _, r := range records {
		g.AddPerson(r.ID, r.Person())
	}
	return g
}

// PersonExists reports whether id is a vertex.
func (g *Graph) PersonExists(id int) bool {
	_, ok := g.vertices[id]
	return ok
}

// AddPerson inserts person at id, replacing any existing person there.
func (g *Graph) AddPerson(id int, person *Person) {
	if person == nil {
		return
	}
	g.vertices[id] = person
}

// RemovePerson deletes the vertex at id. Adjacency entries pointing at it
// from other people are left untouched.
func (g *Graph) RemovePerson(id int) {
	delete(g.vertices, id)
}

// GetPerson returns the person at id or ErrPersonNotFound.
func (g *Graph) GetPerson(id int) (*Person, error) {
	p, ok := g.vertices[id]
	if !ok {
		return nil, ErrPersonNotFound
	}
	return p, nil
}

// AddFriendship connects id1 and id2 in both directions. It is a no-op if
// either id is missing.
func (g *Graph) AddFriendship(id1, id2 int) {
	p1, ok1 := g.vertices[id1]
	p2, ok2 := g.vertices[id2]
	if !ok1 || !ok2 {
		return
	}
	p1.AddFriend(id2)
	p2.AddFriend(id1)
}

// RemoveFriendship disconnects id1 and id2 in both directions. It is a
// no-op if either id is missing.
func (g *Graph) RemoveFriendship(id1, id2 int) {
	p1, ok1 := g.vertices[id1]
	p2, ok2 := g.vertices[id2]
	if !ok1 || !ok2 {
		return
	}
	p1.RemoveFriend(id2)
	p2.RemoveFriend(id1)
}

// Size returns the number of people.
func (g *Graph) Size() int {
	return len(g.vertices)
}

// IDs returns every vertex id in ascending order.
func (g *Graph) IDs() []int {
	return slices.Sorted(maps.Keys(g.vertices))
}

// Vertices returns a snapshot of the vertex table. The people in it are
// copies; mutating them does not affect the graph.
func (g *Graph) Vertices() map[int]*Person {
	snapshot := make(map[int]*Person, len(g.vertices))
	for id, p := range g.vertices {
		snapshot[id] = p.Clone()
	}
	return snapshot
}

// Clone returns a deep copy: every Person is a new, independently owned
// instance with identical attributes and adjacency.
func (g *Graph) Clone() *Graph {
	c := &Graph{vertices: make(map[int]*Person, len(g.vertices))}
	for id, p := range g.vertices {
		c.vertices[id] = p.Clone()
	}
	return c
}

// Neighbors returns the adjacency list of id without copying it, or nil if
// id is missing. Callers must not modify the returned slice.
func (g *Graph) Neighbors(id int) []int {
	p, ok := g.vertices[id]
	if !ok {
		return nil
	}
	return p.friends
}

// FriendshipCount returns the number of distinct undirected friendships
// between existing people.
func (g *Graph) FriendshipCount() int {
	seen := make(map[[2]int]struct{})
	for id, p := range g.vertices {
		for _, f := range p.friends {
			if f == id || !g.PersonExists(f) {
				continue
			}
			key := [2]int{min(id, f), max(id, f)}
			seen[key] = struct{}{}
		}
	}
	return len(seen)
}
