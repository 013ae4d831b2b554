package social

import "slices"

// Person is a vertex of the social graph. Attributes are plain values; the
// friend list is the vertex's adjacency list and is only changed through
// AddFriend/RemoveFriend.
type Person struct {
	id         int
	name       string
	age        int
	gender     string
	occupation string
	friends    []int
}

// NewPerson creates a person. The friend list is copied.
func NewPerson(id int, name string, age int, gender, occupation string, friends []int) *Person {
	return &Person{
		id:         id,
		name:       name,
		age:        age,
		gender:     gender,
		occupation: occupation,
		friends:    slices.Clone(friends),
	}
}

func (p *Person) ID() int             { return p.id }
func (p *Person) SetID(id int)        { p.id = id }
func (p *Person) Name() string        { return p.name }
func (p *Person) SetName(name string) { p.name = name }
func (p *Person) Age() int            { return p.age }
func (p *Person) SetAge(age int)      { p.age = age }
func (p *Person) Gender() string      { return p.gender }
func (p *Person) Occupation() string  { return p.occupation }

// AddFriend appends id to the adjacency list. No dedup and no self-loop
// check: callers must not add an id that is already present or equal to
// the person's own id.
func (p *Person) AddFriend(id int) {
	p.friends = append(p.friends, id)
}

// RemoveFriend removes every occurrence of id. Removing a non-friend is a no-op.
func (p *Person) RemoveFriend(id int) {
	p.friends = slices.DeleteFunc(p.friends, func(f int) bool { return f == id })
}

// IsFriendWith reports whether id is in the adjacency list.
func (p *Person) IsFriendWith(id int) bool {
	return slices.Contains(p.friends, id)
}

// Friends returns a copy of the adjacency list.
func (p *Person) Friends() []int {
	return slices.Clone(p.friends)
}

// Degree is the number of adjacency-list entries, duplicates included.
func (p *Person) Degree() int {
	return len(p.friends)
}

// Clone returns an independent copy of the person.
func (p *Person) Clone() *Person {
	c := *p
	c.friends = slices.Clone(p.friends)
	return &c
}
