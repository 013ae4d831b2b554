package social

import (
	"slices"
	"testing"
)

func TestPerson_Accessors(t *testing.T) {
	p := NewPerson(7, "Ada", 36, "F", "Engineer", []int{1, 2})

	if p.ID() != 7 || p.Name() != "Ada" || p.Age() != 36 {
		t.Fatalf("unexpected identity: %d %s %d", p.ID(), p.Name(), p.Age())
	}
	if p.Gender() != "F" || p.Occupation() != "Engineer" {
		t.Errorf("unexpected attributes: %s %s", p.Gender(), p.Occupation())
	}

	p.SetID(8)
	p.SetName("Grace")
	p.SetAge(40)
	if p.ID() != 8 || p.Name() != "Grace" || p.Age() != 40 {
		t.Errorf("setters not applied: %d %s %d", p.ID(), p.Name(), p.Age())
	}
}

func TestPerson_AddFriendDoesNotDedup(t *testing.T) {
	p := NewPerson(1, "A", 20, "M", "X", nil)
	p.AddFriend(2)
	p.AddFriend(2)

	if got := p.Friends(); !slices.Equal(got, []int{2, 2}) {
		t.Errorf("Expected [2 2], got %v", got)
	}
	if p.Degree() != 2 {
		t.Errorf("Expected degree 2, got %d", p.Degree())
	}
}

func TestPerson_RemoveFriendRemovesAllOccurrences(t *testing.T) {
	p := NewPerson(1, "A", 20, "M", "X", []int{2, 3, 2, 4, 2})
	p.RemoveFriend(2)

	if got := p.Friends(); !slices.Equal(got, []int{3, 4}) {
		t.Errorf("Expected [3 4], got %v", got)
	}

	// Removing a non-friend is a no-op
	p.RemoveFriend(99)
	if got := p.Friends(); !slices.Equal(got, []int{3, 4}) {
		t.Errorf("Expected [3 4] after no-op removal, got %v", got)
	}
}

func TestPerson_IsFriendWith(t *testing.T) {
	p := NewPerson(1, "A", 20, "M", "X", []int{5})

	if !p.IsFriendWith(5) {
		t.Error("Expected 1 to be friends with 5")
	}
	if p.IsFriendWith(6) {
		t.Error("Expected 1 not to be friends with 6")
	}
}

func TestPerson_FriendsReturnsCopy(t *testing.T) {
	p := NewPerson(1, "A", 20, "M", "X", []int{2, 3})

	friends := p.Friends()
	friends[0] = 42

	if p.IsFriendWith(42) {
		t.Error("mutating the returned slice changed the person")
	}
}

func TestPerson_ConstructorCopiesFriends(t *testing.T) {
	input := []int{2, 3}
	p := NewPerson(1, "A", 20, "M", "X", input)
	input[0] = 42

	if p.IsFriendWith(42) {
		t.Error("mutating the input slice changed the person")
	}
}

func TestPerson_Clone(t *testing.T) {
	p := NewPerson(1, "A", 20, "M", "X", []int{2})
	c := p.Clone()
	c.AddFriend(3)
	c.SetName("B")

	if p.IsFriendWith(3) || p.Name() != "A" {
		t.Error("clone shares state with original")
	}
}
