package algorithms

import "github.com/dd0wney/cluso-social/pkg/social"

// SuggestionMode selects the friend suggestion heuristic.
type SuggestionMode int

const (
	// SuggestByCommonFriends emits every friend-of-friend once per connecting
	// friend, so people reachable through several mutual friends repeat.
	SuggestByCommonFriends SuggestionMode = 1

	// SuggestByOccupation emits everyone with the same occupation.
	SuggestByOccupation SuggestionMode = 2

	// SuggestByAge emits everyone with exactly the same age.
	SuggestByAge SuggestionMode = 3
)

func (m SuggestionMode) String() string {
	switch m {
	case SuggestByCommonFriends:
		return "common_friends"
	case SuggestByOccupation:
		return "occupation"
	case SuggestByAge:
		return "age"
	default:
		return "unknown"
	}
}

// SuggestFriends returns suggested friend ids for personID. Existing friends
// and the person itself are never suggested. An unknown mode or a missing
// person yields an empty result.
func SuggestFriends(graph *social.Graph, personID int, mode SuggestionMode) []int {
	person, err := graph.GetPerson(personID)
	if err != nil {
		return []int{}
	}

	switch mode {
	case SuggestByCommonFriends:
		return suggestByCommonFriends(graph, person)
	case SuggestByOccupation:
		return suggestByAttribute(graph, person, func(other *social.Person) bool {
			return other.Occupation() == person.Occupation()
		})
	case SuggestByAge:
		return suggestByAttribute(graph, person, func(other *social.Person) bool {
			return other.Age() == person.Age()
		})
	default:
		return []int{}
	}
}

// Duplicates are kept: the count of an id equals the number of
// common-friend paths leading to it.
func suggestByCommonFriends(graph *social.Graph, person *social.Person) []int {
	suggested := make([]int, 0)
	for _, friendID := range graph.Neighbors(person.ID()) {
		for _, candidate := range graph.Neighbors(friendID) {
			if candidate != person.ID() && !person.IsFriendWith(candidate) {
				suggested = append(suggested, candidate)
			}
		}
	}
	return suggested
}

func suggestByAttribute(graph *social.Graph, person *social.Person, match func(*social.Person) bool) []int {
	suggested := make([]int, 0)
	for _, id := range graph.IDs() {
		if id == person.ID() || person.IsFriendWith(id) {
			continue
		}
		other, err := graph.GetPerson(id)
		if err != nil {
			continue
		}
		if match(other) {
			suggested = append(suggested, id)
		}
	}
	return suggested
}
