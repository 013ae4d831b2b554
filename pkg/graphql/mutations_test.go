package graphql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutation_AddPersonAndFriendship(t *testing.T) {
	schema, a := setupTestSchema(t)

	var added struct {
		AddPerson struct {
			ID         int    `json:"id"`
			Name       string `json:"name"`
			Occupation string `json:"occupation"`
			Friends    []int  `json:"friends"`
		} `json:"addPerson"`
	}
	decode(t, ExecuteQuery(`mutation {
		addPerson(id: 5, name: "Eve", age: 28, occupation: "Nurse") { id name occupation friends }
	}`, schema), &added)

	assert.Equal(t, 5, added.AddPerson.ID)
	assert.Equal(t, "Nurse", added.AddPerson.Occupation)
	assert.Empty(t, added.AddPerson.Friends)
	assert.True(t, a.PersonExists(5))

	var linked struct {
		Ok      bool `json:"ok"`
		Missing bool `json:"missing"`
	}
	decode(t, ExecuteQuery(`mutation {
		ok: addFriendship(a: 4, b: 5)
		missing: addFriendship(a: 4, b: 99)
	}`, schema), &linked)

	assert.True(t, linked.Ok)
	assert.False(t, linked.Missing)
	assert.Equal(t, 2, a.DegreeCentrality(4))
	assert.Equal(t, 1, a.DegreeCentrality(5))
}

func TestMutation_RemoveFriendship(t *testing.T) {
	schema, a := setupTestSchema(t)

	var out struct {
		RemoveFriendship bool `json:"removeFriendship"`
	}
	decode(t, ExecuteQueryWithVariables(
		`mutation Remove($a: Int!, $b: Int!) { removeFriendship(a: $a, b: $b) }`,
		schema,
		map[string]any{"a": 2, "b": 3},
	), &out)

	assert.True(t, out.RemoveFriendship)
	assert.Equal(t, 2, a.FriendshipCount())
}

func TestMutation_AddPersonValidation(t *testing.T) {
	schema, a := setupTestSchema(t)

	tests := []struct {
		name  string
		query string
	}{
		{"empty name", `mutation { addPerson(id: 7, name: "", age: 20) { id } }`},
		{"negative age", `mutation { addPerson(id: 7, name: "Gus", age: -1) { id } }`},
		{"negative id", `mutation { addPerson(id: -7, name: "Gus", age: 20) { id } }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExecuteQuery(tt.query, schema)
			require.True(t, result.HasErrors())
		})
	}
	assert.False(t, a.PersonExists(7))
	assert.False(t, a.PersonExists(-7))
}
