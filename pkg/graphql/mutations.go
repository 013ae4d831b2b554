package graphql

import (
	"github.com/dd0wney/cluso-social/pkg/analysis"
	"github.com/dd0wney/cluso-social/pkg/social"
	"github.com/dd0wney/cluso-social/pkg/validation"
	"github.com/graphql-go/graphql"
)

func createMutationType(a *analysis.Analyzer, personType *graphql.Object) *graphql.Object {
	pairArgs := graphql.FieldConfigArgument{
		"a": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		"b": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
	}

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"addPerson": &graphql.Field{
				Type: personType,
				Args: graphql.FieldConfigArgument{
					"id":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"name":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"age":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"gender":     &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
					"occupation": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				},
				Resolve: addPersonResolver(a),
			},
			"addFriendship": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: pairArgs,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return a.AddFriendship(p.Args["a"].(int), p.Args["b"].(int)), nil
				},
			},
			"removeFriendship": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: pairArgs,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return a.RemoveFriendship(p.Args["a"].(int), p.Args["b"].(int)), nil
				},
			},
		},
	})
}

// addPersonResolver validates the arguments as a record and upserts a
// person with no friends. Friendships are added separately so they stay
// symmetric.
func addPersonResolver(a *analysis.Analyzer) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		gender, _ := p.Args["gender"].(string)
		occupation, _ := p.Args["occupation"].(string)

		record := social.Record{
			ID:         p.Args["id"].(int),
			Name:       p.Args["name"].(string),
			Age:        p.Args["age"].(int),
			Gender:     gender,
			Occupation: occupation,
		}
		if err := validation.ValidateRecord(&record); err != nil {
			return nil, err
		}

		a.AddPerson(record.Person())
		return a.GetPerson(record.ID)
	}
}
