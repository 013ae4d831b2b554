// Package graphql exposes an analysis.Analyzer over GraphQL.
package graphql

import (
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-social/pkg/algorithms"
	"github.com/dd0wney/cluso-social/pkg/analysis"
	"github.com/dd0wney/cluso-social/pkg/social"
	"github.com/graphql-go/graphql"
)

// SchemaOptions tunes resolver defaults.
type SchemaOptions struct {
	// DefaultIterations is used by communities when no iterations argument
	// is given.
	DefaultIterations int
}

// GenerateSchema builds the query and mutation schema over a.
func GenerateSchema(a *analysis.Analyzer, opts SchemaOptions) (graphql.Schema, error) {
	if a == nil {
		return graphql.Schema{}, errors.New("analyzer is required")
	}

	personType := createPersonType(a)

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"health": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return "ok", nil
				},
			},
			"person": &graphql.Field{
				Type: personType,
				Args: idArgs(),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					person, err := a.GetPerson(p.Args["id"].(int))
					if errors.Is(err, social.ErrPersonNotFound) {
						return nil, nil
					}
					return person, err
				},
			},
			"people": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(personType))),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return a.People(), nil
				},
			},
			"size": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return a.Size(), nil
				},
			},
			"stats": &graphql.Field{
				Type: graphql.NewNonNull(statsType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return a.Stats(), nil
				},
			},
			"suggestFriends": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.Int))),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.Int),
					},
					"mode": &graphql.ArgumentConfig{
						Type:         suggestionModeEnum,
						DefaultValue: int(algorithms.SuggestByCommonFriends),
					},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					mode, _ := p.Args["mode"].(int)
					return a.SuggestFriends(p.Args["id"].(int), algorithms.SuggestionMode(mode)), nil
				},
			},
			"degreeCentrality": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Args: idArgs(),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return a.DegreeCentrality(p.Args["id"].(int)), nil
				},
			},
			"clusteringCoefficient": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Args: idArgs(),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return a.ClusteringCoefficient(p.Args["id"].(int)), nil
				},
			},
			"shortestPath": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(graphql.Int)),
				Args: graphql.FieldConfigArgument{
					"from": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"to":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: shortestPathResolver(a),
			},
			"edgeBetweenness": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(rankedEdgeType))),
				Args: graphql.FieldConfigArgument{
					"top": &graphql.ArgumentConfig{
						Type:         graphql.Int,
						DefaultValue: 0,
					},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					top, _ := p.Args["top"].(int)
					return a.EdgeBetweenness(top), nil
				},
			},
			"communities": &graphql.Field{
				Type: graphql.NewNonNull(communityResultType),
				Args: graphql.FieldConfigArgument{
					"iterations": &graphql.ArgumentConfig{
						Type: graphql.Int,
					},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					iterations := opts.DefaultIterations
					if v, ok := p.Args["iterations"].(int); ok {
						iterations = v
					}
					if iterations < 0 {
						return nil, fmt.Errorf("iterations must be non-negative, got %d", iterations)
					}
					return a.CommunityDetection(iterations), nil
				},
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: createMutationType(a, personType),
	})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("failed to create schema: %w", err)
	}

	return schema, nil
}

func idArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{
			Type: graphql.NewNonNull(graphql.Int),
		},
	}
}

// shortestPathResolver returns null when either end is missing.
func shortestPathResolver(a *analysis.Analyzer) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		from, to := p.Args["from"].(int), p.Args["to"].(int)
		if !a.PersonExists(from) || !a.PersonExists(to) {
			return nil, nil
		}
		if from == to {
			return []int{from}, nil
		}
		return a.ShortestPaths(from)[to], nil
	}
}
