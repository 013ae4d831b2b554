package graphql

import (
	"github.com/dd0wney/cluso-social/pkg/algorithms"
	"github.com/dd0wney/cluso-social/pkg/analysis"
	"github.com/dd0wney/cluso-social/pkg/social"
	"github.com/graphql-go/graphql"
)

var suggestionModeEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "SuggestionMode",
	Values: graphql.EnumValueConfigMap{
		"COMMON_FRIENDS": &graphql.EnumValueConfig{Value: int(algorithms.SuggestByCommonFriends)},
		"OCCUPATION":     &graphql.EnumValueConfig{Value: int(algorithms.SuggestByOccupation)},
		"AGE":            &graphql.EnumValueConfig{Value: int(algorithms.SuggestByAge)},
	},
})

// createPersonType builds the Person object. degree and clusteringCoefficient
// are resolved through the analyzer so they share its lock.
func createPersonType(a *analysis.Analyzer) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Person",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Int),
				Resolve: personField(func(p *social.Person) any { return p.ID() }),
			},
			"name": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.String),
				Resolve: personField(func(p *social.Person) any { return p.Name() }),
			},
			"age": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Int),
				Resolve: personField(func(p *social.Person) any { return p.Age() }),
			},
			"gender": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.String),
				Resolve: personField(func(p *social.Person) any { return p.Gender() }),
			},
			"occupation": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.String),
				Resolve: personField(func(p *social.Person) any { return p.Occupation() }),
			},
			"friends": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.Int))),
				Resolve: personField(func(p *social.Person) any { return p.Friends() }),
			},
			"degree": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Int),
				Resolve: personField(func(p *social.Person) any { return p.Degree() }),
			},
			"clusteringCoefficient": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: personField(func(p *social.Person) any {
					return a.ClusteringCoefficient(p.ID())
				}),
			},
		},
	})
}

func personField(get func(*social.Person) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		person, ok := p.Source.(*social.Person)
		if !ok || person == nil {
			return nil, nil
		}
		return get(person), nil
	}
}

var edgeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Friendship",
	Fields: graphql.Fields{
		"from": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(algorithms.Edge).From, nil
			},
		},
		"to": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(algorithms.Edge).To, nil
			},
		},
	},
})

var rankedEdgeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "RankedFriendship",
	Fields: graphql.Fields{
		"from": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(algorithms.RankedEdge).Edge.From, nil
			},
		},
		"to": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(algorithms.RankedEdge).Edge.To, nil
			},
		},
		"score": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Float),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(algorithms.RankedEdge).Score, nil
			},
		},
	},
})

var communityType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Community",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(*algorithms.Community).ID, nil
			},
		},
		"members": &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.Int))),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(*algorithms.Community).Members, nil
			},
		},
		"size": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(*algorithms.Community).Size, nil
			},
		},
		"density": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Float),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(*algorithms.Community).Density, nil
			},
		},
	},
})

var communityResultType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CommunityResult",
	Fields: graphql.Fields{
		"communities": &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(communityType))),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(*algorithms.CommunityDetectionResult).Communities, nil
			},
		},
		"modularity": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Float),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(*algorithms.CommunityDetectionResult).Modularity, nil
			},
		},
		"removedEdges": &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(edgeType))),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(*algorithms.CommunityDetectionResult).RemovedEdges, nil
			},
		},
	},
})

var statsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Stats",
	Fields: graphql.Fields{
		"people": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(analysis.Stats).People, nil
			},
		},
		"friendships": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(analysis.Stats).Friendships, nil
			},
		},
		"averageClustering": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Float),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(analysis.Stats).AverageClustering, nil
			},
		},
	},
})
