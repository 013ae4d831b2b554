package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dd0wney/cluso-social/pkg/analysis"
	"github.com/dd0wney/cluso-social/pkg/auth"
	"github.com/dd0wney/cluso-social/pkg/config"
	"github.com/dd0wney/cluso-social/pkg/graphql"
	"github.com/dd0wney/cluso-social/pkg/health"
	"github.com/dd0wney/cluso-social/pkg/logging"
	"github.com/dd0wney/cluso-social/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// server bundles what the HTTP routes need.
type server struct {
	analyzer *analysis.Analyzer
	registry *metrics.Registry
	checker  *health.Checker
	tokens   *auth.TokenManager
	logger   logging.Logger
}

func newServer(cfg *config.Config, a *analysis.Analyzer, registry *metrics.Registry, logger logging.Logger) (*server, error) {
	s := &server{
		analyzer: a,
		registry: registry,
		checker:  health.NewChecker(),
		logger:   logger.With(logging.Component("server")),
	}

	if cfg.Server.JWTSecret != "" {
		tokens, err := auth.NewTokenManager(cfg.Server.JWTSecret, cfg.Server.TokenTTL)
		if err != nil {
			return nil, fmt.Errorf("configure auth: %w", err)
		}
		s.tokens = tokens
	}

	s.checker.RegisterLivenessCheck("process", health.Alive())
	s.checker.RegisterReadinessCheck("graph", health.GraphCheck(func() (int, int) {
		return a.Size(), a.FriendshipCount()
	}))
	return s, nil
}

// routes builds the HTTP handler tree.
func (s *server) routes(defaultIterations int) (http.Handler, error) {
	schema, err := graphql.GenerateSchema(s.analyzer, graphql.SchemaOptions{DefaultIterations: defaultIterations})
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}

	gql := graphql.NewGraphQLHandler(schema, s.logger)
	if s.tokens != nil {
		gql.WithMutationGuard(auth.RequireRole(s.tokens, auth.RoleEditor))
	}

	mux := http.NewServeMux()
	mux.Handle("/graphql", bodyLimitMiddleware(gql))
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry.GetPrometheusRegistry(), promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", s.checker.LivenessHandler())
	mux.HandleFunc("/ready", s.checker.ReadinessHandler())

	return recoverMiddleware(s.logger, observeMiddleware(s.logger, s.registry, mux)), nil
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}
}
