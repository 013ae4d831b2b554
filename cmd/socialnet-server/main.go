// Command socialnet-server serves a social network over GraphQL with
// Prometheus metrics and health endpoints.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dd0wney/cluso-social/pkg/analysis"
	"github.com/dd0wney/cluso-social/pkg/auth"
	"github.com/dd0wney/cluso-social/pkg/config"
	"github.com/dd0wney/cluso-social/pkg/events"
	"github.com/dd0wney/cluso-social/pkg/health"
	"github.com/dd0wney/cluso-social/pkg/ingest"
	"github.com/dd0wney/cluso-social/pkg/logging"
	"github.com/dd0wney/cluso-social/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	dataPath := flag.String("data", "", "Person records file (overrides the configured source)")
	listen := flag.String("listen", "", "Listen address (overrides server.listen)")
	issueToken := flag.String("issue-token", "", "Print a mutation token for this subject and exit")
	role := flag.String("role", auth.RoleEditor, "Role for -issue-token")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *dataPath != "" {
		cfg.Source.Kind = ingest.KindFile
		cfg.Source.Path = *dataPath
	}
	if *listen != "" {
		cfg.Server.Listen = *listen
	}

	if *issueToken != "" {
		if err := printToken(cfg, *issueToken, *role); err != nil {
			fmt.Fprintf(os.Stderr, "issue token: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger := logging.NewLogger(os.Stdout, logging.ParseFormat(cfg.LogFormat), logging.ParseLevel(cfg.LogLevel))
	logging.SetDefaultLogger(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server failed", logging.Error(err))
		os.Exit(1)
	}
}

func printToken(cfg *config.Config, subject, role string) error {
	if cfg.Server.JWTSecret == "" {
		return fmt.Errorf("server.jwt_secret is not set")
	}
	tokens, err := auth.NewTokenManager(cfg.Server.JWTSecret, cfg.Server.TokenTTL)
	if err != nil {
		return err
	}
	token, err := tokens.GenerateToken(subject, role)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func run(cfg *config.Config, logger logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := metrics.NewRegistry()

	a, err := analysis.Open(ctx, cfg.Source, logger, registry)
	if err != nil {
		return err
	}

	srv, err := newServer(cfg, a, registry, logger)
	if err != nil {
		return err
	}

	if cfg.Events.Listen != "" {
		publisher, err := events.NewPublisher(cfg.Events.Listen, cfg.Events.Buffer, logger)
		if err != nil {
			return err
		}
		defer publisher.Close()
		a.SetNotifier(publisher)
		srv.checker.RegisterReadinessCheck("events", health.EventsCheck(publisher.Dropped))
	}

	if cfg.Source.Kind == ingest.KindPostgres {
		db, err := ingest.NewPostgresSource(ctx, cfg.Source.DatabaseURL, cfg.Source.Table)
		if err != nil {
			return err
		}
		defer db.Close()
		srv.checker.RegisterReadinessCheck("database", health.PingCheck("database", 2*time.Second, db.Ping))
	}

	handler, err := srv.routes(cfg.Community.DefaultIterations)
	if err != nil {
		return err
	}
	httpServer := newHTTPServer(cfg.Server.Listen, handler)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			logging.String("addr", cfg.Server.Listen),
			logging.Bool("auth", srv.tokens != nil),
			logging.Bool("events", cfg.Events.Listen != ""),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server exited")
	return nil
}
