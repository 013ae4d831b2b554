package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dd0wney/cluso-social/pkg/analysis"
	"github.com/dd0wney/cluso-social/pkg/config"
	"github.com/dd0wney/cluso-social/pkg/logging"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	dataPath := flag.String("data", "", "Person records file (overrides the configured source)")
	logFile := flag.String("log", "", "Write logs to this file instead of discarding them")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dataPath != "" {
		cfg.Source.Kind = "file"
		cfg.Source.Path = *dataPath
	}

	// The alternate screen owns stdout, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.NewLogger(logOut, logging.ParseFormat(cfg.LogFormat), logging.ParseLevel(cfg.LogLevel))

	a, err := analysis.Open(context.Background(), cfg.Source, logger, nil)
	if err != nil {
		log.Fatalf("Failed to load social network: %v", err)
	}

	p := tea.NewProgram(initialModel(a, cfg.Community.DefaultIterations), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
