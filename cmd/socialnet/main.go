package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dd0wney/cluso-social/pkg/analysis"
	"github.com/dd0wney/cluso-social/pkg/config"
	"github.com/dd0wney/cluso-social/pkg/logging"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	dataPath := flag.String("data", "", "Person records file (overrides the configured source)")
	logFormat := flag.String("log-format", "text", "Log format: json or text")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error loading config: "+err.Error()))
		os.Exit(1)
	}
	if *dataPath != "" {
		cfg.Source.Kind = "file"
		cfg.Source.Path = *dataPath
	}

	logger := logging.NewLogger(os.Stderr, logging.ParseFormat(*logFormat), logging.ParseLevel(cfg.LogLevel))

	cli := NewCLI(nil, os.Stdin, os.Stdout, cfg.Community.DefaultIterations)

	a, err := analysis.Open(context.Background(), cfg.Source, logger, nil)
	if err != nil {
		// An empty network keeps the menu usable.
		cli.errorf("Error loading network data: %v", err)
		a = analysis.New(nil, logger, nil)
	} else {
		cli.successf("Data loaded.")
	}
	cli.analyzer = a

	cli.Run()
}
