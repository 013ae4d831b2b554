package analysis

import (
	"context"
	"fmt"

	"github.com/dd0wney/cluso-social/pkg/config"
	"github.com/dd0wney/cluso-social/pkg/ingest"
	"github.com/dd0wney/cluso-social/pkg/logging"
	"github.com/dd0wney/cluso-social/pkg/metrics"
)

// Open loads every record from the configured source and builds an
// analyzer over them.
func Open(ctx context.Context, cfg config.SourceConfig, logger logging.Logger, registry *metrics.Registry) (*Analyzer, error) {
	src, closeSource, err := ingest.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s source: %w", cfg.Kind, err)
	}
	defer closeSource()

	records, err := ingest.NewLoader(logger, registry).Load(ctx, src)
	if err != nil {
		return nil, err
	}

	a := NewFromRecords(records, logger, registry)
	a.logger.Info("social network loaded",
		logging.String("source", src.Kind()),
		logging.Int("people", a.graph.Size()),
		logging.Int("friendships", a.graph.FriendshipCount()),
	)
	return a, nil
}
