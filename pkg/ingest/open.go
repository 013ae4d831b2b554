package ingest

import (
	"context"
	"fmt"

	"github.com/dd0wney/cluso-social/pkg/config"
)

// Open builds the Source described by cfg. The returned close function
// releases any connection the source holds and is never nil.
func Open(ctx context.Context, cfg config.SourceConfig) (Source, func(), error) {
	noop := func() {}

	switch cfg.Kind {
	case KindFile, "":
		return NewFileSource(cfg.Path), noop, nil
	case KindS3:
		src, err := NewS3SourceFromConfig(ctx, cfg)
		if err != nil {
			return nil, noop, err
		}
		return src, noop, nil
	case KindPostgres:
		src, err := NewPostgresSource(ctx, cfg.DatabaseURL, cfg.Table)
		if err != nil {
			return nil, noop, err
		}
		return src, src.Close, nil
	default:
		return nil, noop, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Kind)
	}
}
