package ingest

import (
	"context"
	"fmt"

	"github.com/dd0wney/cluso-social/pkg/logging"
	"github.com/dd0wney/cluso-social/pkg/metrics"
	"github.com/dd0wney/cluso-social/pkg/social"
	"github.com/dd0wney/cluso-social/pkg/validation"
)

// Source kinds
const (
	KindFile     = "file"
	KindS3       = "s3"
	KindPostgres = "postgres"
)

// Source produces person records from some external store.
type Source interface {
	Kind() string
	Load(ctx context.Context) ([]social.Record, error)
}

// Loader pulls records from a Source, validates them and reports friend ids
// that point at nobody.
type Loader struct {
	logger  logging.Logger
	metrics *metrics.Registry
}

// NewLoader creates a loader. A nil logger discards output and a nil
// registry disables metrics.
func NewLoader(logger logging.Logger, registry *metrics.Registry) *Loader {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Loader{
		logger:  logger.With(logging.Component("ingest")),
		metrics: registry,
	}
}

// Load reads and validates all records from src.
func (l *Loader) Load(ctx context.Context, src Source) ([]social.Record, error) {
	timer := logging.StartTimer(l.logger, "records loaded", logging.String("source", src.Kind()))

	records, err := src.Load(ctx)
	if err == nil {
		err = validation.ValidateRecords(records)
	}
	if l.metrics != nil {
		l.metrics.RecordIngest(src.Kind(), len(records), err)
	}
	if err != nil {
		l.logger.Error("failed to load records", logging.String("source", src.Kind()), logging.Error(err))
		return nil, fmt.Errorf("load %s source: %w", src.Kind(), err)
	}

	l.warnDangling(records)
	timer.End(logging.Count(len(records)))
	return records, nil
}

// warnDangling logs friend ids with no record and one-sided friendships.
func (l *Loader) warnDangling(records []social.Record) {
	friends := make(map[int]map[int]bool, len(records))
	for _, r := range records {
		set := make(map[int]bool, len(r.Friends))
		for _, f := range r.Friends {
			set[f] = true
		}
		friends[r.ID] = set
	}

	for _, r := range records {
		for _, f := range r.Friends {
			other, ok := friends[f]
			switch {
			case !ok:
				l.logger.Warn("friend id has no record", logging.PersonID(r.ID), logging.Int("friend_id", f))
			case !other[r.ID]:
				l.logger.Warn("one-sided friendship", logging.PersonID(r.ID), logging.Int("friend_id", f))
			}
		}
	}
}
