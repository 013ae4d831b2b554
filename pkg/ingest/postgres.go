package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/dd0wney/cluso-social/pkg/social"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads people from a table with columns
// (id int, name text, age int, gender text, occupation text, friends int[]).
type PostgresSource struct {
	pool  *pgxpool.Pool
	table string
}

// NewPostgresSource connects to databaseURL and verifies the connection.
func NewPostgresSource(ctx context.Context, databaseURL, table string) (*PostgresSource, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 4
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &PostgresSource{pool: pool, table: table}, nil
}

func (s *PostgresSource) Kind() string { return KindPostgres }

// Ping checks that the database is still reachable.
func (s *PostgresSource) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the connection pool
func (s *PostgresSource) Close() {
	s.pool.Close()
}

// Load selects every person ordered by id.
func (s *PostgresSource) Load(ctx context.Context) ([]social.Record, error) {
	query := fmt.Sprintf(
		`SELECT id, name, age, COALESCE(gender, ''), COALESCE(occupation, ''), COALESCE(friends, '{}')
		 FROM %s ORDER BY id`,
		pgx.Identifier{s.table}.Sanitize(),
	)

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.table, err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (social.Record, error) {
		var (
			r       social.Record
			friends []int64
		)
		if err := row.Scan(&r.ID, &r.Name, &r.Age, &r.Gender, &r.Occupation, &friends); err != nil {
			return social.Record{}, err
		}
		r.Friends = make([]int, len(friends))
		for i, f := range friends {
			r.Friends[i] = int(f)
		}
		return r, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", s.table, err)
	}
	return records, nil
}
