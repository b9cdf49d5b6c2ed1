package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/swfz/courserepo/internal/models"
)

type postgresStore struct {
	pool *pgxpool.Pool
}

func openPostgres(ctx context.Context, url string, log zerolog.Logger) (InstructorStore, error) {
	poolCfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	// Every session is read-only; the summary never writes
	poolCfg.ConnConfig.RuntimeParams["default_transaction_read_only"] = "on"

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info().
		Str("host", poolCfg.ConnConfig.Host).
		Int32("max_conns", poolCfg.MaxConns).
		Msg("PostgreSQL connected")

	return &postgresStore{pool: pool}, nil
}

func (s *postgresStore) InstructorSummaries(ctx context.Context) ([]models.InstructorSummary, error) {
	rows, err := s.pool.Query(ctx, instructorSummaryQuery)
	if err != nil {
		return nil, fmt.Errorf("query instructor summary: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

func (s *postgresStore) Close() error {
	s.pool.Close()
	return nil
}
