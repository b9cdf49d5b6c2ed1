package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/swfz/courserepo/internal/models"
)

type sqliteStore struct {
	db *sql.DB
}

func openSQLite(ctx context.Context, path string, log zerolog.Logger) (InstructorStore, error) {
	// sql.Open would silently create a missing file
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("unable to open database at %s: %w", path, models.ErrNotFound)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// query_only is per connection, so keep a single one
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, "PRAGMA query_only = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set sqlite read-only: %w", err)
	}

	log.Info().Str("path", path).Msg("SQLite connected")

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) InstructorSummaries(ctx context.Context) ([]models.InstructorSummary, error) {
	rows, err := s.db.QueryContext(ctx, instructorSummaryQuery)
	if err != nil {
		return nil, fmt.Errorf("query instructor summary: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
