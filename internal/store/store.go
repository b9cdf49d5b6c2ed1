// Package store reads the instructor summary from a pre-populated relational
// database. It never writes: the database is an alternate, read-only source for
// the same rows the in-memory repository computes.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/swfz/courserepo/internal/models"
)

// The schema is the one the reference database ships with:
// instructors(cwid, name, dept) and grades(studentcwid, course, grade, instructorcwid).
const instructorSummaryQuery = `
	SELECT i.cwid, i.name, i.dept, g.course, COUNT(*) AS students
	FROM instructors i
	JOIN grades g ON i.cwid = g.instructorcwid
	GROUP BY i.cwid, i.name, i.dept, g.course
	ORDER BY i.cwid, g.course
`

// InstructorStore provides instructor/course/headcount rows
type InstructorStore interface {
	InstructorSummaries(ctx context.Context) ([]models.InstructorSummary, error)
	Close() error
}

// Open connects to the database named by url.
// postgres:// and postgresql:// URLs use PostgreSQL; sqlite://<path> or a bare
// path ending in .db or .sqlite use SQLite.
func Open(ctx context.Context, url string, log zerolog.Logger) (InstructorStore, error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return openPostgres(ctx, url, log)
	case strings.HasPrefix(url, "sqlite://"):
		return openSQLite(ctx, strings.TrimPrefix(url, "sqlite://"), log)
	case strings.HasSuffix(url, ".db"), strings.HasSuffix(url, ".sqlite"):
		return openSQLite(ctx, url, log)
	default:
		return nil, fmt.Errorf("unsupported database URL %q: %w", url, models.ErrInvalidArgument)
	}
}

// rowScanner is satisfied by both database/sql and pgx rows
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanSummaries(rows rowScanner) ([]models.InstructorSummary, error) {
	var summaries []models.InstructorSummary
	for rows.Next() {
		var s models.InstructorSummary
		if err := rows.Scan(&s.CWID, &s.Name, &s.Department, &s.Course, &s.Students); err != nil {
			return nil, fmt.Errorf("failed to scan instructor summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read instructor summary: %w", err)
	}
	return summaries, nil
}
