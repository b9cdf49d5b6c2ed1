package formatter

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/swfz/courserepo/internal/models"
)

// Options controls how report cells are rendered
type Options struct {
	MaxCellWidth int // Truncate cells wider than this (0 = unlimited)
}

// RenderReport writes a report as a bordered console table
func RenderReport(w io.Writer, report models.Report, opts Options) error {
	table := tablewriter.NewWriter(w)

	headers := make([]any, len(report.Headers))
	for i, h := range report.Headers {
		headers[i] = h
	}
	table.Header(headers...)

	for _, row := range report.Rows {
		cells := make([]any, len(row))
		for i, cell := range row {
			text := Cell(cell)
			if opts.MaxCellWidth > 0 {
				text = TruncateWithEllipsis(text, opts.MaxCellWidth)
			}
			cells[i] = text
		}
		if err := table.Append(cells...); err != nil {
			return fmt.Errorf("failed to append %s row: %w", report.Kind, err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render %s table: %w", report.Kind, err)
	}
	return nil
}

// RenderTitled writes a heading line followed by the report table
func RenderTitled(w io.Writer, title string, report models.Report, opts Options) error {
	if _, err := fmt.Fprintf(w, "%s - %s\n", title, report.Kind.Title()); err != nil {
		return err
	}
	return RenderReport(w, report, opts)
}
