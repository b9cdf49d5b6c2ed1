package interactive

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/swfz/courserepo/internal/formatter"
	"github.com/swfz/courserepo/internal/models"
)

// StudentFinder looks up the progress summary of one student and the major it is measured against
type StudentFinder interface {
	StudentSummary(cwid string) (models.StudentSummary, error)
	Major(name string) (*models.Major, bool)
}

// Runner reads CWIDs from a line-oriented input and prints each student's progress
type Runner struct {
	finder  StudentFinder
	scanner *bufio.Scanner
	out     io.Writer
}

// NewRunner creates a new lookup prompt
func NewRunner(finder StudentFinder, in io.Reader, out io.Writer) *Runner {
	return &Runner{
		finder:  finder,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Run starts the lookup loop. It returns nil on "q", end of input, or cancellation.
func (r *Runner) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprint(r.out, "\nEnter a student CWID (or 'q' to quit): ")

		input, err := r.readLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		cwid, quit, err := parseCWID(input)
		if quit {
			fmt.Fprintln(r.out, "Exiting lookup mode.")
			return nil
		}
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			continue
		}

		summary, err := r.finder.StudentSummary(cwid)
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			continue
		}

		r.displayStudent(summary)
	}
}

// readLine reads a line, returning io.EOF once input is exhausted
func (r *Runner) readLine() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

// parseCWID validates one line of input
func parseCWID(input string) (cwid string, quit bool, err error) {
	input = strings.TrimSpace(input)

	if strings.EqualFold(input, "q") {
		return "", true, nil
	}
	if input == "" {
		return "", false, fmt.Errorf("empty input")
	}
	if strings.ContainsAny(input, " \t") {
		return "", false, fmt.Errorf("invalid CWID: %q", input)
	}

	return input, false, nil
}

// displayStudent prints one student's progress
func (r *Runner) displayStudent(s models.StudentSummary) {
	fmt.Fprintln(r.out, "\n"+strings.Repeat("-", 60))
	fmt.Fprintf(r.out, "CWID:                %s\n", s.CWID)
	fmt.Fprintf(r.out, "Name:                %s\n", s.Name)
	fmt.Fprintf(r.out, "Major:               %s\n", s.Major)
	fmt.Fprintf(r.out, "Completed:           %s\n", formatter.JoinList(s.Completed))
	fmt.Fprintf(r.out, "Remaining required:  %s\n", formatter.JoinList(s.RemainingRequired))
	fmt.Fprintf(r.out, "Remaining electives: %s\n", formatter.JoinList(s.RemainingElectives))
	fmt.Fprintln(r.out, strings.Repeat("-", 60))

	if _, ok := r.finder.Major(s.Major); !ok {
		fmt.Fprintf(r.out, "⚠️  Major %q not found, remaining requirements are unknown\n", s.Major)
		return
	}
	if len(s.RemainingRequired) == 0 && len(s.RemainingElectives) == 0 {
		fmt.Fprintln(r.out, "✅ All degree requirements met")
	}
}
