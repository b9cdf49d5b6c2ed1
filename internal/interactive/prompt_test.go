package interactive

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swfz/courserepo/internal/models"
)

type mapFinder map[string]models.StudentSummary

func (f mapFinder) StudentSummary(cwid string) (models.StudentSummary, error) {
	s, ok := f[cwid]
	if !ok {
		return models.StudentSummary{}, fmt.Errorf("student %s: %w", cwid, models.ErrNotFound)
	}
	return s, nil
}

func (f mapFinder) Major(name string) (*models.Major, bool) {
	switch name {
	case "SFEN", "SYEN":
		return models.NewMajor(name), true
	}
	return nil, false
}

var finder = mapFinder{
	"10103": {
		CWID:              "10103",
		Name:              "Baldwin, C",
		Major:             "SFEN",
		Completed:         []string{"CS 501", "SSW 564", "SSW 567", "SSW 687"},
		RemainingRequired: []string{"SSW 540", "SSW 555"},
	},
	"11461": {
		CWID:      "11461",
		Name:      "Wright, U",
		Major:     "SYEN",
		Completed: []string{"SYS 611", "SYS 750", "SYS 800"},
	},
	"20001": {
		CWID:      "20001",
		Name:      "Babbage, C",
		Major:     "ME",
		Completed: []string{"ME 101"},
	},
}

func TestParseCWID(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		quit    bool
		wantErr bool
	}{
		{"10103", "10103", false, false},
		{"  10103\t", "10103", false, false},
		{"q", "", true, false},
		{" Q ", "", true, false},
		{"", "", false, true},
		{"101 03", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, quit, err := parseCWID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestRunner_Run(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("10103\n00000\n\n11461\nq\n10103\n")

	err := NewRunner(finder, in, &out).Run(context.Background())
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Name:                Baldwin, C")
	assert.Contains(t, got, "Remaining required:  SSW 540, SSW 555")
	assert.Contains(t, got, "Remaining electives: -")
	assert.Contains(t, got, "Error: student 00000: not found")
	assert.Contains(t, got, "Error: empty input")
	assert.Contains(t, got, "All degree requirements met")
	assert.Contains(t, got, "Exiting lookup mode.")
	// Input after q is never read
	assert.Equal(t, 1, strings.Count(got, "Baldwin, C"))
}

func TestRunner_RunStopsAtEOF(t *testing.T) {
	var out bytes.Buffer
	err := NewRunner(finder, strings.NewReader("11461"), &out).Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Wright, U")
}

func TestRunner_RunStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := NewRunner(finder, strings.NewReader("10103\n"), &out).Run(ctx)
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestRunner_RunUnknownMajor(t *testing.T) {
	var out bytes.Buffer
	err := NewRunner(finder, strings.NewReader("20001\nq\n"), &out).Run(context.Background())
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Babbage, C")
	assert.Contains(t, got, `Major "ME" not found`)
	assert.NotContains(t, got, "All degree requirements met")
}
