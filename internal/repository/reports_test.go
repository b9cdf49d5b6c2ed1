package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swfz/courserepo/internal/models"
)

func TestInstructorSummaries(t *testing.T) {
	repo := loadFixture(t, "stevens")

	want := []models.InstructorSummary{
		{CWID: "98765", Name: "Einstein, A", Department: "SFEN", Course: "SSW 567", Students: 4},
		{CWID: "98765", Name: "Einstein, A", Department: "SFEN", Course: "SSW 540", Students: 3},
		{CWID: "98764", Name: "Feynman, R", Department: "SFEN", Course: "SSW 564", Students: 3},
		{CWID: "98764", Name: "Feynman, R", Department: "SFEN", Course: "SSW 687", Students: 3},
		{CWID: "98764", Name: "Feynman, R", Department: "SFEN", Course: "CS 501", Students: 1},
		{CWID: "98764", Name: "Feynman, R", Department: "SFEN", Course: "CS 545", Students: 1},
		{CWID: "98763", Name: "Newton, I", Department: "SFEN", Course: "SSW 555", Students: 1},
		{CWID: "98763", Name: "Newton, I", Department: "SFEN", Course: "SSW 689", Students: 1},
		{CWID: "98760", Name: "Darwin, C", Department: "SYEN", Course: "SYS 800", Students: 1},
		{CWID: "98760", Name: "Darwin, C", Department: "SYEN", Course: "SYS 750", Students: 1},
		{CWID: "98760", Name: "Darwin, C", Department: "SYEN", Course: "SYS 611", Students: 2},
		{CWID: "98760", Name: "Darwin, C", Department: "SYEN", Course: "SYS 645", Students: 1},
	}
	assert.Equal(t, want, repo.InstructorSummaries())
}

func TestInstructorSummaries_SkipsZeroCounts(t *testing.T) {
	repo := loadFixture(t, "stevens")
	curie := repo.AddInstructor("12345", "Curie, M")
	curie.AddCourse("CH 101", 0)
	curie.AddCourse("CH 102", 2)

	rows := repo.InstructorSummaries()
	require.Len(t, rows, 13)
	assert.Equal(t, models.InstructorSummary{CWID: "12345", Name: "Curie, M", Course: "CH 102", Students: 2}, rows[12])
}

func TestMajorSummaries(t *testing.T) {
	repo := loadFixture(t, "stevens")

	want := []models.MajorSummary{
		{
			Major:     "SFEN",
			Required:  []string{"SSW 540", "SSW 564", "SSW 555", "SSW 567"},
			Electives: []string{"CS 501", "CS 513", "CS 545"},
		},
		{
			Major:     "SYEN",
			Required:  []string{"SYS 671", "SYS 612", "SYS 800"},
			Electives: []string{"SSW 810", "SSW 565", "SSW 540"},
		},
	}
	assert.Equal(t, want, repo.MajorSummaries())
}

func TestStudentSummaries(t *testing.T) {
	repo := loadFixture(t, "stevens")
	rows := repo.StudentSummaries()
	require.Len(t, rows, 10)

	assert.Equal(t, models.StudentSummary{
		CWID:               "10103",
		Name:               "Baldwin, C",
		Major:              "SFEN",
		Completed:          []string{"CS 501", "SSW 564", "SSW 567", "SSW 687"},
		RemainingRequired:  []string{"SSW 540", "SSW 555"},
		RemainingElectives: []string{"CS 513", "CS 545"},
	}, rows[0])

	// Failed course stays remaining
	kelly, err := repo.StudentSummary("11658")
	require.NoError(t, err)
	assert.Empty(t, kelly.Completed)
	assert.Equal(t, []string{"SYS 671", "SYS 612", "SYS 800"}, kelly.RemainingRequired)
	assert.Equal(t, []string{"SSW 810", "SSW 565", "SSW 540"}, kelly.RemainingElectives)

	wright, err := repo.StudentSummary("11461")
	require.NoError(t, err)
	assert.Equal(t, []string{"SYS 611", "SYS 750", "SYS 800"}, wright.Completed)
	assert.Equal(t, []string{"SYS 671", "SYS 612"}, wright.RemainingRequired)
}

func TestStudentSummaries_CompletedAndRemainingAreDisjoint(t *testing.T) {
	for _, fixture := range []string{"stevens", "dangling", "partial", "njit"} {
		t.Run(fixture, func(t *testing.T) {
			repo := loadFixture(t, fixture)
			for _, row := range repo.StudentSummaries() {
				done := make(map[string]bool)
				for _, c := range row.Completed {
					done[c] = true
				}
				for _, c := range append(row.RemainingRequired, row.RemainingElectives...) {
					assert.False(t, done[c], "%s: %s both completed and remaining", row.CWID, c)
				}

				student, _ := repo.Student(row.CWID)
				for _, course := range student.Courses() {
					grade, _ := student.Grade(course)
					if grade.IsPassing() {
						assert.Contains(t, row.Completed, course)
					}
				}
			}
		})
	}
}

func TestStudentSummary_Unknown(t *testing.T) {
	repo := loadFixture(t, "stevens")
	_, err := repo.StudentSummary("00000")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestReport(t *testing.T) {
	repo := loadFixture(t, "stevens")

	tests := []struct {
		name    string
		rows    int
		headers int
	}{
		{"majors", 2, 3},
		{"instructors", 12, 5},
		{"students", 10, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := repo.ReportByName(tt.name)
			require.NoError(t, err)
			assert.Len(t, report.Rows, tt.rows)
			assert.Len(t, report.Headers, tt.headers)
			for _, row := range report.Rows {
				assert.Len(t, row, tt.headers)
			}
		})
	}
}

func TestReport_InvalidKind(t *testing.T) {
	repo := loadFixture(t, "stevens")

	_, err := repo.ReportByName("courses")
	assert.True(t, errors.Is(err, models.ErrInvalidArgument))

	_, err = repo.Report(models.ReportKind("courses"))
	assert.True(t, errors.Is(err, models.ErrInvalidArgument))
}
