package repository

import (
	"fmt"

	"github.com/swfz/courserepo/internal/models"
)

// MajorSummaries returns one row per major with its required and elective courses
func (r *Repository) MajorSummaries() []models.MajorSummary {
	rows := make([]models.MajorSummary, 0, len(r.majors))
	for _, major := range r.majors {
		rows = append(rows, models.MajorSummary{
			Major:     major.Name,
			Required:  major.Required(),
			Electives: major.Electives(),
		})
	}
	return rows
}

// InstructorSummaries returns one row per (instructor, course) with a non-zero headcount.
// Instructors keep load order and courses keep first-encounter order.
func (r *Repository) InstructorSummaries() []models.InstructorSummary {
	var rows []models.InstructorSummary
	for _, instructor := range r.instructors {
		for _, course := range instructor.Courses() {
			count := instructor.Count(course)
			if count == 0 {
				continue
			}
			rows = append(rows, models.InstructorSummary{
				CWID:       instructor.CWID,
				Name:       instructor.Name,
				Department: instructor.Department,
				Course:     course,
				Students:   count,
			})
		}
	}
	return rows
}

// StudentSummaries returns one progress row per student in load order
func (r *Repository) StudentSummaries() []models.StudentSummary {
	rows := make([]models.StudentSummary, 0, len(r.students))
	for _, student := range r.students {
		rows = append(rows, r.summarize(student))
	}
	return rows
}

// StudentSummary returns the progress row of a single student
func (r *Repository) StudentSummary(cwid string) (models.StudentSummary, error) {
	student, ok := r.studentIndex[cwid]
	if !ok {
		return models.StudentSummary{}, fmt.Errorf("student %s: %w", cwid, models.ErrNotFound)
	}
	return r.summarize(student), nil
}

func (r *Repository) summarize(student *models.Student) models.StudentSummary {
	summary := models.StudentSummary{
		CWID:      student.CWID,
		Name:      student.Name,
		Major:     student.Major,
		Completed: student.Completed(),
	}

	// Unknown major: nothing remains
	major, ok := r.majorIndex[student.Major]
	if !ok {
		return summary
	}

	summary.RemainingRequired = remaining(student, major.Required())
	summary.RemainingElectives = remaining(student, major.Electives())
	return summary
}

// remaining covers courses never attempted and courses attempted without a passing grade
func remaining(student *models.Student, courses []string) []string {
	var out []string
	for _, course := range courses {
		if !student.HasCompleted(course) {
			out = append(out, course)
		}
	}
	return out
}

// Report builds the table for a report kind
func (r *Repository) Report(kind models.ReportKind) (models.Report, error) {
	report := models.Report{Kind: kind, Headers: kind.Headers()}

	switch kind {
	case models.ReportMajors:
		for _, row := range r.MajorSummaries() {
			report.Rows = append(report.Rows, row.Row())
		}
	case models.ReportInstructors:
		for _, row := range r.InstructorSummaries() {
			report.Rows = append(report.Rows, row.Row())
		}
	case models.ReportStudents:
		for _, row := range r.StudentSummaries() {
			report.Rows = append(report.Rows, row.Row())
		}
	default:
		return models.Report{}, fmt.Errorf("invalid report type %q: %w", kind, models.ErrInvalidArgument)
	}

	return report, nil
}

// ReportByName parses the report name and builds its table
func (r *Repository) ReportByName(name string) (models.Report, error) {
	kind, err := models.ParseReportKind(name)
	if err != nil {
		return models.Report{}, err
	}
	return r.Report(kind)
}
