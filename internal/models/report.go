package models

import (
	"fmt"
	"strings"
)

// ReportKind selects one of the summary views
type ReportKind string

const (
	ReportMajors      ReportKind = "majors"
	ReportInstructors ReportKind = "instructors"
	ReportStudents    ReportKind = "students"
)

// ReportKinds lists every report in the order the CLI prints them
var ReportKinds = []ReportKind{ReportMajors, ReportInstructors, ReportStudents}

// ParseReportKind resolves a report name, case-insensitively
func ParseReportKind(name string) (ReportKind, error) {
	kind := ReportKind(strings.ToLower(strings.TrimSpace(name)))
	for _, k := range ReportKinds {
		if k == kind {
			return k, nil
		}
	}
	return "", fmt.Errorf("invalid report type %q: %w", name, ErrInvalidArgument)
}

// Title returns the heading printed above a report
func (k ReportKind) Title() string {
	switch k {
	case ReportMajors:
		return "Majors Summary"
	case ReportInstructors:
		return "Instructor Summary"
	case ReportStudents:
		return "Student Summary"
	default:
		return string(k)
	}
}

// Headers returns the column headers of a report
func (k ReportKind) Headers() []string {
	switch k {
	case ReportMajors:
		return []string{"Major", "Required Courses", "Electives"}
	case ReportInstructors:
		return []string{"CWID", "Name", "Dept", "Course", "Students"}
	case ReportStudents:
		return []string{"CWID", "Name", "Major", "Completed Courses", "Remaining Required", "Remaining Electives"}
	default:
		return nil
	}
}

// Report is a renderer-agnostic table: ordered headers and fixed-arity rows.
// List-valued cells are []string.
type Report struct {
	Kind    ReportKind
	Headers []string
	Rows    [][]any
}

// MajorSummary is one row of the majors report
type MajorSummary struct {
	Major     string   `json:"major"`
	Required  []string `json:"required"`
	Electives []string `json:"electives"`
}

// Row returns the summary as report cells
func (m MajorSummary) Row() []any {
	return []any{m.Major, m.Required, m.Electives}
}

// InstructorSummary is one (instructor, course) row of the instructors report
type InstructorSummary struct {
	CWID       string `json:"cwid"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Course     string `json:"course"`
	Students   int    `json:"students"`
}

// Row returns the summary as report cells
func (i InstructorSummary) Row() []any {
	return []any{i.CWID, i.Name, i.Department, i.Course, i.Students}
}

// StudentSummary is one row of the students report
type StudentSummary struct {
	CWID               string   `json:"cwid"`
	Name               string   `json:"name"`
	Major              string   `json:"major"`
	Completed          []string `json:"completed"`
	RemainingRequired  []string `json:"remaining_required"`
	RemainingElectives []string `json:"remaining_electives"`
}

// Row returns the summary as report cells
func (s StudentSummary) Row() []any {
	return []any{s.CWID, s.Name, s.Major, s.Completed, s.RemainingRequired, s.RemainingElectives}
}
