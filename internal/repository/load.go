package repository

import (
	"fmt"
	"iter"
	"path/filepath"

	"github.com/swfz/courserepo/internal/layout"
	"github.com/swfz/courserepo/internal/models"
	"github.com/swfz/courserepo/internal/parser"
)

func (r *Repository) records(spec layout.FileSpec, fields int) iter.Seq2[[]string, error] {
	return parser.ReadFields(filepath.Join(r.dir, spec.Name), fields, spec.Sep, spec.Header)
}

func (r *Repository) loadMajors() error {
	for values, err := range r.records(r.layout.Majors, layout.MajorFields) {
		if err != nil {
			return fmt.Errorf("failed to load majors: %w", err)
		}

		name, rawFlag, course := values[0], values[1], values[2]
		flag, err := models.ParseFlag(rawFlag)
		if err != nil {
			r.log.Warn().Err(err).Str("major", name).Str("course", course).Msg("Skipping course with unknown flag")
			continue
		}

		major, ok := r.majorIndex[name]
		if !ok {
			major = models.NewMajor(name)
			r.majors = append(r.majors, major)
			r.majorIndex[name] = major
		}
		major.SetCourse(course, flag)
	}
	return nil
}

func (r *Repository) loadInstructors() error {
	for values, err := range r.records(r.layout.Instructors, layout.InstructorFields) {
		if err != nil {
			return fmt.Errorf("failed to load instructors: %w", err)
		}
		r.appendInstructor(models.NewInstructor(values[0], values[1], values[2]))
	}
	return nil
}

func (r *Repository) loadStudents() error {
	for values, err := range r.records(r.layout.Students, layout.StudentFields) {
		if err != nil {
			return fmt.Errorf("failed to load students: %w", err)
		}

		student := models.NewStudent(values[0], values[1], values[2])
		if major, ok := r.majorIndex[student.Major]; ok {
			for _, course := range major.Courses() {
				student.AddCourse(course)
			}
		} else {
			r.log.Warn().
				Str("cwid", student.CWID).
				Str("major", student.Major).
				Msg("Student major not found in majors file")
		}
		r.appendStudent(student)
	}
	return nil
}

func (r *Repository) loadGrades() error {
	for values, err := range r.records(r.layout.Grades, layout.GradeFields) {
		if err != nil {
			return fmt.Errorf("failed to load grades: %w", err)
		}

		studentCWID, course, grade, instructorCWID := values[0], values[1], models.Grade(values[2]), values[3]

		if student, ok := r.studentIndex[studentCWID]; ok {
			student.AddGrade(course, grade)
		} else {
			r.warnDangling("student", studentCWID, course)
		}

		if instructor, ok := r.instructorIndex[instructorCWID]; ok {
			instructor.AddCourse(course, 1)
		} else {
			r.warnDangling("instructor", instructorCWID, course)
		}
	}
	return nil
}

func (r *Repository) warnDangling(kind, cwid, course string) {
	err := fmt.Errorf("no %s with CWID %s: %w", kind, cwid, models.ErrDanglingReference)
	r.log.Warn().Err(err).Str("course", course).Msg("Skipped grade reference")
}
