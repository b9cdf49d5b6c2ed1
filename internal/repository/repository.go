// Package repository builds the in-memory graph of one institution's majors,
// instructors, students and grades, and computes the summary reports over it.
package repository

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/swfz/courserepo/internal/layout"
	"github.com/swfz/courserepo/internal/models"
)

// Repository holds every record of one institution. It is fully built by New
// and only changes afterwards through AddInstructor and AddStudent.
type Repository struct {
	dir    string
	layout layout.Layout
	log    zerolog.Logger

	majors      []*models.Major
	instructors []*models.Instructor
	students    []*models.Student

	majorIndex      map[string]*models.Major
	instructorIndex map[string]*models.Instructor
	studentIndex    map[string]*models.Student
}

// Option configures a Repository
type Option func(*Repository)

// WithLayout sets the file layout used to read the directory
func WithLayout(l layout.Layout) Option {
	return func(r *Repository) {
		r.layout = l
	}
}

// WithLogger sets the logger used for load diagnostics
func WithLogger(log zerolog.Logger) Option {
	return func(r *Repository) {
		r.log = log
	}
}

// New loads the repository from dir. It fails with models.ErrNotFound if dir is
// not an accessible directory or a source file is missing, and with
// models.ErrMalformedRecord if the grades file has a malformed line.
func New(dir string, opts ...Option) (*Repository, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("error accessing %s: %w", dir, models.ErrNotFound)
	}

	r := &Repository{
		dir:             dir,
		layout:          layout.Default(),
		log:             zerolog.Nop(),
		majorIndex:      make(map[string]*models.Major),
		instructorIndex: make(map[string]*models.Instructor),
		studentIndex:    make(map[string]*models.Student),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With().Str("dir", dir).Logger()

	// Later steps depend on earlier state: students are seeded from majors,
	// grades link students and instructors.
	steps := []struct {
		name string
		load func() error
	}{
		{"majors", r.loadMajors},
		{"instructors", r.loadInstructors},
		{"students", r.loadStudents},
	}
	for _, step := range steps {
		if err := step.load(); err != nil {
			if !errors.Is(err, models.ErrMalformedRecord) {
				return nil, err
			}
			r.log.Error().Err(err).Str("step", step.name).Msg("Load step aborted, keeping partial data")
		}
	}

	// Unlike the other steps, a malformed grades file fails construction
	if err := r.loadGrades(); err != nil {
		return nil, err
	}

	r.log.Debug().
		Int("majors", len(r.majors)).
		Int("instructors", len(r.instructors)).
		Int("students", len(r.students)).
		Msg("Repository loaded")

	return r, nil
}

// Dir returns the directory the repository was loaded from
func (r *Repository) Dir() string {
	return r.dir
}

// Majors returns the majors in first-appearance order
func (r *Repository) Majors() []*models.Major {
	return r.majors
}

// Instructors returns the instructors in load order
func (r *Repository) Instructors() []*models.Instructor {
	return r.instructors
}

// Students returns the students in load order
func (r *Repository) Students() []*models.Student {
	return r.students
}

// Major looks up a major by name
func (r *Repository) Major(name string) (*models.Major, bool) {
	m, ok := r.majorIndex[name]
	return m, ok
}

// Instructor looks up an instructor by CWID
func (r *Repository) Instructor(cwid string) (*models.Instructor, bool) {
	i, ok := r.instructorIndex[cwid]
	return i, ok
}

// Student looks up a student by CWID
func (r *Repository) Student(cwid string) (*models.Student, bool) {
	s, ok := r.studentIndex[cwid]
	return s, ok
}

// AddInstructor appends a bare instructor with no department and no courses
func (r *Repository) AddInstructor(cwid, name string) *models.Instructor {
	instructor := models.NewInstructor(cwid, name, "")
	r.appendInstructor(instructor)
	return instructor
}

// AddStudent appends a bare student with no major and no courses
func (r *Repository) AddStudent(cwid, name string) *models.Student {
	student := models.NewStudent(cwid, name, "")
	r.appendStudent(student)
	return student
}

// First record wins the index; CWIDs are unique in well-formed data
func (r *Repository) appendInstructor(i *models.Instructor) {
	r.instructors = append(r.instructors, i)
	if _, ok := r.instructorIndex[i.CWID]; !ok {
		r.instructorIndex[i.CWID] = i
	}
}

func (r *Repository) appendStudent(s *models.Student) {
	r.students = append(r.students, s)
	if _, ok := r.studentIndex[s.CWID]; !ok {
		r.studentIndex[s.CWID] = s
	}
}
