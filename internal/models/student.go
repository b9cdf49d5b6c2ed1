package models

import "sort"

// Student represents a student and the courses tracked against their major
type Student struct {
	CWID  string // Campus-wide ID
	Name  string // Display name ("Last, F")
	Major string // Major name, key into the major catalog

	courses []string         // Course ids in insertion order
	grades  map[string]Grade // Course id -> grade (NoGrade if not graded)
}

// NewStudent creates a student with an empty course map
func NewStudent(cwid, name, major string) *Student {
	return &Student{
		CWID:   cwid,
		Name:   name,
		Major:  major,
		grades: make(map[string]Grade),
	}
}

// AddCourse tracks a course without a grade. An existing grade is left untouched.
func (s *Student) AddCourse(course string) {
	if _, ok := s.grades[course]; ok {
		return
	}
	s.courses = append(s.courses, course)
	s.grades[course] = NoGrade
}

// AddGrade records a grade for a course, inserting the course if needed
func (s *Student) AddGrade(course string, grade Grade) {
	if _, ok := s.grades[course]; !ok {
		s.courses = append(s.courses, course)
	}
	s.grades[course] = grade
}

// Grade returns the grade for a course and whether the course is tracked at all
func (s *Student) Grade(course string) (Grade, bool) {
	g, ok := s.grades[course]
	return g, ok
}

// Courses returns tracked course ids in insertion order
func (s *Student) Courses() []string {
	out := make([]string, len(s.courses))
	copy(out, s.courses)
	return out
}

// Completed returns the sorted course ids that carry a passing grade
func (s *Student) Completed() []string {
	var done []string
	for _, course := range s.courses {
		if s.grades[course].IsPassing() {
			done = append(done, course)
		}
	}
	sort.Strings(done)
	return done
}

// HasCompleted reports whether the student passed the course
func (s *Student) HasCompleted(course string) bool {
	return s.grades[course].IsPassing()
}
