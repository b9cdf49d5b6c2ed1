package models

// Instructor represents an instructor and the student headcount per course taught
type Instructor struct {
	CWID       string // Campus-wide ID
	Name       string // Display name ("Last, F")
	Department string // Department code

	courses []string       // Course ids in first-encounter order
	counts  map[string]int // Course id -> number of students
}

// NewInstructor creates an instructor with no courses
func NewInstructor(cwid, name, department string) *Instructor {
	return &Instructor{
		CWID:       cwid,
		Name:       name,
		Department: department,
		counts:     make(map[string]int),
	}
}

// AddCourse increments the headcount of a course, inserting it at zero first if unseen
func (i *Instructor) AddCourse(course string, increment int) {
	if _, ok := i.counts[course]; !ok {
		i.courses = append(i.courses, course)
		i.counts[course] = 0
	}
	i.counts[course] += increment
}

// Count returns the number of students taught in a course
func (i *Instructor) Count(course string) int {
	return i.counts[course]
}

// Courses returns course ids in the order they were first encountered
func (i *Instructor) Courses() []string {
	out := make([]string, len(i.courses))
	copy(out, i.courses)
	return out
}
