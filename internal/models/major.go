package models

// Major represents a major and its catalog of required and elective courses
type Major struct {
	Name string

	courses []string        // Course ids in file order
	flags   map[string]Flag // Course id -> Required/Elective
}

// NewMajor creates a major with an empty catalog
func NewMajor(name string) *Major {
	return &Major{
		Name:  name,
		flags: make(map[string]Flag),
	}
}

// SetCourse upserts a course. A repeated course id overwrites the flag but keeps its position.
func (m *Major) SetCourse(course string, flag Flag) {
	if _, ok := m.flags[course]; !ok {
		m.courses = append(m.courses, course)
	}
	m.flags[course] = flag
}

// Flag returns the flag of a course and whether the major lists it
func (m *Major) Flag(course string) (Flag, bool) {
	f, ok := m.flags[course]
	return f, ok
}

// Courses returns every course id of the major in file order
func (m *Major) Courses() []string {
	out := make([]string, len(m.courses))
	copy(out, m.courses)
	return out
}

// Required returns the required course ids in file order
func (m *Major) Required() []string {
	return m.filter(FlagRequired)
}

// Electives returns the elective course ids in file order
func (m *Major) Electives() []string {
	return m.filter(FlagElective)
}

func (m *Major) filter(flag Flag) []string {
	var out []string
	for _, course := range m.courses {
		if m.flags[course] == flag {
			out = append(out, course)
		}
	}
	return out
}
