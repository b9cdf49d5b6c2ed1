package models

// Grade is a free-form letter grade as it appears in the grades file
type Grade string

// NoGrade marks a course a student is enrolled in (or required to take) without a grade yet
const NoGrade Grade = ""

// PassingGrades lists, in order, the grades that count a course as completed
var PassingGrades = []Grade{"A", "A-", "B+", "B", "B-", "C+", "C"}

var passing = func() map[Grade]bool {
	set := make(map[Grade]bool, len(PassingGrades))
	for _, g := range PassingGrades {
		set[g] = true
	}
	return set
}()

// IsPassing reports whether the grade counts the course as completed
func (g Grade) IsPassing() bool {
	return passing[g]
}

// DisplayName returns the grade, or "-" when no grade has been recorded
func (g Grade) DisplayName() string {
	if g == NoGrade {
		return "-"
	}
	return string(g)
}
