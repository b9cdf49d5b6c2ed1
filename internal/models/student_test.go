package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudent_AddCourseKeepsExistingGrade(t *testing.T) {
	s := NewStudent("10103", "Baldwin, C", "SFEN")
	s.AddGrade("SSW 567", "A")
	s.AddCourse("SSW 567")
	s.AddCourse("SSW 540")

	g, ok := s.Grade("SSW 567")
	assert.True(t, ok)
	assert.Equal(t, Grade("A"), g)

	g, ok = s.Grade("SSW 540")
	assert.True(t, ok)
	assert.Equal(t, NoGrade, g)

	assert.Equal(t, []string{"SSW 567", "SSW 540"}, s.Courses())
}

func TestStudent_AddGradeOverwrites(t *testing.T) {
	s := NewStudent("10103", "Baldwin, C", "SFEN")
	s.AddCourse("SSW 540")
	s.AddGrade("SSW 540", "F")
	s.AddGrade("SSW 540", "B")

	g, _ := s.Grade("SSW 540")
	assert.Equal(t, Grade("B"), g)
	assert.Equal(t, []string{"SSW 540"}, s.Courses())
}

func TestStudent_Completed(t *testing.T) {
	s := NewStudent("10103", "Baldwin, C", "SFEN")
	s.AddCourse("SSW 555")
	s.AddGrade("SSW 687", "B")
	s.AddGrade("CS 501", "B")
	s.AddGrade("SSW 567", "A")
	s.AddGrade("SSW 564", "D")
	s.AddGrade("SSW 810", "C-")

	assert.Equal(t, []string{"CS 501", "SSW 567", "SSW 687"}, s.Completed())
	assert.True(t, s.HasCompleted("SSW 567"))
	assert.False(t, s.HasCompleted("SSW 564"))
	assert.False(t, s.HasCompleted("SSW 555"))
	assert.False(t, s.HasCompleted("SSW 999"))
}

func TestStudent_CoursesIsACopy(t *testing.T) {
	s := NewStudent("1", "A", "")
	s.AddCourse("X")
	courses := s.Courses()
	courses[0] = "Y"
	assert.Equal(t, []string{"X"}, s.Courses())
}
