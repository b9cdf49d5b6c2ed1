package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMajor_RequiredAndElectives(t *testing.T) {
	m := NewMajor("SYEN")
	m.SetCourse("SYS 671", FlagRequired)
	m.SetCourse("SSW 810", FlagElective)
	m.SetCourse("SYS 612", FlagRequired)
	m.SetCourse("SSW 540", FlagElective)

	assert.Equal(t, []string{"SYS 671", "SYS 612"}, m.Required())
	assert.Equal(t, []string{"SSW 810", "SSW 540"}, m.Electives())
	assert.Equal(t, []string{"SYS 671", "SSW 810", "SYS 612", "SSW 540"}, m.Courses())
}

func TestMajor_SetCourseOverwritesFlagInPlace(t *testing.T) {
	m := NewMajor("SFEN")
	m.SetCourse("SSW 540", FlagRequired)
	m.SetCourse("CS 501", FlagElective)
	m.SetCourse("SSW 540", FlagElective)

	flag, ok := m.Flag("SSW 540")
	assert.True(t, ok)
	assert.Equal(t, FlagElective, flag)
	assert.Empty(t, m.Required())
	assert.Equal(t, []string{"SSW 540", "CS 501"}, m.Electives())
}

func TestParseFlag(t *testing.T) {
	tests := []struct {
		in      string
		want    Flag
		wantErr bool
	}{
		{in: "R", want: FlagRequired},
		{in: "E", want: FlagElective},
		{in: "r", want: FlagRequired},
		{in: "X", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFlag(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in == "R" || tt.in == "r", got.Short() == "R")
		})
	}
}
