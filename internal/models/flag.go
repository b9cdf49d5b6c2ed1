package models

import (
	"fmt"
	"strings"
)

// Flag marks a course as required or elective within a major
type Flag string

const (
	FlagRequired Flag = "Required"
	FlagElective Flag = "Elective"
)

// ParseFlag converts the single-letter flag used in majors files ("R" or "E")
func ParseFlag(s string) (Flag, error) {
	switch strings.ToUpper(s) {
	case "R":
		return FlagRequired, nil
	case "E":
		return FlagElective, nil
	default:
		return "", fmt.Errorf("unknown course flag %q: %w", s, ErrInvalidArgument)
	}
}

// Short returns the single-letter form used in source files
func (f Flag) Short() string {
	switch f {
	case FlagRequired:
		return "R"
	case FlagElective:
		return "E"
	default:
		return "-"
	}
}
