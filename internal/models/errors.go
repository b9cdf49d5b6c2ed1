package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a source directory, file or record cannot be found
	ErrNotFound = errors.New("not found")

	// ErrMalformedRecord is returned when a data line has the wrong number of fields
	ErrMalformedRecord = errors.New("malformed record")

	// ErrInvalidArgument is returned for unknown report kinds and bad caller input
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDanglingReference marks a grade record naming an unknown student or instructor.
	// It is only ever logged, never returned from construction.
	ErrDanglingReference = errors.New("dangling reference")
)

// MalformedRecordError describes a line whose field count does not match the expected arity
type MalformedRecordError struct {
	Path string // File being parsed
	Line int    // 1-based line number, header included
	Got  int    // Number of fields found
	Want int    // Number of fields expected
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s has %d fields on line %d, but should have %d fields", e.Path, e.Got, e.Line, e.Want)
}

// Is lets errors.Is match MalformedRecordError against ErrMalformedRecord
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
