// Package layout describes how an institution lays out its source files:
// the file name, field separator and header flag of each load step.
package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/swfz/courserepo/internal/models"
)

// FileName is the layout file looked up inside an institution directory
const FileName = "layout.yaml"

// Field counts are part of the file contract and are not configurable
const (
	MajorFields      = 3
	InstructorFields = 3
	StudentFields    = 3
	GradeFields      = 4
)

// FileSpec configures one load step
type FileSpec struct {
	Name   string `yaml:"name" validate:"required,excludesall=/\\"`
	Sep    string `yaml:"sep" validate:"required"`
	Header bool   `yaml:"header"`
}

// Layout configures all four load steps of a repository
type Layout struct {
	Majors      FileSpec `yaml:"majors"`
	Instructors FileSpec `yaml:"instructors"`
	Students    FileSpec `yaml:"students"`
	Grades      FileSpec `yaml:"grades"`
}

var validate = validator.New()

// Default returns the layout of the reference data set
func Default() Layout {
	return Layout{
		Majors:      FileSpec{Name: "majors.txt", Sep: "\t", Header: true},
		Instructors: FileSpec{Name: "instructors.txt", Sep: "|", Header: true},
		Students:    FileSpec{Name: "students.txt", Sep: ";", Header: true},
		Grades:      FileSpec{Name: "grades.txt", Sep: "|", Header: true},
	}
}

// Parse decodes a YAML layout. Steps missing from the document keep their default.
func Parse(data []byte) (Layout, error) {
	l := Default()
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("failed to parse layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Load reads and validates a layout file
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Layout{}, fmt.Errorf("layout %s: %w", path, models.ErrNotFound)
		}
		return Layout{}, fmt.Errorf("failed to read layout %s: %w", path, err)
	}

	l, err := Parse(data)
	if err != nil {
		return Layout{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Resolve picks the layout for an institution directory:
// an explicit path wins, then <dir>/layout.yaml, then Default.
func Resolve(dir, explicit string) (Layout, error) {
	if explicit != "" {
		return Load(explicit)
	}

	l, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, models.ErrNotFound) {
		return Default(), nil
	}
	return l, err
}

// Validate checks every step has a plain file name and a separator
func (l Layout) Validate() error {
	err := validate.Struct(l)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fmt.Sprintf("%s failed %q", strings.ToLower(fe.Namespace()), fe.Tag()))
		}
		return fmt.Errorf("invalid layout (%s): %w", strings.Join(msgs, ", "), models.ErrInvalidArgument)
	}
	return fmt.Errorf("invalid layout: %w", err)
}
