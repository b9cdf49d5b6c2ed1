package parser

import (
	"bufio"
	"fmt"
	"iter"
	"math"
	"os"
	"strings"

	"github.com/swfz/courserepo/internal/models"
)

// ReadFields yields the fields of each data line of a delimited file.
//
// The sequence is lazy and single-pass. It yields a wrapped models.ErrNotFound
// if the file cannot be opened, and a *models.MalformedRecordError (then stops)
// on the first line whose field count is not exactly fields. When header is
// true the first line is skipped but still counted in line numbers.
// Lines end at "\n"; a trailing "\r" is dropped too, so CRLF files read the
// same as LF files. Line length is not limited.
// The file is closed as soon as the sequence ends or the caller stops ranging.
func ReadFields(path string, fields int, sep string, header bool) iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		file, err := os.Open(path)
		if err != nil {
			yield(nil, fmt.Errorf("failed to open %s: %w: %w", path, models.ErrNotFound, err))
			return
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt32)
		lineNumber := 0

		for scanner.Scan() {
			lineNumber++
			if header && lineNumber == 1 {
				continue
			}

			// Scanner drops the trailing newline and carriage return; nothing else is trimmed
			values := strings.Split(scanner.Text(), sep)
			if len(values) != fields {
				yield(nil, &models.MalformedRecordError{
					Path: path,
					Line: lineNumber,
					Got:  len(values),
					Want: fields,
				})
				return
			}

			if !yield(values, nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield(nil, fmt.Errorf("failed to read %s: %w", path, err))
		}
	}
}
