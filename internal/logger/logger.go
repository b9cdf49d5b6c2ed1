package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Setup builds the zerolog logger used across the CLI and the web server.
//   - level: trace, debug, info, warn, error, fatal, panic (unknown values fall back to info)
//   - format: "pretty" for human-readable output, anything else for JSON lines
//
// Output goes to w, normally os.Stderr so stdout only carries report tables.
func Setup(level, format string, w io.Writer) zerolog.Logger {
	writer := w
	if format == "pretty" {
		writer = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
		}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(writer).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
