// Package obs wires up the CLI's structured logging: a zerolog logger
// writing to stderr, tagged with a fresh UUID so every line from one
// invocation of `lmc` can be grepped out of concurrent runs.
package obs

import (
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// New returns a console-formatted logger at level, stamped with a
// run-correlation id. verbose selects zerolog.DebugLevel over
// zerolog.InfoLevel.
func New(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	runID := uuid.New().String()
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: !isTTY(os.Stderr)}).
		Level(level).
		With().
		Timestamp().
		Str("run", runID).
		Logger()
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
