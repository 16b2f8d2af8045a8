package cli

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger writes human-readable lines to w and drops anything below level.
func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// LoggerFrom returns the logger attached to ctx by the root command, or a
// disabled logger.
func LoggerFrom(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
