package cli

import (
	"io"

	"github.com/rs/zerolog"
)

// newLogger returns a console logger on w. It discards everything unless debug is set.
func newLogger(w io.Writer, debug, color bool) zerolog.Logger {
	level := zerolog.Disabled
	if debug {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !color,
		TimeFormat: "15:04:05.000",
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
