package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// DebugEnv forces debug logging when set to any non-empty value.
const DebugEnv = "TT_DEBUG"

// DebugEnabled returns true if debug mode is enabled via TT_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

// New returns a logger writing to w at the given level.
// With console set the output is human readable, otherwise JSON.
//
// The level parameter can be one of: trace, debug, info, warn, error.
func New(level string, w io.Writer, console bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, err
	}
	if DebugEnabled() && lvl > zerolog.DebugLevel {
		lvl = zerolog.DebugLevel
	}

	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	}

	return zerolog.New(w).
		With().
		Timestamp().
		Logger().
		Level(lvl), nil
}
