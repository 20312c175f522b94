// Package logx builds the zerolog loggers used by the command and session.
package logx

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a logger writing JSON lines to w, tagged with component
// name, that drops events below level.
func New(w io.Writer, name string, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Str("component", name).Logger().Level(level)
}

// Console is New with human-readable output, for terminals.
func Console(w io.Writer, name string, level zerolog.Level) zerolog.Logger {
	return New(zerolog.ConsoleWriter{Out: w, NoColor: true}, name, level)
}

// Level parses a level name with zerolog.ParseLevel. An empty name means
// info, and "warning" is accepted for warn.
func Level(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}

	return zerolog.ParseLevel(name)
}
