// Package logging builds the CLI's diagnostic logger.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. Debug messages are emitted only
// when verbose is set; otherwise only warnings and errors are.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !isTerminal(w),
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
	}
	return zerolog.New(out).Level(level)
}

// Nop discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
