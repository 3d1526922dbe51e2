package main

import (
	"os"

	"github.com/rs/zerolog"
)

// engineLogger builds the structured logger handed to the analysis package.
// Engine logs stay on stderr so piped output remains clean.
func engineLogger(debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
