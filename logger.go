package main

import (
	"io"

	"github.com/rs/zerolog"
)

// newLogger returns the console logger shared by every component. Components
// tag their entries with a "component" field.
func newLogger(w io.Writer) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000"}
	return zerolog.New(out).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}
