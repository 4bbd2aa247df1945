package telemetry

import (
	"io"

	"github.com/rs/zerolog"
)

// NopLogger returns a logger that discards everything. Every engine
// collaborator (transform.Engine, fftmul, divide.Divider) defaults its
// Logger field to this value so arithmetic has zero logging overhead
// unless a caller opts in.
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// NewLogger builds a component-scoped console logger writing to w, at
// zerolog.InfoLevel by default. Intended for CLI demo and test wiring; the
// engine packages themselves never construct a logger, they only accept
// one via a Logger field.
func NewLogger(w io.Writer, component string) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return zerolog.New(cw).Level(zerolog.InfoLevel).With().
		Timestamp().
		Str("component", component).
		Logger()
}
