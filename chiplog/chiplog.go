// Package chiplog wraps github.com/rs/zerolog with the progress-line
// contract spec.md §7 requires of every CLI-facing routing run:
// algorithm name, iteration index, current/best cost, and intersection
// count. A nil *Logger is a valid, fully silent no-op, so library
// callers never see log output unless they opt in (only cmd/latticewire
// constructs a non-nil one by default).
package chiplog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is a thin progress-line wrapper over zerolog.Logger.
type Logger struct {
	z zerolog.Logger
}

// New returns a Logger writing to w in zerolog's human-readable console
// format, suitable for CLI use.
func New(w io.Writer) *Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return &Logger{z: zerolog.New(console).With().Timestamp().Logger()}
}

// NewSilent returns a Logger that discards everything, used as the
// default for library callers that never asked for progress output.
func NewSilent() *Logger {
	return &Logger{z: zerolog.New(io.Discard)}
}

// Default returns a Logger writing to stderr, the default for
// cmd/latticewire.
func Default() *Logger {
	return New(os.Stderr)
}

// Iteration logs one sequencer/driver iteration: algorithm name,
// iteration index, current cost, and intersection count.
func (l *Logger) Iteration(algorithm string, iteration, cost, intersections int) {
	if l == nil {
		return
	}
	l.z.Info().
		Str("algorithm", algorithm).
		Int("iteration", iteration).
		Int("cost", cost).
		Int("intersections", intersections).
		Msg("iteration")
}

// Reroute logs one rip-and-reroute attempt by the optimizer or IRRA.
func (l *Logger) Reroute(wireID int, accepted bool, beforeCost, afterCost int) {
	if l == nil {
		return
	}
	l.z.Debug().
		Int("wire", wireID).
		Bool("accepted", accepted).
		Int("before", beforeCost).
		Int("after", afterCost).
		Msg("reroute")
}

// BestUpdated logs a new best-cost solution being recorded.
func (l *Logger) BestUpdated(cost int) {
	if l == nil {
		return
	}
	l.z.Info().Int("cost", cost).Msg("best updated")
}

// Stopping logs the final stop condition of a run (fully connected,
// iteration budget exhausted, etc).
func (l *Logger) Stopping(reason string) {
	if l == nil {
		return
	}
	l.z.Info().Str("reason", reason).Msg("stopping")
}
