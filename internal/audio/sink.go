// Package audio defines the cue sink boundary. Games emit discrete cue
// identifiers; a sink decides what to do with them. There is no sound
// synthesis here, only the boundary that keeps the simulation ignorant
// of how cues are surfaced.
package audio

import (
	"github.com/charmbracelet/log"

	"github.com/pkozlov/calcade/internal/core"
)

// Sink consumes audio cues, fire-and-forget. Implementations must never
// block: cues are emitted from the tick path.
type Sink interface {
	Play(cue core.Cue)
}

// NopSink discards every cue. The default when no sink is configured;
// a missing sink never affects the simulation.
type NopSink struct{}

// Play discards the cue.
func (NopSink) Play(core.Cue) {}

// LogSink writes each cue to a structured logger, mostly for debugging
// game feel without a terminal bell.
type LogSink struct {
	Logger *log.Logger
}

// NewLogSink creates a sink that logs cues at debug level.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{Logger: logger}
}

// Play logs the cue.
func (s *LogSink) Play(cue core.Cue) {
	if s.Logger == nil {
		return
	}
	s.Logger.Debug("cue", "id", string(cue))
}

// TerminalBellSink rings the terminal bell for the loudest cues and
// stays quiet for the rest. Writes go through the provided function so
// the TUI can route them to the active output.
type TerminalBellSink struct {
	Write func(string)
}

// Play rings the bell on game-over and win cues.
func (s *TerminalBellSink) Play(cue core.Cue) {
	if s.Write == nil {
		return
	}
	switch cue {
	case core.CueGameOver, core.CueWin:
		s.Write("\a")
	}
}
