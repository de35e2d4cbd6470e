package audio

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/pkozlov/calcade/internal/core"
)

func TestNopSinkNeverPanics(t *testing.T) {
	var s NopSink
	s.Play(core.CueHit)
	s.Play("")
}

func TestLogSinkNilLogger(t *testing.T) {
	s := &LogSink{}
	s.Play(core.CueHit) // must not panic
}

func TestLogSinkLogs(t *testing.T) {
	s := NewLogSink(log.New(io.Discard))
	s.Play(core.CueTierUp)
}

func TestTerminalBellSink(t *testing.T) {
	var out string
	s := &TerminalBellSink{Write: func(str string) { out += str }}

	s.Play(core.CueHit)
	if out != "" {
		t.Errorf("quiet cue rang the bell: %q", out)
	}

	s.Play(core.CueGameOver)
	if out != "\a" {
		t.Errorf("game-over should ring the bell, got %q", out)
	}
}
