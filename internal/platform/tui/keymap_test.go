package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkozlov/calcade/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up", "down", "left", "right", "enter", "esc":
		types := map[string]tea.KeyType{
			"up": tea.KeyUp, "down": tea.KeyDown,
			"left": tea.KeyLeft, "right": tea.KeyRight,
			"enter": tea.KeyEnter, "esc": tea.KeyEscape,
		}
		return tea.KeyMsg{Type: types[s]}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"w", core.ActionUp, false},
		{"up", core.ActionUp, false},
		{"a", core.ActionLeft, false},
		{"d", core.ActionRight, false},
		{" ", core.ActionJump, false},
		{"f", core.ActionFire, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"z", core.ActionNone, false},
	}

	for _, tt := range tests {
		action, quit := km.MapKey(keyMsg(tt.key))
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)",
				tt.key, action, quit, tt.action, tt.quit)
		}
	}
}

func TestMapKeyToLatchPreservesTap(t *testing.T) {
	km := NewKeyMapper()
	latch := core.NewLatch(80, 24)

	km.MapKeyToLatch(keyMsg("f"), latch)

	// Terminals never report key releases, so the key lands as a tap:
	// visible on the next frame, consumed after it.
	frame := latch.Frame()
	if !frame.Has(core.ActionFire) {
		t.Error("tap should survive until the next frame")
	}

	frame = latch.Frame()
	if frame.Has(core.ActionFire) {
		t.Error("tap should be consumed after one frame")
	}
}

func TestMenuActions(t *testing.T) {
	km := NewKeyMapper()

	if km.MapKeyToMenuAction(keyMsg("j")) != MenuActionDown {
		t.Error("j should map to menu down")
	}
	if km.MapKeyToMenuAction(keyMsg("enter")) != MenuActionSelect {
		t.Error("enter should map to menu select")
	}
	if km.MapKeyToMenuAction(keyMsg("esc")) != MenuActionBack {
		t.Error("esc should map to menu back")
	}
}
