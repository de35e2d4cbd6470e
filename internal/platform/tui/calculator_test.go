package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkozlov/calcade/internal/core"
	"github.com/pkozlov/calcade/internal/registry"
	"github.com/pkozlov/calcade/internal/storage"
)

// stubGame satisfies registry.Game for unlock-code tests.
type stubGame struct{}

func (stubGame) ID() string                            { return "stub" }
func (stubGame) Title() string                         { return "Stub" }
func (stubGame) Reset(core.RuntimeConfig)              {}
func (stubGame) Step(core.InputFrame) core.StepResult  { return core.StepResult{} }
func (stubGame) Render(*core.Screen)                   {}
func (stubGame) State() core.GameState                 { return core.GameState{} }

func init() {
	registry.RegisterHidden("stub", "4242", func() registry.Game { return stubGame{} })
}

func press(m *CalculatorModel, keys string) {
	for _, r := range keys {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestCalculatorArithmetic(t *testing.T) {
	tests := []struct {
		keys string
		want string
	}{
		{"12+34=", "46"},
		{"9-4=", "5"},
		{"6*7=", "42"},
		{"84/2=", "42"},
		{"5/0=", "Err"},
		{"1+2+3=", "6"}, // chained operations fold left to right
	}

	for _, tt := range tests {
		m := NewCalculatorModel(storage.NewMemStore(), 80, 24)
		press(m, tt.keys)
		if m.display != tt.want {
			t.Errorf("%q: display = %q, expected %q", tt.keys, m.display, tt.want)
		}
	}
}

func TestCalculatorClear(t *testing.T) {
	m := NewCalculatorModel(storage.NewMemStore(), 80, 24)
	press(m, "123+4")
	press(m, "c")
	if m.display != "0" || m.pendOp != 0 {
		t.Errorf("clear left display %q, op %q", m.display, m.pendOp)
	}
}

func TestCodeUnlocksGame(t *testing.T) {
	store := storage.NewMemStore()
	m := NewCalculatorModel(store, 80, 24)

	press(m, "4242")

	if id := m.LaunchID(); id != "stub" {
		t.Errorf("launch id = %q, expected %q", id, "stub")
	}
	if store.GetInt(storage.UnlockKey("stub"), 0) != 1 {
		t.Error("unlock flag was not persisted")
	}
}

func TestCodeMatchesAcrossArithmetic(t *testing.T) {
	m := NewCalculatorModel(storage.NewMemStore(), 80, 24)

	// Digits typed into a real calculation still count toward the code;
	// operators do not clear the digit buffer.
	press(m, "42+42")
	if id := m.LaunchID(); id != "stub" {
		t.Errorf("launch id = %q, expected code to match across operators", id)
	}
}

func TestGarbageCodesIgnored(t *testing.T) {
	m := NewCalculatorModel(storage.NewMemStore(), 80, 24)
	press(m, "99999999")
	if id := m.LaunchID(); id != "" {
		t.Errorf("launch id = %q, expected no unlock", id)
	}
}
