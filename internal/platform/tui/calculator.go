package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pkozlov/calcade/internal/registry"
	"github.com/pkozlov/calcade/internal/storage"
)

// codeBufferLen is how many trailing digits are matched against unlock
// codes. Longer than any registered code.
const codeBufferLen = 8

// Calculator styles
var (
	calcFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(1, 2)

	calcDisplayStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")).
				Background(lipgloss.Color("235")).
				Foreground(lipgloss.Color("10")).
				Width(22).
				Align(lipgloss.Right)

	calcKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	calcHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	unlockStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// CalculatorModel is a working four-function calculator. Digit entry
// doubles as secret-code input: when the trailing digits match a
// registered unlock code, the hidden game behind it is unlocked and
// launched.
type CalculatorModel struct {
	display  string // current entry or result
	acc      float64
	pendOp   byte // 0 when no operation is pending
	entering bool // display holds in-progress digit entry

	codeBuf   string
	store     storage.Store
	launchID  string // set when a code unlocked a game this update
	unlockMsg string
	quitting  bool
	width     int
	height    int
}

// NewCalculatorModel creates the calculator screen.
func NewCalculatorModel(store storage.Store, width, height int) *CalculatorModel {
	return &CalculatorModel{
		display: "0",
		store:   store,
		width:   width,
		height:  height,
	}
}

// LaunchID returns the game unlocked by the last keypress, or "".
// The caller consumes it by switching to the game screen.
func (m *CalculatorModel) LaunchID() string {
	id := m.launchID
	m.launchID = ""
	return id
}

// Quitting reports whether the user asked to exit.
func (m *CalculatorModel) Quitting() bool { return m.quitting }

// Init implements tea.Model.
func (m *CalculatorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m *CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *CalculatorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "c":
		m.clear()
		return m, nil
	case "backspace":
		m.backspace()
		return m, nil
	case "enter", "=":
		m.evaluate()
		return m, nil
	case "+", "-", "*", "/":
		m.applyOp(key[0])
		return m, nil
	case ".":
		m.enterDecimalPoint()
		return m, nil
	}

	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		m.enterDigit(key[0])
	}
	return m, nil
}

func (m *CalculatorModel) clear() {
	m.display = "0"
	m.acc = 0
	m.pendOp = 0
	m.entering = false
	m.unlockMsg = ""
}

func (m *CalculatorModel) backspace() {
	if !m.entering || len(m.display) <= 1 {
		m.display = "0"
		m.entering = false
		return
	}
	m.display = m.display[:len(m.display)-1]
}

func (m *CalculatorModel) enterDigit(d byte) {
	if !m.entering {
		m.display = string(d)
		m.entering = true
	} else if m.display == "0" {
		m.display = string(d)
	} else if len(m.display) < 16 {
		m.display += string(d)
	}

	m.codeBuf += string(d)
	if len(m.codeBuf) > codeBufferLen {
		m.codeBuf = m.codeBuf[len(m.codeBuf)-codeBufferLen:]
	}
	m.checkCode()
}

func (m *CalculatorModel) enterDecimalPoint() {
	if !m.entering {
		m.display = "0."
		m.entering = true
		return
	}
	if !strings.Contains(m.display, ".") {
		m.display += "."
	}
}

// checkCode matches every trailing substring of the digit buffer against
// the registry. On a hit the game is recorded as unlocked and launched.
func (m *CalculatorModel) checkCode() {
	for i := 0; i < len(m.codeBuf); i++ {
		id, ok := registry.Unlock(m.codeBuf[i:])
		if !ok {
			continue
		}
		if m.store != nil {
			//nolint:errcheck // unlock persists best-effort
			m.store.SetInt(storage.UnlockKey(id), 1)
		}
		m.launchID = id
		m.unlockMsg = fmt.Sprintf("UNLOCKED: %s", id)
		m.codeBuf = ""
		return
	}
}

// applyOp folds the pending operation and stages the next one.
func (m *CalculatorModel) applyOp(op byte) {
	m.evaluate()
	m.acc = m.displayValue()
	m.pendOp = op
	m.entering = false
}

// evaluate folds the pending operation into the display.
func (m *CalculatorModel) evaluate() {
	if m.pendOp == 0 {
		return
	}
	rhs := m.displayValue()
	var result float64
	switch m.pendOp {
	case '+':
		result = m.acc + rhs
	case '-':
		result = m.acc - rhs
	case '*':
		result = m.acc * rhs
	case '/':
		if rhs == 0 {
			m.display = "Err"
			m.pendOp = 0
			m.entering = false
			return
		}
		result = m.acc / rhs
	}
	m.display = strconv.FormatFloat(result, 'g', 12, 64)
	m.pendOp = 0
	m.entering = false
}

func (m *CalculatorModel) displayValue() float64 {
	v, err := strconv.ParseFloat(m.display, 64)
	if err != nil {
		return 0
	}
	return v
}

// View renders the calculator.
func (m *CalculatorModel) View() string {
	if m.quitting {
		return ""
	}

	var body strings.Builder
	body.WriteString(calcDisplayStyle.Render(m.display))
	body.WriteString("\n\n")
	body.WriteString(calcKeyStyle.Render("  7 8 9  /\n  4 5 6  *\n  1 2 3  -\n  0 . =  +"))
	body.WriteString("\n\n")
	body.WriteString(calcHintStyle.Render("c clear  m menu  t scores  q quit"))
	if m.unlockMsg != "" {
		body.WriteString("\n" + unlockStyle.Render(m.unlockMsg))
	}

	frame := calcFrameStyle.Render("CALCADE-80\n\n" + body.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
}
