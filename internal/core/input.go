package core

// Action represents a semantic game action, abstracted from physical key
// presses. Games work with high-level intents rather than raw input.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionJump    // Space, W, Up - primary action (jump, flap)
	ActionFire    // F, X - shoot
	ActionConfirm // Enter - confirm selection
	ActionBack    // B, Escape - go back to menu
	ActionRestart // R - restart after game over
	ActionQuit    // Q, Ctrl+C - exit game/session
	ActionPause   // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot a game consumes during one simulation
// tick. Step functions read it by value and never receive push
// notifications mid-tick.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool

	// PointerX/PointerY is the latest pointer position in playfield
	// coordinates. Valid only when HasPointer is true.
	PointerX   float64
	PointerY   float64
	HasPointer bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Axis combines two opposing actions into a single direction.
// Both held (or neither) cancel to 0; otherwise -1 for neg, +1 for pos.
// This makes simultaneous left+right deterministic for every game that
// uses axis movement.
func (f InputFrame) Axis(neg, pos Action) int {
	n, p := f.Has(neg), f.Has(pos)
	switch {
	case n == p:
		return 0
	case n:
		return -1
	default:
		return 1
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.PointerX = f.PointerX
	clone.PointerY = f.PointerY
	clone.HasPointer = f.HasPointer
	return clone
}

// Latch records the most recent state of every discrete input between
// ticks and exposes it to the next Step invocation as a value snapshot.
// It is the only bridge between the event-driven host and the tick-driven
// simulation: event handlers write, the scheduler reads once per tick.
//
// Latch is not safe for concurrent use; the host's event loop and the
// scheduler callback are expected to share one logical timeline, as they
// do under Bubble Tea.
type Latch struct {
	held    map[Action]bool
	edges   map[Action]bool // pressed since the last Frame() call
	deviceX float64
	deviceY float64
	pointer bool

	// viewport-to-playfield conversion, recomputed on resize
	fieldW, fieldH int
	viewW, viewH   int
}

// NewLatch creates an empty latch for a playfield of the given size.
func NewLatch(fieldW, fieldH int) *Latch {
	return &Latch{
		held:   make(map[Action]bool),
		edges:  make(map[Action]bool),
		fieldW: fieldW,
		fieldH: fieldH,
		viewW:  fieldW,
		viewH:  fieldH,
	}
}

// Press records an action going down.
func (l *Latch) Press(a Action) {
	l.held[a] = true
	l.edges[a] = true
}

// Release records an action going up.
func (l *Latch) Release(a Action) {
	delete(l.held, a)
}

// SetViewport records the current device viewport size so pointer
// coordinates can be rescaled into playfield space. Called on resize.
func (l *Latch) SetViewport(w, h int) {
	if w > 0 {
		l.viewW = w
	}
	if h > 0 {
		l.viewH = h
	}
}

// SetPointer records the latest pointer position in device coordinates.
func (l *Latch) SetPointer(x, y float64) {
	l.deviceX = x
	l.deviceY = y
	l.pointer = true
}

// Frame returns the snapshot for the next tick. Held actions and edge
// presses since the previous Frame are both reported as held, so a tap
// shorter than one tick is never lost. Pointer coordinates are converted
// to playfield space and clamped into bounds (out-of-field events are
// never an error).
func (l *Latch) Frame() InputFrame {
	f := NewInputFrame()
	for a := range l.held {
		f.Actions[a] = true
	}
	for a := range l.edges {
		f.Actions[a] = true
		delete(l.edges, a)
	}
	if l.pointer {
		sx := float64(l.fieldW) / float64(l.viewW)
		sy := float64(l.fieldH) / float64(l.viewH)
		f.PointerX = ClampF(l.deviceX*sx, 0, float64(l.fieldW-1))
		f.PointerY = ClampF(l.deviceY*sy, 0, float64(l.fieldH-1))
		f.HasPointer = true
	}
	return f
}

// Reset discards all latched input. Called on restart alongside the
// game's own Reset.
func (l *Latch) Reset() {
	l.held = make(map[Action]bool)
	l.edges = make(map[Action]bool)
	l.pointer = false
}
