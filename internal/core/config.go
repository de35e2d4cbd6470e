package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform layer picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the externally visible summary of a simulation state.
// Returned by Game.State() and inside every StepResult.
type GameState struct {
	Score   int    // Current score
	Credits int    // Arcade credits earned this session
	Status  Status // Lifecycle status (exactly one holds at any time)
}

// GameOver reports whether the game reached a terminal status.
func (s GameState) GameOver() bool {
	return s.Status.Terminal()
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue // Audio cues fired on this tick's transition edges
}
