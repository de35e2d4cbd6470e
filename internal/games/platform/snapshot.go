package platform

import "github.com/pkozlov/calcade/internal/core"

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick     int
	X        float64
	Y        float64
	VX       float64
	VY       float64
	Grounded bool
	Score    int
	Status   core.Status
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tickCount,
		X:        g.x,
		Y:        g.y,
		VX:       g.vx,
		VY:       g.vy,
		Grounded: g.grounded,
		Score:    g.score,
		Status:   g.status,
	}
}
