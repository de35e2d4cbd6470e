package racer

import "github.com/pkozlov/calcade/internal/core"

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick    int
	Score   int
	Tier    int
	Lane    int
	NumCars int
	Status  core.Status
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tickCount,
		Score:   g.score,
		Tier:    g.tier,
		Lane:    g.lane,
		NumCars: len(g.traffic),
		Status:  g.status,
	}
}
