package shooter

import "github.com/pkozlov/calcade/internal/core"

// Snapshot captures the observable game state for determinism testing.
// Entity lists are summarized by count to keep the value comparable.
type Snapshot struct {
	Tick       int
	Score      int
	Tier       int
	Shield     int
	ShipX      float64
	ShipY      float64
	NumEnemies int
	NumBullets int
	Status     core.Status
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tickCount,
		Score:      g.score,
		Tier:       g.tier,
		Shield:     g.shield,
		ShipX:      g.shipX,
		ShipY:      g.shipY,
		NumEnemies: len(g.enemies),
		NumBullets: len(g.bullets),
		Status:     g.status,
	}
}
