package snake

import "github.com/pkozlov/calcade/internal/core"

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick   int
	Score  int
	HeadX  int
	HeadY  int
	Length int
	DirX   int
	DirY   int
	FoodX  int
	FoodY  int
	Status core.Status
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.tickCount,
		Score:  g.score,
		HeadX:  g.body[0].x,
		HeadY:  g.body[0].y,
		Length: len(g.body),
		DirX:   g.dir.x,
		DirY:   g.dir.y,
		FoodX:  g.food.x,
		FoodY:  g.food.y,
		Status: g.status,
	}
}
