package keepup

import "github.com/pkozlov/calcade/internal/core"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    int
	Score   int
	Tier    int
	BallX   float64
	BallY   float64
	BallVX  float64
	BallVY  float64
	PaddleX float64
	Status  core.Status
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tickCount,
		Score:   g.score,
		Tier:    g.tier,
		BallX:   g.ballX,
		BallY:   g.ballY,
		BallVX:  g.ballVX,
		BallVY:  g.ballVY,
		PaddleX: g.paddleX,
		Status:  g.status,
	}
}
