// Package snake implements classic grid snake. Direction changes are
// buffered: input recorded between moves applies on the next move tick,
// and a reversal into the snake's own neck is rejected.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/pkozlov/calcade/internal/core"
	"github.com/pkozlov/calcade/internal/registry"
)

// Visual characters for rendering
const (
	HeadChar = '◆'
	BodyChar = '█'
	FoodChar = '●'
)

// Movement pacing: the snake advances one cell every moveInterval ticks,
// accelerating with score down to a floor.
const (
	baseMoveInterval = 8
	minMoveInterval  = 3
	speedupPerFood   = 5 // score points per one-tick speedup
)

type point struct {
	x, y int
}

// Game implements the snake game logic.
type Game struct {
	body    []point // head first
	dir     point
	nextDir point
	food    point
	score   int
	status  core.Status

	rng       *rand.Rand
	runtime   core.RuntimeConfig
	tickCount int
	moveTimer int
}

// New creates a new snake game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.RegisterHidden("snake", "3141", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	cx, cy := runtime.ScreenW/2, runtime.ScreenH/2
	g.body = []point{{cx, cy}, {cx - 1, cy}, {cx - 2, cy}}
	g.dir = point{1, 0}
	g.nextDir = g.dir
	g.score = 0
	g.status = core.StatusPlaying
	g.tickCount = 0
	g.moveTimer = g.moveInterval()
	g.spawnFood()
}

// moveInterval returns ticks per cell at the current score.
func (g *Game) moveInterval() int {
	interval := baseMoveInterval - g.score/speedupPerFood
	if interval < minMoveInterval {
		interval = minMoveInterval
	}
	return interval
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var cues []core.Cue

	if g.status.Terminal() {
		if in.Has(core.ActionRestart) {
			cfg := g.runtime
			cfg.Seed = g.rng.Int63()
			g.Reset(cfg)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.status == core.StatusPaused {
			g.status = core.StatusPlaying
		} else {
			g.status = core.StatusPaused
		}
	}
	if g.status == core.StatusPaused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.bufferDirection(in)

	g.moveTimer--
	if g.moveTimer > 0 {
		return core.StepResult{State: g.State()}
	}
	g.moveTimer = g.moveInterval()

	g.dir = g.nextDir
	head := point{g.body[0].x + g.dir.x, g.body[0].y + g.dir.y}

	if head.x < 0 || head.x >= g.runtime.ScreenW ||
		head.y < 0 || head.y >= g.runtime.ScreenH || g.hits(head) {
		g.status = core.StatusLost
		cues = append(cues, core.CueGameOver)
		return core.StepResult{State: g.State(), Cues: cues}
	}

	g.body = append([]point{head}, g.body...)
	if head == g.food {
		g.score++
		cues = append(cues, core.CuePickup)
		g.spawnFood()
	} else {
		g.body = g.body[:len(g.body)-1]
	}

	return core.StepResult{State: g.State(), Cues: cues}
}

// bufferDirection records the latest direction input, rejecting an
// instant reversal into the neck.
func (g *Game) bufferDirection(in core.InputFrame) {
	var want point
	switch {
	case in.Has(core.ActionUp):
		want = point{0, -1}
	case in.Has(core.ActionDown):
		want = point{0, 1}
	case in.Has(core.ActionLeft):
		want = point{-1, 0}
	case in.Has(core.ActionRight):
		want = point{1, 0}
	default:
		return
	}

	if want.x == -g.dir.x && want.y == -g.dir.y {
		return
	}
	g.nextDir = want
}

// hits reports whether the point lands on a snake-occupied cell.
func (g *Game) hits(p point) bool {
	for _, b := range g.body {
		if b == p {
			return true
		}
	}
	return false
}

// spawnFood places food on a random cell, rerolling until it lands
// outside the snake's body.
func (g *Game) spawnFood() {
	for {
		p := point{
			x: g.rng.Intn(g.runtime.ScreenW),
			y: g.rng.Intn(g.runtime.ScreenH),
		}
		if !g.hits(p) {
			g.food = p
			return
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.SetColored(g.food.x, g.food.y, FoodChar, core.ColorRed)
	for i, b := range g.body {
		ch := BodyChar
		color := core.ColorGreen
		if i == 0 {
			ch = HeadChar
			color = core.ColorBrightGreen
		}
		dst.SetColored(b.x, b.y, ch, color)
	}

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))

	switch g.status {
	case core.StatusPaused:
		dst.DrawTextCentered(dst.Height()/2, "PAUSED - press P to resume")
	case core.StatusLost:
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("GAME OVER - score %d - press R to restart", g.score))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.score,
		Credits: g.score / 3,
		Status:  g.status,
	}
}
