// Package platform implements a small platformer over static level data:
// run and jump across rooftop ledges, avoid the hazards, reach the goal.
// It is the only game in the arcade with a win condition.
package platform

import (
	"fmt"

	"github.com/pkozlov/calcade/internal/core"
	"github.com/pkozlov/calcade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar   = '◆'
	PlatformChar = '▀'
	HazardChar   = '╳'
	GoalChar     = '◇'
)

// Physics constants. Tuned for a 60-tick rate; the level data assumes
// these jump arcs.
const (
	gravity      = 0.25
	jumpImpulse  = -1.9
	moveAccel    = 0.3
	maxRunSpeed  = 1.2
	maxFallSpeed = 2.2
	friction     = 0.75
)

// Game implements the platformer game logic.
type Game struct {
	x, y     float64 // player cell, foot position
	vx, vy   float64
	grounded bool
	level    Level
	score    int
	status   core.Status

	runtime   core.RuntimeConfig
	tickCount int
}

var levelPath string

// SetLevelPath sets the custom level file for loading.
func SetLevelPath(path string) {
	levelPath = path
}

// New creates a new platformer game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.RegisterHidden("platform", "1984", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platform"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platform"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	lvl, err := LoadLevel("default", levelPath)
	if err != nil {
		lvl, _ = parseLevel(defaultLevelYAML)
	}
	g.level = lvl

	g.x = float64(lvl.Spawn.X)
	g.y = float64(lvl.Spawn.Y)
	g.vx = 0
	g.vy = 0
	g.grounded = false
	g.score = 0
	g.status = core.StatusPlaying
	g.tickCount = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var cues []core.Cue

	if g.status.Terminal() {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
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

	// Horizontal: accelerate on input, ground friction otherwise.
	axis := in.Axis(core.ActionLeft, core.ActionRight)
	g.vx += float64(axis) * moveAccel
	g.vx = core.ClampF(g.vx, -maxRunSpeed, maxRunSpeed)
	if axis == 0 && g.grounded {
		g.vx *= friction
		if g.vx > -0.05 && g.vx < 0.05 {
			g.vx = 0
		}
	}
	g.x = core.ClampF(g.x+g.vx, 0, float64(g.runtime.ScreenW-1))

	if in.Has(core.ActionJump) && g.grounded {
		g.vy = jumpImpulse
		g.grounded = false
	}

	// Vertical: gravity, then land on the first platform top crossed.
	oldY := g.y
	if !g.grounded {
		g.vy += gravity
		if g.vy > maxFallSpeed {
			g.vy = maxFallSpeed
		}
		g.y += g.vy

		if g.vy > 0 {
			if top, ok := g.landingAt(oldY, g.y); ok {
				g.y = top
				g.vy = 0
				g.grounded = true
			}
		}
	}

	// Walking off a ledge starts a fall.
	if g.grounded && !g.supported() {
		g.grounded = false
	}

	cx, cy := int(g.x), int(g.y)

	for _, h := range g.level.Hazards {
		if h.Rect().Contains(cx, cy) {
			g.status = core.StatusLost
			cues = append(cues, core.CueGameOver)
			return core.StepResult{State: g.State(), Cues: cues}
		}
	}

	if g.y >= float64(g.runtime.ScreenH) {
		g.status = core.StatusLost
		cues = append(cues, core.CueGameOver)
		return core.StepResult{State: g.State(), Cues: cues}
	}

	if g.level.Goal.Rect().Contains(cx, cy) {
		g.status = core.StatusWon
		g.score = g.finishBonus()
		cues = append(cues, core.CueWin)
	}

	return core.StepResult{State: g.State(), Cues: cues}
}

// landingAt finds the topmost platform surface the player's foot crossed
// while moving from oldY to newY. The standing row is one above the
// platform row.
func (g *Game) landingAt(oldY, newY float64) (float64, bool) {
	cx := int(g.x)
	best := 0.0
	found := false
	for _, p := range g.level.Platforms {
		r := p.Rect()
		if cx < r.X || cx >= r.Right() {
			continue
		}
		top := float64(r.Y - 1)
		if oldY <= top && newY >= top {
			if !found || top < best {
				best = top
				found = true
			}
		}
	}
	return best, found
}

// supported reports whether the player still stands on a platform.
func (g *Game) supported() bool {
	cx := int(g.x)
	for _, p := range g.level.Platforms {
		r := p.Rect()
		if cx >= r.X && cx < r.Right() && g.y == float64(r.Y-1) {
			return true
		}
	}
	return false
}

// finishBonus converts time under par into score.
func (g *Game) finishBonus() int {
	remaining := g.level.ParTicks - g.tickCount
	if remaining < 0 {
		return 1 // finishing always pays something
	}
	return 1 + remaining/10
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, p := range g.level.Platforms {
		dst.DrawRect(p.Rect(), PlatformChar)
	}
	for _, h := range g.level.Hazards {
		r := h.Rect()
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				dst.SetColored(x, y, HazardChar, core.ColorRed)
			}
		}
	}
	goal := g.level.Goal.Rect()
	for y := goal.Y; y < goal.Bottom(); y++ {
		for x := goal.X; x < goal.Right(); x++ {
			dst.SetColored(x, y, GoalChar, core.ColorBrightYellow)
		}
	}

	dst.SetColored(int(g.x), int(g.y), PlayerChar, core.ColorBrightGreen)

	dst.DrawText(2, 0, fmt.Sprintf(" %s ", g.level.Name))

	switch g.status {
	case core.StatusPaused:
		dst.DrawTextCentered(dst.Height()/2, "PAUSED - press P to resume")
	case core.StatusWon:
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("YOU MADE IT - score %d - press R to replay", g.score))
	case core.StatusLost:
		dst.DrawTextCentered(dst.Height()/2, "GAME OVER - press R to restart")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.score,
		Credits: g.score / 2,
		Status:  g.status,
	}
}
