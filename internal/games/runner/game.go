// Package runner implements an endless runner: the player sprints
// automatically and jumps over obstacles scrolling in from the right.
package runner

import (
	"fmt"

	"github.com/pkozlov/calcade/internal/config"
	"github.com/pkozlov/calcade/internal/core"
	"github.com/pkozlov/calcade/internal/registry"
)

// Visual characters for rendering
const (
	BodyChar     = '█'
	HeadChar     = '◆'
	ObstacleChar = '▓'
	GroundChar   = '═'
)

// Game implements the endless runner game logic.
type Game struct {
	playerY    float64 // Relative to ground, negative = airborne
	playerVel  float64
	isGrounded bool
	obstacles  *ObstacleManager
	score      int
	status     core.Status
	tier       int

	runtime    core.RuntimeConfig
	cfg        config.RunnerConfig
	difficulty *config.DifficultyManager
	tickCount  int
	groundY    int
	legFrame   int
}

var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy", "normal", "hard", "fixed":
		difficultyPreset = config.DifficultyPreset(preset)
	default:
		difficultyPreset = ""
	}
}

// New creates a new runner game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.RegisterHidden("runner", "2468", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Runner"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.groundY = runtime.ScreenH - g.cfg.Player.GroundOffset
	g.playerY = 0
	g.playerVel = 0
	g.isGrounded = true
	g.score = 0
	g.status = core.StatusPlaying
	g.tier = -1
	g.tickCount = 0
	g.legFrame = 0

	if g.obstacles == nil {
		g.obstacles = NewObstacleManager(runtime.Seed, runtime.ScreenW, &g.cfg, g.difficulty)
	} else {
		g.obstacles.UpdateConfig(&g.cfg, g.difficulty)
		g.obstacles.UpdateScreenSize(runtime.ScreenW)
		g.obstacles.Reset(runtime.Seed)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var cues []core.Cue

	if g.status.Terminal() {
		if in.Has(core.ActionRestart) {
			cfg := g.runtime
			cfg.Seed = g.obstacles.ReseedValue()
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
	g.legFrame = (g.legFrame + 1) % 10

	// Jump only from the ground.
	if in.Has(core.ActionJump) && g.isGrounded {
		g.playerVel = g.cfg.Physics.JumpImpulse
		g.isGrounded = false
	}

	if !g.isGrounded {
		g.playerVel += g.cfg.Physics.Gravity
		if g.playerVel > g.cfg.Physics.MaxFallSpeed {
			g.playerVel = g.cfg.Physics.MaxFallSpeed
		}
		g.playerY += g.playerVel

		if g.playerY >= 0 {
			g.playerY = 0
			g.playerVel = 0
			g.isGrounded = true
		}
	}

	g.obstacles.Update(g.score, g.tickCount)
	g.score++

	if idx := g.difficulty.TierIndex(g.score); idx > g.tier {
		g.tier = idx
		cues = append(cues, core.CueTierUp)
	}

	if g.obstacles.CheckCollision(g.playerRect(), g.groundY) {
		g.status = core.StatusLost
		cues = append(cues, core.CueGameOver)
	}

	return core.StepResult{State: g.State(), Cues: cues}
}

// playerRect returns the player's collision rectangle in screen space.
func (g *Game) playerRect() core.Rect {
	screenY := g.groundY - g.cfg.Player.Height - int(-g.playerY)
	return core.NewRect(g.cfg.Player.X, screenY, g.cfg.Player.Width, g.cfg.Player.Height)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawHLine(0, g.groundY, dst.Width(), GroundChar)

	// Player
	r := g.playerRect()
	for dy := 0; dy < r.H; dy++ {
		for dx := 0; dx < r.W; dx++ {
			ch := BodyChar
			if dy == 0 && dx == r.W-1 {
				ch = HeadChar
			}
			dst.SetColored(r.X+dx, r.Y+dy, ch, core.ColorBrightGreen)
		}
	}

	// Obstacles
	for _, o := range g.obstacles.Obstacles() {
		for dy := 0; dy < o.Height; dy++ {
			for dx := 0; dx < o.Width; dx++ {
				dst.SetColored(int(o.X)+dx, g.groundY-1-dy, ObstacleChar, core.ColorGreen)
			}
		}
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
		Credits: g.score / 250, // distance pays out slowly
		Status:  g.status,
	}
}
