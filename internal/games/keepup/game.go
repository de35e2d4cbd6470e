// Package keepup implements the balloon keep-up game: a ball falls under
// gravity and the player slides a paddle to bounce it back up. Every
// paddle hit scores a point and hits get stronger as score tiers are
// crossed, so the ball climbs faster and faster.
package keepup

import (
	"fmt"
	"math/rand"

	"github.com/pkozlov/calcade/internal/config"
	"github.com/pkozlov/calcade/internal/core"
	"github.com/pkozlov/calcade/internal/registry"
)

// Visual characters for rendering
const (
	BallChar   = '●'
	PaddleChar = '▀'
	WallChar   = '│'
)

// Game implements the keep-up game logic.
type Game struct {
	ballX  float64
	ballY  float64
	ballVX float64
	ballVY float64

	paddleX float64 // Left edge
	paddleY int     // Fixed row

	score  int
	status core.Status
	tier   int // Index of the highest difficulty tier crossed (-1 = none)

	runtime    core.RuntimeConfig
	cfg        config.KeepupConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tickCount  int
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

// New creates a new keep-up game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.RegisterHidden("keepup", "1337", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "keepup"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Keep-Up"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadKeepup(configPath)
	if err != nil {
		cfg = config.DefaultKeepupConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.score = 0
	g.status = core.StatusPlaying
	g.tier = -1
	g.tickCount = 0

	// Ball starts at a random horizontal position in the top third,
	// drifting sideways so the first catch already takes a move.
	g.ballX = 2 + g.rng.Float64()*float64(runtime.ScreenW-4)
	g.ballY = float64(runtime.ScreenH) / 3.0
	g.ballVX = (g.rng.Float64() - 0.5) * g.cfg.Physics.DriftVariance
	g.ballVY = 0

	g.paddleY = runtime.ScreenH - g.cfg.Paddle.Offset
	g.paddleX = float64(runtime.ScreenW-g.cfg.Paddle.Width) / 2.0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var cues []core.Cue

	// A stray tick after game over is a no-op, except for an explicit
	// restart request.
	if g.status.Terminal() {
		if in.Has(core.ActionRestart) {
			g.Reset(core.RuntimeConfig{
				ScreenW:  g.runtime.ScreenW,
				ScreenH:  g.runtime.ScreenH,
				TickRate: g.runtime.TickRate,
				Seed:     g.rng.Int63(),
			})
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

	g.movePaddle(in)

	// Integrate ball motion.
	prevY := g.ballY
	g.ballVY += g.cfg.Physics.Gravity
	if g.ballVY > g.cfg.Physics.MaxFallSpeed {
		g.ballVY = g.cfg.Physics.MaxFallSpeed
	}
	g.ballX += g.ballVX
	g.ballY += g.ballVY

	// Side walls reflect with damping.
	if g.ballX <= 0 {
		g.ballX = 0
		g.ballVX = -g.ballVX * g.cfg.Physics.SideDamping
		cues = append(cues, core.CueWallBounce)
	} else if g.ballX >= float64(g.runtime.ScreenW-1) {
		g.ballX = float64(g.runtime.ScreenW - 1)
		g.ballVX = -g.ballVX * g.cfg.Physics.SideDamping
		cues = append(cues, core.CueWallBounce)
	}

	// Ceiling reflects with its own damping.
	if g.ballY <= 0 {
		g.ballY = 0
		g.ballVY = -g.ballVY * g.cfg.Physics.CeilingDamping
		cues = append(cues, core.CueWallBounce)
	}

	// Paddle contact: only while descending and inside the paddle span.
	// The rebound speed exceeds one cell per tick, so test the crossing
	// of the paddle plane rather than occupancy of its cell.
	if g.ballVY > 0 && prevY <= float64(g.paddleY) && g.ballY >= float64(g.paddleY) {
		if g.ballX >= g.paddleX && g.ballX < g.paddleX+float64(g.cfg.Paddle.Width) {
			g.score++
			g.ballY = float64(g.paddleY)
			g.ballVY = g.cfg.Physics.HitForce * g.difficulty.TierMultiplier(g.tier)
			g.ballVX += (g.rng.Float64() - 0.5) * g.cfg.Physics.DriftVariance
			cues = append(cues, core.CueHit)

			// Tier thresholds fire exactly once, even when the score
			// jumps past one.
			if idx := g.difficulty.TierIndex(g.score); idx > g.tier {
				g.tier = idx
				cues = append(cues, core.CueTierUp)
			}
		}
	}

	// Below the playfield: lost. The state freezes from here on.
	if g.ballY > float64(g.runtime.ScreenH) {
		g.status = core.StatusLost
		cues = append(cues, core.CueGameOver)
	}

	return core.StepResult{State: g.State(), Cues: cues}
}

// movePaddle applies keyboard axis or pointer-drag control. Opposing keys
// cancel; a latched pointer position wins over keys.
func (g *Game) movePaddle(in core.InputFrame) {
	if in.HasPointer {
		g.paddleX = in.PointerX - float64(g.cfg.Paddle.Width)/2.0
	} else {
		axis := in.Axis(core.ActionLeft, core.ActionRight)
		g.paddleX += float64(axis) * g.cfg.Paddle.Speed
	}
	g.paddleX = core.ClampF(g.paddleX, 0, float64(g.runtime.ScreenW-g.cfg.Paddle.Width))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  Tier: %d ", g.score, g.tier+1))
	dst.DrawVLine(0, 1, dst.Height()-1, WallChar)
	dst.DrawVLine(dst.Width()-1, 1, dst.Height()-1, WallChar)

	for i := 0; i < g.cfg.Paddle.Width; i++ {
		dst.SetColored(int(g.paddleX)+i, g.paddleY, PaddleChar, core.ColorBrightYellow)
	}
	dst.SetColored(int(g.ballX), int(g.ballY), BallChar, core.ColorBrightRed)

	switch g.status {
	case core.StatusPaused:
		drawOverlay(dst, "PAUSED", "Press P to resume")
	case core.StatusLost:
		drawOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawOverlay draws a centered message box.
func drawOverlay(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.score,
		Credits: g.score / 5, // one credit per five catches
		Status:  g.status,
	}
}
