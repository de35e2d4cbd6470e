// Package racer implements a lane-based traffic dodger: oncoming cars
// scroll down the highway and the player swerves between lanes. Cars that
// leave the field despawn; there is no reflection at the boundary.
package racer

import (
	"fmt"
	"math/rand"

	"github.com/pkozlov/calcade/internal/config"
	"github.com/pkozlov/calcade/internal/core"
	"github.com/pkozlov/calcade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar  = '▲'
	TrafficChar = '▼'
	DividerChar = '┊'
)

type car struct {
	lane int
	y    float64
}

// Game implements the lane racer game logic.
type Game struct {
	lane    int
	traffic []car
	score   int
	status  core.Status
	tier    int

	// previous-tick left/right, for one-lane-per-press movement
	prevLeft  bool
	prevRight bool

	rng        *rand.Rand
	runtime    core.RuntimeConfig
	cfg        config.RacerConfig
	difficulty *config.DifficultyManager
	tickCount  int
	spawnTimer int
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

// New creates a new racer game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.RegisterHidden("racer", "8008", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "racer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Racer"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	cfg, err := config.LoadRacer(configPath)
	if err != nil {
		cfg = config.DefaultRacerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.lane = cfg.Lanes / 2
	g.traffic = g.traffic[:0]
	g.score = 0
	g.status = core.StatusPlaying
	g.tier = -1
	g.prevLeft = false
	g.prevRight = false
	g.tickCount = 0
	g.spawnTimer = cfg.SpawnEvery
}

// playerRow is the screen row the player car occupies.
func (g *Game) playerRow() int {
	return g.runtime.ScreenH - 3
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

	g.steer(in)

	// Advance traffic; cars that leave the field despawn and pay out a
	// near-miss point each. At full difficulty a car moves more than one
	// row per tick, so the crash test sweeps the rows covered by the move
	// instead of sampling the car's final row.
	speed := g.difficulty.Speed(g.cfg.CarSpeed, g.score, g.tickCount)
	row := g.playerRow()
	crashed := false
	survived := 0
	kept := g.traffic[:0]
	for _, c := range g.traffic {
		fromRow := int(c.y)
		c.y += speed
		if c.lane == g.lane && fromRow <= row && int(c.y) >= row {
			crashed = true
		}
		if c.y >= float64(g.runtime.ScreenH) {
			survived++
			continue
		}
		kept = append(kept, c)
	}
	g.traffic = kept

	if survived > 0 {
		points := int(float64(survived*g.cfg.NearMiss) * g.difficulty.TierMultiplier(g.tier))
		g.score += points
		cues = append(cues, core.CuePickup)

		if idx := g.difficulty.TierIndex(g.score); idx > g.tier {
			g.tier = idx
			cues = append(cues, core.CueTierUp)
		}
	}

	g.spawnTimer--
	if g.spawnTimer <= 0 {
		g.traffic = append(g.traffic, car{lane: g.rng.Intn(g.cfg.Lanes), y: 0})
		g.spawnTimer = g.cfg.SpawnEvery
	}

	if crashed {
		g.status = core.StatusLost
		cues = append(cues, core.CueGameOver)
	}

	return core.StepResult{State: g.State(), Cues: cues}
}

// steer moves one lane per key press, not per held tick.
func (g *Game) steer(in core.InputFrame) {
	left := in.Has(core.ActionLeft)
	right := in.Has(core.ActionRight)

	if left && !g.prevLeft {
		g.lane = core.Clamp(g.lane-1, 0, g.cfg.Lanes-1)
	}
	if right && !g.prevRight {
		g.lane = core.Clamp(g.lane+1, 0, g.cfg.Lanes-1)
	}

	g.prevLeft = left
	g.prevRight = right
}

// laneCenter returns the screen column at the middle of a lane.
func (g *Game) laneCenter(lane int) int {
	laneW := g.runtime.ScreenW / g.cfg.Lanes
	return lane*laneW + laneW/2
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	laneW := g.runtime.ScreenW / g.cfg.Lanes
	for i := 1; i < g.cfg.Lanes; i++ {
		dst.DrawVLine(i*laneW, 0, dst.Height(), DividerChar)
	}

	for _, c := range g.traffic {
		dst.SetColored(g.laneCenter(c.lane), int(c.y), TrafficChar, core.ColorRed)
	}
	dst.SetColored(g.laneCenter(g.lane), g.playerRow(), PlayerChar, core.ColorBrightGreen)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))

	switch g.status {
	case core.StatusPaused:
		dst.DrawTextCentered(dst.Height()/2, "PAUSED - press P to resume")
	case core.StatusLost:
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("CRASH - score %d - press R to restart", g.score))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.score,
		Credits: g.score / 5,
		Status:  g.status,
	}
}
