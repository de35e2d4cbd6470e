// Package shooter implements a top-down arena shooter: enemies home in on
// the ship from the field edges and the ship's cannon auto-aims at the
// nearest threat.
package shooter

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/pkozlov/calcade/internal/config"
	"github.com/pkozlov/calcade/internal/core"
	"github.com/pkozlov/calcade/internal/registry"
)

// Visual characters for rendering
const (
	ShipChar   = '▲'
	EnemyChar  = '◉'
	BulletChar = '·'
)

type enemy struct {
	x, y float64
}

type bullet struct {
	x, y   float64
	vx, vy float64
}

// Game implements the arena shooter game logic.
type Game struct {
	shipX, shipY float64
	shield       int
	cooldown     int // Ticks until the cannon may fire again
	enemies      []enemy
	bullets      []bullet
	score        int
	status       core.Status
	tier         int

	rng        *rand.Rand
	runtime    core.RuntimeConfig
	cfg        config.ShooterConfig
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

// New creates a new shooter game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.RegisterHidden("shooter", "7355", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Shooter"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		cfg = config.DefaultShooterConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.shipX = float64(runtime.ScreenW) / 2
	g.shipY = float64(runtime.ScreenH) * 2 / 3
	g.shield = cfg.Player.ShieldPoints
	g.cooldown = 0
	g.enemies = g.enemies[:0]
	g.bullets = g.bullets[:0]
	g.score = 0
	g.status = core.StatusPlaying
	g.tier = -1
	g.tickCount = 0
	g.spawnTimer = g.spawnInterval()
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

	g.moveShip(in)

	if g.cooldown > 0 {
		g.cooldown--
	}
	if in.Has(core.ActionFire) && g.cooldown == 0 {
		g.fire()
		g.cooldown = g.cfg.Player.FireCooldown
		cues = append(cues, core.CueShoot)
	}

	g.moveBullets()
	g.moveEnemies()

	g.spawnTimer--
	if g.spawnTimer <= 0 {
		g.spawnEnemy()
		g.spawnTimer = g.spawnInterval()
	}

	if killed := g.resolveBulletHits(); killed > 0 {
		points := int(float64(killed*g.cfg.Enemies.Points) * g.difficulty.TierMultiplier(g.tier))
		g.score += points
		cues = append(cues, core.CueExplosion)

		if idx := g.difficulty.TierIndex(g.score); idx > g.tier {
			g.tier = idx
			cues = append(cues, core.CueTierUp)
		}
	}

	if g.resolveShipHits() {
		cues = append(cues, core.CueHit)
		if g.shield <= 0 {
			g.status = core.StatusLost
			cues = append(cues, core.CueGameOver)
		}
	}

	return core.StepResult{State: g.State(), Cues: cues}
}

// moveShip applies axis movement and clamps the ship into the field.
func (g *Game) moveShip(in core.InputFrame) {
	speed := g.cfg.Player.Speed
	g.shipX += float64(in.Axis(core.ActionLeft, core.ActionRight)) * speed
	g.shipY += float64(in.Axis(core.ActionUp, core.ActionDown)) * speed

	if in.HasPointer {
		g.shipX = in.PointerX
		g.shipY = in.PointerY
	}

	g.shipX = core.ClampF(g.shipX, 0, float64(g.runtime.ScreenW-1))
	g.shipY = core.ClampF(g.shipY, 0, float64(g.runtime.ScreenH-1))
}

// fire launches a bullet auto-aimed at the nearest enemy, or straight up
// when the field is empty.
func (g *Game) fire() {
	angle := -math.Pi / 2
	if e, ok := g.nearestEnemy(); ok {
		angle = core.SafeAngle(e.x-g.shipX, e.y-g.shipY)
	}
	speed := g.cfg.Player.BulletSpeed
	g.bullets = append(g.bullets, bullet{
		x:  g.shipX,
		y:  g.shipY,
		vx: math.Cos(angle) * speed,
		vy: math.Sin(angle) * speed,
	})
}

func (g *Game) nearestEnemy() (enemy, bool) {
	best := -1
	bestDist := math.MaxFloat64
	for i, e := range g.enemies {
		dx := e.x - g.shipX
		dy := e.y - g.shipY
		if d := dx*dx + dy*dy; d < bestDist {
			bestDist = d
			best = i
		}
	}
	if best < 0 {
		return enemy{}, false
	}
	return g.enemies[best], true
}

// moveBullets advances bullets and despawns the ones that leave the field.
func (g *Game) moveBullets() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		b.x += b.vx
		b.y += b.vy
		if b.x < 0 || b.x >= float64(g.runtime.ScreenW) ||
			b.y < 0 || b.y >= float64(g.runtime.ScreenH) {
			continue
		}
		kept = append(kept, b)
	}
	g.bullets = kept
}

// moveEnemies homes every enemy toward the ship at the difficulty-scaled
// speed. SafeAngle guards the zero-distance case: an enemy exactly on the
// ship simply holds position this tick.
func (g *Game) moveEnemies() {
	speed := g.difficulty.Speed(g.cfg.Enemies.Speed, g.score, g.tickCount)
	for i := range g.enemies {
		e := &g.enemies[i]
		dx := g.shipX - e.x
		dy := g.shipY - e.y
		if dx == 0 && dy == 0 {
			continue
		}
		angle := core.SafeAngle(dx, dy)
		e.x += math.Cos(angle) * speed
		e.y += math.Sin(angle) * speed
	}
}

// spawnEnemy places a new enemy on a random field edge. Positions landing
// in the ship's cell are rerolled so an enemy can never materialize on top
// of the player.
func (g *Game) spawnEnemy() {
	w := float64(g.runtime.ScreenW)
	h := float64(g.runtime.ScreenH)

	for {
		var x, y float64
		switch g.rng.Intn(4) {
		case 0: // top
			x, y = g.rng.Float64()*w, 0
		case 1: // bottom
			x, y = g.rng.Float64()*w, h-1
		case 2: // left
			x, y = 0, g.rng.Float64()*h
		default: // right
			x, y = w-1, g.rng.Float64()*h
		}

		if int(x) == int(g.shipX) && int(y) == int(g.shipY) {
			continue
		}
		g.enemies = append(g.enemies, enemy{x: x, y: y})
		return
	}
}

// spawnInterval returns the current ticks-between-spawns, shrinking with
// elapsed time down to the configured floor.
func (g *Game) spawnInterval() int {
	base := g.cfg.Enemies.SpawnInterval
	floor := g.cfg.Enemies.MinSpawnGap
	level := g.difficulty.Level(g.score, g.tickCount)
	interval := base - int(level*float64(base-floor))
	if interval < floor {
		interval = floor
	}
	return interval
}

// resolveBulletHits removes every enemy-bullet pair that overlaps and
// returns the number of kills.
func (g *Game) resolveBulletHits() int {
	killed := 0
	for bi := 0; bi < len(g.bullets); bi++ {
		b := g.bullets[bi]
		hit := -1
		for ei, e := range g.enemies {
			if core.CirclesOverlap(b.x, b.y, 0.5, e.x, e.y, g.cfg.Enemies.HitRadius) {
				hit = ei
				break
			}
		}
		if hit < 0 {
			continue
		}
		g.enemies = append(g.enemies[:hit], g.enemies[hit+1:]...)
		g.bullets = append(g.bullets[:bi], g.bullets[bi+1:]...)
		bi--
		killed++
	}
	return killed
}

// resolveShipHits removes enemies that reach the ship and drains the
// shield one point per contact.
func (g *Game) resolveShipHits() bool {
	contact := false
	kept := g.enemies[:0]
	for _, e := range g.enemies {
		if core.CirclesOverlap(g.shipX, g.shipY, g.cfg.Player.HitRadius, e.x, e.y, g.cfg.Enemies.HitRadius) {
			g.shield--
			contact = true
			continue
		}
		kept = append(kept, e)
	}
	g.enemies = kept
	return contact
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, b := range g.bullets {
		dst.SetColored(int(b.x), int(b.y), BulletChar, core.ColorBrightYellow)
	}
	for _, e := range g.enemies {
		dst.SetColored(int(e.x), int(e.y), EnemyChar, core.ColorRed)
	}
	dst.SetColored(int(g.shipX), int(g.shipY), ShipChar, core.ColorBrightGreen)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  Shield: %d ", g.score, g.shield))

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
		Credits: g.score / 10,
		Status:  g.status,
	}
}
