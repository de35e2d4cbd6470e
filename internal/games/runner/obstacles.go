package runner

import (
	"math/rand"

	"github.com/pkozlov/calcade/internal/config"
	"github.com/pkozlov/calcade/internal/core"
)

// Obstacle is a ground-anchored block the player must jump over.
type Obstacle struct {
	X      float64 // Left edge; moves leftward each tick
	Width  int
	Height int
}

// Rect returns the obstacle's collision rectangle in screen space.
func (o Obstacle) Rect(groundY int) core.Rect {
	return core.NewRect(int(o.X), groundY-o.Height, o.Width, o.Height)
}

// ObstacleManager handles spawning, movement, and despawning of obstacles.
// Obstacles scroll off the left edge and are removed; the racer-style
// despawn policy, not reflection.
type ObstacleManager struct {
	obstacles  []Obstacle
	rng        *rand.Rand
	screenW    int
	cfg        *config.RunnerConfig
	difficulty *config.DifficultyManager
	nextGap    int // Ticks' worth of distance until the next spawn
}

// NewObstacleManager creates an obstacle manager with the given RNG seed.
func NewObstacleManager(seed int64, screenW int, cfg *config.RunnerConfig, diff *config.DifficultyManager) *ObstacleManager {
	m := &ObstacleManager{
		obstacles:  make([]Obstacle, 0, 8),
		screenW:    screenW,
		cfg:        cfg,
		difficulty: diff,
	}
	m.Reset(seed)
	return m
}

// UpdateConfig swaps in a new configuration.
func (m *ObstacleManager) UpdateConfig(cfg *config.RunnerConfig, diff *config.DifficultyManager) {
	m.cfg = cfg
	m.difficulty = diff
}

// UpdateScreenSize updates the screen width.
func (m *ObstacleManager) UpdateScreenSize(screenW int) {
	m.screenW = screenW
}

// Reset clears all obstacles and reseeds the RNG.
func (m *ObstacleManager) Reset(seed int64) {
	m.obstacles = m.obstacles[:0]
	m.rng = rand.New(rand.NewSource(seed))
	m.nextGap = m.cfg.Obstacles.MaxSpacing
}

// ReseedValue draws a fresh seed from the manager's RNG, used for
// deterministic restarts.
func (m *ObstacleManager) ReseedValue() int64 {
	return m.rng.Int63()
}

// Update moves obstacles left at the difficulty-scaled speed, despawns
// the ones fully off-field, and spawns new ones at the right edge.
func (m *ObstacleManager) Update(score, ticks int) {
	speed := m.difficulty.Speed(m.cfg.Physics.BaseSpeed, score, ticks)

	for i := range m.obstacles {
		m.obstacles[i].X -= speed
	}

	// Despawn obstacles that have fully exited the field.
	kept := m.obstacles[:0]
	for _, o := range m.obstacles {
		if o.X+float64(o.Width) > 0 {
			kept = append(kept, o)
		}
	}
	m.obstacles = kept

	// Spawn when the rightmost obstacle has cleared the current gap.
	spawnX := float64(m.screenW)
	if n := len(m.obstacles); n == 0 || m.obstacles[n-1].X < spawnX-float64(m.nextGap) {
		m.spawn(score, ticks)
	}
}

// spawn creates a new obstacle at the right edge and rolls the next gap.
func (m *ObstacleManager) spawn(score, ticks int) {
	o := m.cfg.Obstacles
	w := o.MinWidth + m.rng.Intn(o.MaxWidth-o.MinWidth+1)
	h := o.MinHeight + m.rng.Intn(o.MaxHeight-o.MinHeight+1)

	m.obstacles = append(m.obstacles, Obstacle{
		X:      float64(m.screenW),
		Width:  w,
		Height: h,
	})

	minGap := m.difficulty.Spacing(o.MinSpacing, score, ticks)
	maxGap := m.difficulty.Spacing(o.MaxSpacing, score, ticks)
	if maxGap <= minGap {
		m.nextGap = minGap
	} else {
		m.nextGap = minGap + m.rng.Intn(maxGap-minGap+1)
	}
}

// Obstacles returns the live obstacle list.
func (m *ObstacleManager) Obstacles() []Obstacle {
	return m.obstacles
}

// CheckCollision tests the player rectangle against every obstacle.
func (m *ObstacleManager) CheckCollision(player core.Rect, groundY int) bool {
	for _, o := range m.obstacles {
		if player.Intersects(o.Rect(groundY)) {
			return true
		}
	}
	return false
}
