// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade. Physics constants are tuned
// gameplay data, not derived values; changing them changes game feel.
package config

// KeepupConfig contains all configuration for the balloon keep-up game.
type KeepupConfig struct {
	Physics    KeepupPhysics    `yaml:"physics"`
	Paddle     KeepupPaddle     `yaml:"paddle"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// KeepupPhysics defines physics parameters for keep-up.
type KeepupPhysics struct {
	Gravity        float64 `yaml:"gravity"`          // Downward acceleration per tick
	HitForce       float64 `yaml:"hit_force"`        // Upward velocity on paddle contact (negative = up)
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`   // Terminal velocity
	SideDamping    float64 `yaml:"side_damping"`     // Velocity factor on side-wall reflection
	CeilingDamping float64 `yaml:"ceiling_damping"`  // Velocity factor on ceiling reflection
	DriftVariance  float64 `yaml:"drift_variance"`   // Horizontal kick range added on paddle hits
}

// KeepupPaddle defines paddle parameters for keep-up.
type KeepupPaddle struct {
	Width  int     `yaml:"width"`
	Speed  float64 `yaml:"speed"`
	Offset int     `yaml:"offset"` // Rows above the playfield bottom
}

// RunnerConfig contains all configuration for the endless runner.
type RunnerConfig struct {
	Physics    RunnerPhysics    `yaml:"physics"`
	Obstacles  RunnerObstacles  `yaml:"obstacles"`
	Player     RunnerPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerPhysics defines physics parameters for the runner.
type RunnerPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
}

// RunnerObstacles defines obstacle parameters for the runner.
type RunnerObstacles struct {
	MinWidth   int `yaml:"min_width"`
	MaxWidth   int `yaml:"max_width"`
	MinHeight  int `yaml:"min_height"`
	MaxHeight  int `yaml:"max_height"`
	MinSpacing int `yaml:"min_spacing"`
	MaxSpacing int `yaml:"max_spacing"`
}

// RunnerPlayer defines player parameters for the runner.
type RunnerPlayer struct {
	X            int `yaml:"x"`
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundOffset int `yaml:"ground_offset"`
}

// ShooterConfig contains all configuration for the shooter.
type ShooterConfig struct {
	Player     ShooterPlayer    `yaml:"player"`
	Enemies    ShooterEnemies   `yaml:"enemies"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShooterPlayer defines the ship parameters for the shooter.
type ShooterPlayer struct {
	Speed         float64 `yaml:"speed"`
	ShieldPoints  int     `yaml:"shield_points"`
	FireCooldown  int     `yaml:"fire_cooldown"`  // Ticks between shots
	BulletSpeed   float64 `yaml:"bullet_speed"`
	HitRadius     float64 `yaml:"hit_radius"`
}

// ShooterEnemies defines enemy parameters for the shooter.
type ShooterEnemies struct {
	Speed         float64 `yaml:"speed"`
	HitRadius     float64 `yaml:"hit_radius"`
	SpawnInterval int     `yaml:"spawn_interval"` // Base ticks between spawns
	MinSpawnGap   int     `yaml:"min_spawn_gap"`  // Floor the interval never drops below
	Points        int     `yaml:"points"`         // Score per kill
}

// RacerConfig contains all configuration for the lane racer.
type RacerConfig struct {
	Lanes      int              `yaml:"lanes"`
	CarSpeed   float64          `yaml:"car_speed"`   // Traffic scroll speed per tick
	SpawnEvery int              `yaml:"spawn_every"` // Base ticks between traffic spawns
	NearMiss   int              `yaml:"near_miss"`   // Points per car survived
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
	Tiers        []Tier            `yaml:"tiers"` // Discrete one-shot thresholds
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of continuous difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`
	SpacingReduction int     `yaml:"spacing_reduction"`
}

// Tier is a discrete score threshold. Crossing it bumps the tier
// multiplier and must fire exactly once per session, even when the score
// jumps past the threshold in a single tick.
type Tier struct {
	Score      int     `yaml:"score"`
	Multiplier float64 `yaml:"multiplier"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies a difficulty config according to a named preset.
// "fixed" disables progression entirely.
func ApplyPreset(cfg *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Enabled = false
		return
	}
	cfg.Enabled = true
	cfg.InitialLevel = InitialLevelForPreset(preset)
}
