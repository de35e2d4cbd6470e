package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score or
// elapsed ticks, and resolves the discrete tier a score belongs to.
// The manager itself is stateless with respect to tier crossings: games
// remember their current tier index and compare it against TierIndex so a
// threshold fires exactly once per session.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the current speed multiplier applied to a base speed.
func (d *DifficultyManager) Speed(baseSpeed float64, score, ticks int) float64 {
	level := d.Level(score, ticks)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Spacing returns the current obstacle spacing.
func (d *DifficultyManager) Spacing(baseSpacing int, score, ticks int) int {
	level := d.Level(score, ticks)
	result := baseSpacing - int(level*float64(d.cfg.Scaling.SpacingReduction))
	if result < 15 { // Minimum playable spacing
		result = 15
	}
	return result
}

// TierIndex returns the index of the highest tier whose threshold the
// score has reached, or -1 when no tier applies. Tiers are assumed sorted
// by ascending score.
func (d *DifficultyManager) TierIndex(score int) int {
	idx := -1
	for i, t := range d.cfg.Tiers {
		if score >= t.Score {
			idx = i
		}
	}
	return idx
}

// TierMultiplier returns the multiplier for the given tier index.
// Index -1 (no tier reached) yields the baseline 1.0.
func (d *DifficultyManager) TierMultiplier(idx int) float64 {
	if idx < 0 || idx >= len(d.cfg.Tiers) {
		return 1.0
	}
	return d.cfg.Tiers[idx].Multiplier
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
