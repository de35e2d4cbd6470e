package config

import "testing"

func testDifficultyConfig() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, SpacingReduction: 20},
		Tiers: []Tier{
			{Score: 10, Multiplier: 1.1},
			{Score: 20, Multiplier: 1.25},
			{Score: 40, Multiplier: 1.5},
		},
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	if got := d.Level(0, 0); got != 0.0 {
		t.Errorf("Level(0) = %f, expected 0", got)
	}
	if got := d.Level(50, 0); got != 0.5 {
		t.Errorf("Level(50) = %f, expected 0.5", got)
	}
	if got := d.Level(100, 0); got != 1.0 {
		t.Errorf("Level(100) = %f, expected 1.0", got)
	}
	// Clamped past max.
	if got := d.Level(500, 0); got != 1.0 {
		t.Errorf("Level(500) = %f, expected 1.0", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := testDifficultyConfig()
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)

	if got := d.Level(99, 0); got != cfg.InitialLevel {
		t.Errorf("disabled manager should stay at initial level, got %f", got)
	}
	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
}

func TestDifficultySpeed(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	if got := d.Speed(2.0, 0, 0); got != 2.0 {
		t.Errorf("Speed at level 0 = %f, expected 2.0", got)
	}
	if got := d.Speed(2.0, 100, 0); got != 4.0 {
		t.Errorf("Speed at level 1 = %f, expected 4.0", got)
	}
}

func TestDifficultySpacingFloor(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	if got := d.Spacing(16, 100, 0); got != 15 {
		t.Errorf("Spacing should clamp to the playable floor, got %d", got)
	}
}

func TestTierIndex(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	tests := []struct {
		score    int
		expected int
	}{
		{0, -1},
		{9, -1},
		{10, 0},  // exactly at threshold
		{19, 0},
		{20, 1},
		{39, 1},
		{100, 2}, // past all thresholds
	}

	for _, tc := range tests {
		if got := d.TierIndex(tc.score); got != tc.expected {
			t.Errorf("TierIndex(%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}
}

func TestTierMultiplier(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	if got := d.TierMultiplier(-1); got != 1.0 {
		t.Errorf("baseline multiplier = %f, expected 1.0", got)
	}
	if got := d.TierMultiplier(1); got != 1.25 {
		t.Errorf("tier 1 multiplier = %f, expected 1.25", got)
	}
	if got := d.TierMultiplier(99); got != 1.0 {
		t.Errorf("out-of-range index should fall back to 1.0, got %f", got)
	}
}

// Threshold crossings fire once per session: a game stores its tier index
// and only reacts when TierIndex reports a higher one. This covers score
// sequences that pass through, land on, or jump over a threshold.
func TestTierOneShotFiring(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	sequences := [][]int{
		{5, 9, 10, 11, 12},  // lands exactly on 10
		{5, 15, 15, 15},     // jumps over 10
		{0, 50},             // jumps over several thresholds at once
	}
	wantFires := []int{1, 1, 3}

	for i, seq := range sequences {
		tier := -1
		fires := 0
		for _, score := range seq {
			if idx := d.TierIndex(score); idx > tier {
				fires += idx - tier // one event per tier crossed
				tier = idx
			}
		}
		if fires != wantFires[i] {
			t.Errorf("sequence %v fired %d times, expected %d", seq, fires, wantFires[i])
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := testDifficultyConfig()

	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Enabled || cfg.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%f", cfg.Enabled, cfg.InitialLevel)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Enabled {
		t.Error("fixed preset should disable progression")
	}
}
