package config

import (
	_ "embed"
)

//go:embed defaults/keepup.yaml
var defaultKeepupYAML []byte

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultKeepupConfig returns the default keep-up configuration.
// The damping factors are tuned gameplay constants carried over verbatim.
func DefaultKeepupConfig() KeepupConfig {
	return KeepupConfig{
		Physics: KeepupPhysics{
			Gravity:        0.08,
			HitForce:       -1.6,
			MaxFallSpeed:   2.5,
			SideDamping:    0.95,
			CeilingDamping: 0.9,
			DriftVariance:  0.6,
		},
		Paddle: KeepupPaddle{
			Width:  10,
			Speed:  1.4,
			Offset: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
			Tiers: []Tier{
				{Score: 10, Multiplier: 1.1},
				{Score: 20, Multiplier: 1.25},
				{Score: 40, Multiplier: 1.45},
			},
		},
	}
}

// DefaultRunnerConfig returns the default endless runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:      0.3,
			JumpImpulse:  -2.5,
			MaxFallSpeed: 4.0,
			BaseSpeed:    0.5,
		},
		Obstacles: RunnerObstacles{
			MinWidth:   1,
			MaxWidth:   3,
			MinHeight:  2,
			MaxHeight:  4,
			MinSpacing: 30,
			MaxSpacing: 50,
		},
		Player: RunnerPlayer{
			X:            8,
			Width:        3,
			Height:       3,
			GroundOffset: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  2.0,
				SpacingReduction: 20,
			},
			Tiers: []Tier{
				{Score: 500, Multiplier: 1.2},
				{Score: 1500, Multiplier: 1.5},
			},
		},
	}
}

// DefaultShooterConfig returns the default shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Player: ShooterPlayer{
			Speed:        1.2,
			ShieldPoints: 3,
			FireCooldown: 8,
			BulletSpeed:  1.8,
			HitRadius:    1.2,
		},
		Enemies: ShooterEnemies{
			Speed:         0.35,
			HitRadius:     1.0,
			SpawnInterval: 90,
			MinSpawnGap:   25,
			Points:        5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 7200, // 2 minutes at 60 ticks/s
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
			Tiers: []Tier{
				{Score: 25, Multiplier: 1.2},
				{Score: 75, Multiplier: 1.5},
			},
		},
	}
}

// DefaultRacerConfig returns the default lane racer configuration.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Lanes:      4,
		CarSpeed:   0.6,
		SpawnEvery: 50,
		NearMiss:   1,
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 80,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.2,
			},
			Tiers: []Tier{
				{Score: 20, Multiplier: 1.25},
				{Score: 50, Multiplier: 1.6},
			},
		},
	}
}
