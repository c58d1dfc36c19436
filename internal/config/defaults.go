package config

import (
	_ "embed"
)

//go:embed defaults/blockbreaker.yaml
var defaultBlockBreakerYAML []byte

// DefaultBlockBreakerConfig returns the hard-coded configuration used when
// no YAML source can be parsed.
func DefaultBlockBreakerConfig() BlockBreakerConfig {
	return BlockBreakerConfig{
		Paddle: PaddleConfig{
			Width:          128,
			Height:         24,
			Speed:          600,
			MaxWidth:       400,
			WidthIncrement: 40,
			SpeedIncrement: 120,
			MaxLasers:      3,
		},
		Ball: BallConfig{
			Radius:   10,
			Speed:    300,
			MaxSpeed: 700,
		},
		Upgrades: UpgradeConfig{
			DropChance:       0.3,
			FallSpeed:        300,
			Width:            40,
			Height:           30,
			ProjectileSpeed:  500,
			ProjectileWidth:  6,
			ProjectileHeight: 20,
		},
		Gameplay: GameplayConfig{
			Hearts:        3,
			BlockPoints:   10,
			MaxFrameDelta: 0.05,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBlockBreakerYAML
}
