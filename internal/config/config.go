// Package config provides YAML-based tuning configuration loading and
// difficulty management for the block breaker game.
package config

// BlockBreakerConfig contains all tunable parameters of the game.
// Window size, stage maps and the shoot cooldown are not configurable.
type BlockBreakerConfig struct {
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Upgrades   UpgradeConfig    `yaml:"upgrades"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PaddleConfig defines the player's paddle. Sizes and speeds are in world
// units (the 1280x720 logical window) and world units per second.
type PaddleConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	MaxWidth       float64 `yaml:"max_width"`
	WidthIncrement float64 `yaml:"width_increment"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	MaxLasers      int     `yaml:"max_lasers"`
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius   float64 `yaml:"radius"`
	Speed    float64 `yaml:"speed"`     // Per-axis speed
	MaxSpeed float64 `yaml:"max_speed"` // Cap after difficulty scaling
}

// UpgradeConfig defines dropped upgrades and laser projectiles.
type UpgradeConfig struct {
	DropChance       float64 `yaml:"drop_chance"`
	FallSpeed        float64 `yaml:"fall_speed"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	ProjectileSpeed  float64 `yaml:"projectile_speed"`
	ProjectileWidth  float64 `yaml:"projectile_width"`
	ProjectileHeight float64 `yaml:"projectile_height"`
}

// GameplayConfig defines scoring and run rules.
type GameplayConfig struct {
	Hearts        int     `yaml:"hearts"`
	BlockPoints   int     `yaml:"block_points"`
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // Seconds
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to ball speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyNormal, true
	default:
		return "", false
	}
}

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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
