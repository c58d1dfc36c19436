package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "blockbreaker.yaml"

// LoadBlockBreaker loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/blockbreaker.yaml ->
// ./configs/blockbreaker.yaml -> embedded default -> hard-coded default.
// Only an explicit customPath that cannot be read, parsed or validated is an
// error; invalid files found on the search path are skipped.
func LoadBlockBreaker(customPath string) (BlockBreakerConfig, error) {
	// Unset keys keep their default values
	cfg := DefaultBlockBreakerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultBlockBreakerConfig(), fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	embedded := DefaultBlockBreakerConfig()
	if err := yaml.Unmarshal(defaultBlockBreakerYAML, &embedded); err != nil {
		return DefaultBlockBreakerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

func tryLoad(path string) (BlockBreakerConfig, bool) {
	cfg := DefaultBlockBreakerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return DefaultBlockBreakerConfig(), false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyBlockBreakerPreset modifies the config based on a difficulty preset.
func ApplyBlockBreakerPreset(cfg *BlockBreakerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Hearts = 5
		cfg.Paddle.Width = 160
		cfg.Ball.Speed = 250
	case DifficultyHard:
		cfg.Gameplay.Hearts = 2
		cfg.Paddle.Width = 96
		cfg.Ball.Speed = 380
	}
}
