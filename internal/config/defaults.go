package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hardcoded default configuration, used as
// the last-resort fallback when the embedded YAML cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  64,
			Height: 36,
		},
		Timing: TimingConfig{
			RefreshRateMS: 150,
		},
		Rules: RulesConfig{
			FoodReward: 10,
		},
	}
}
