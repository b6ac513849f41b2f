// Package config provides YAML-based configuration loading for the game.
package config

// SnakeConfig contains all tunable parameters for the snake game.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Rules  RulesConfig  `yaml:"rules"`
}

// GridConfig defines the playing field dimensions in cells, including the
// one-cell wall border.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the simulation cadence.
type TimingConfig struct {
	// RefreshRateMS is the fixed interval between simulation steps in
	// milliseconds; lower is faster.
	RefreshRateMS int `yaml:"refresh_rate_ms"`
}

// RulesConfig defines scoring parameters.
type RulesConfig struct {
	// FoodReward is the score added per food eaten.
	FoodReward int `yaml:"food_reward"`
}
