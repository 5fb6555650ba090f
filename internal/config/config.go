// Package config provides YAML-based game configuration loading and the
// spawn ramp that models the game's built-in progressive speed-up.
package config

import (
	"errors"
	"fmt"
)

// TypeRacerConfig contains all tunables for the game.
type TypeRacerConfig struct {
	World   WorldConfig   `yaml:"world"`
	Lives   int           `yaml:"lives"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Words   WordConfig    `yaml:"words"`
	Economy EconomyConfig `yaml:"economy"`
}

// WorldConfig is the logical play field size in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpawnConfig defines when new words appear.
type SpawnConfig struct {
	InitialDelay  float64 `yaml:"initial_delay"`
	BaseMin       float64 `yaml:"base_min"`
	BaseMax       float64 `yaml:"base_max"`
	RampStep      float64 `yaml:"ramp_step"`
	IntervalFloor float64 `yaml:"interval_floor"`
}

// WordConfig defines how spawned words look and pay out.
type WordConfig struct {
	MinSpeed     float64 `yaml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	TopMargin    float64 `yaml:"top_margin"`
	BottomMargin float64 `yaml:"bottom_margin"`
	ColorChance  float64 `yaml:"color_chance"`
	Reward       uint    `yaml:"reward"`
	ColorReward  uint    `yaml:"color_reward"`
}

// EconomyConfig defines power-up prices.
type EconomyConfig struct {
	ExtraLifeCost    uint `yaml:"extra_life_cost"`
	RemoveWordsCost  uint `yaml:"remove_words_cost"`
	RemoveWordsCount int  `yaml:"remove_words_count"`
	SlowSpawnCost    uint `yaml:"slow_spawn_cost"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c TypeRacerConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive, got %vx%v", ErrInvalidConfig, c.World.Width, c.World.Height)
	case c.Lives < 1:
		return fmt.Errorf("%w: lives must be at least 1, got %d", ErrInvalidConfig, c.Lives)
	case c.Words.TopMargin < 0 || c.Words.BottomMargin < 0:
		return fmt.Errorf("%w: margins must not be negative", ErrInvalidConfig)
	case c.Words.TopMargin >= c.World.Height-c.Words.BottomMargin:
		return fmt.Errorf("%w: margins leave no room to spawn words", ErrInvalidConfig)
	case c.Words.MinSpeed <= 0 || c.Words.MaxSpeed < c.Words.MinSpeed:
		return fmt.Errorf("%w: word speed range [%v, %v] is not valid", ErrInvalidConfig, c.Words.MinSpeed, c.Words.MaxSpeed)
	case c.Words.ColorChance < 0 || c.Words.ColorChance > 1:
		return fmt.Errorf("%w: color_chance must be within [0, 1], got %v", ErrInvalidConfig, c.Words.ColorChance)
	case c.Spawn.InitialDelay < 0:
		return fmt.Errorf("%w: initial_delay must not be negative", ErrInvalidConfig)
	case c.Spawn.IntervalFloor <= 0:
		return fmt.Errorf("%w: interval_floor must be positive", ErrInvalidConfig)
	case c.Spawn.BaseMin < c.Spawn.IntervalFloor || c.Spawn.BaseMax < c.Spawn.BaseMin:
		return fmt.Errorf("%w: spawn interval [%v, %v] must sit above floor %v", ErrInvalidConfig, c.Spawn.BaseMin, c.Spawn.BaseMax, c.Spawn.IntervalFloor)
	case c.Spawn.RampStep < 0:
		return fmt.Errorf("%w: ramp_step must not be negative", ErrInvalidConfig)
	case c.Economy.RemoveWordsCount < 1:
		return fmt.Errorf("%w: remove_words_count must be at least 1", ErrInvalidConfig)
	}
	return nil
}
