package config

import (
	_ "embed"
)

//go:embed defaults/typeracer.yaml
var defaultTypeRacerYAML []byte

// DefaultTypeRacerConfig returns the built-in configuration. It matches the
// embedded YAML and is the fallback when that cannot be parsed.
func DefaultTypeRacerConfig() TypeRacerConfig {
	return TypeRacerConfig{
		World: WorldConfig{
			Width:  1200,
			Height: 1000,
		},
		Lives: 5,
		Spawn: SpawnConfig{
			InitialDelay:  3.0,
			BaseMin:       3.0,
			BaseMax:       3.5,
			RampStep:      0.01,
			IntervalFloor: 0.5,
		},
		Words: WordConfig{
			MinSpeed:     50,
			MaxSpeed:     200,
			TopMargin:    40,
			BottomMargin: 100,
			ColorChance:  0.30,
			Reward:       10,
			ColorReward:  20,
		},
		Economy: EconomyConfig{
			ExtraLifeCost:    300,
			RemoveWordsCost:  350,
			RemoveWordsCount: 2,
			SlowSpawnCost:    1000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTypeRacerYAML
}
