package config

import (
	_ "embed"
)

//go:embed defaults/bladefall.yaml
var defaultBladefallYAML []byte

// DefaultBladefallConfig returns the default configuration.
// Keep in sync with defaults/bladefall.yaml.
func DefaultBladefallConfig() BladefallConfig {
	return BladefallConfig{
		TickRate: 20,
		Timing: TimingConfig{
			DropDelay:      1,
			NextLevelDelay: 18,
			GameOverDelay:  3,
		},
		Blade: BladeConfig{
			TopSpeed: 4,
		},
		Narration: []NarrationEntry{
			{
				Level: 0,
				Delay: 3,
				Lines: []string{"Oh no,", "the blade is", "stuck!", " ", "Clear a path?", "._."},
			},
			{
				Level: 6,
				Delay: 3,
				Lines: []string{"Still here?", " ", "It gets", "tougher now."},
			},
		},
		Levels: LevelsConfig{
			Fixed: []LayoutConfig{
				{Name: "first cut", Obstacles: []ObstacleConfig{{Row: 8}, {Row: 14}}},
				{Name: "three steps", Obstacles: []ObstacleConfig{{Row: 5}, {Row: 10}, {Row: 15}}},
				{Name: "hard middle", Obstacles: []ObstacleConfig{{Row: 8, Tough: true}, {Row: 13}}},
				{Name: "sandwich", Obstacles: []ObstacleConfig{{Row: 4}, {Row: 9, Tough: true}, {Row: 14}}},
				{Name: "twin walls", Obstacles: []ObstacleConfig{{Row: 6, Tough: true}, {Row: 12, Tough: true}}},
				{Name: "zipper", Obstacles: []ObstacleConfig{{Row: 3}, {Row: 7, Tough: true}, {Row: 11}, {Row: 15, Tough: true}}},
			},
			Cycle: []LayoutConfig{
				{Obstacles: []ObstacleConfig{{Row: 5, Tough: true}, {Row: 10}, {Row: 15, Tough: true}}},
				{Obstacles: []ObstacleConfig{{Row: 4}, {Row: 8}, {Row: 12, Tough: true}, {Row: 15}}},
				{Obstacles: []ObstacleConfig{{Row: 3, Tough: true}, {Row: 9, Tough: true}, {Row: 14, Tough: true}}},
				{Obstacles: []ObstacleConfig{{Row: 2}, {Row: 6, Tough: true}, {Row: 10}, {Row: 14, Tough: true}}},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBladefallYAML
}
