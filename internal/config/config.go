// Package config provides YAML-based tuning and level authoring data for bladefall.
package config

import (
	"errors"
	"fmt"
)

// Field limits the authoring data is validated against. They mirror the fixed
// 8×21 play field of the game.
const (
	MaxObstacleRow = 21
	MaxNarratorCol = 16 // characters per narrator line on a 64px display
)

// BladefallConfig contains all tuning and level data for the game.
type BladefallConfig struct {
	TickRate  int              `yaml:"tick_rate"`
	Timing    TimingConfig     `yaml:"timing"`
	Blade     BladeConfig      `yaml:"blade"`
	Narration []NarrationEntry `yaml:"narration"`
	Levels    LevelsConfig     `yaml:"levels"`
}

// TimingConfig defines frame-counted delays.
type TimingConfig struct {
	DropDelay      uint8 `yaml:"drop_delay"`       // Ticks between piece descents
	NextLevelDelay uint8 `yaml:"next_level_delay"` // Ticks between level clear and next level
	GameOverDelay  uint8 `yaml:"game_over_delay"`  // Ticks between lock-out and game over screen
}

// BladeConfig defines the blade animation.
type BladeConfig struct {
	TopSpeed uint8 `yaml:"top_speed"` // Pixels per tick once fully accelerated
}

// NarrationEntry attaches a narrator script to the start of a level.
type NarrationEntry struct {
	Level int      `yaml:"level"`
	Delay uint8    `yaml:"delay"` // Ticks before text starts revealing
	Lines []string `yaml:"lines"`
}

// LevelsConfig lists obstacle layouts.
// Fixed layouts are used for the first levels; afterwards Cycle repeats by level modulo its length.
type LevelsConfig struct {
	Fixed []LayoutConfig `yaml:"fixed"`
	Cycle []LayoutConfig `yaml:"cycle"`
}

// LayoutConfig is one level's obstacle seeding.
type LayoutConfig struct {
	Name      string           `yaml:"name,omitempty"`
	Obstacles []ObstacleConfig `yaml:"obstacles"`
}

// ObstacleConfig seeds one obstacle pair. Row counts from the bottom of the field (1 = lowest).
type ObstacleConfig struct {
	Row   int  `yaml:"row"`
	Tough bool `yaml:"tough,omitempty"`
}

// Validate checks the config for values the game cannot represent.
func (c BladefallConfig) Validate() error {
	var errs []error

	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.Blade.TopSpeed == 0 {
		errs = append(errs, errors.New("blade.top_speed must be at least 1"))
	}
	if len(c.Levels.Cycle) == 0 {
		errs = append(errs, errors.New("levels.cycle needs at least one layout"))
	}

	check := func(group string, layouts []LayoutConfig) {
		for i, l := range layouts {
			for _, o := range l.Obstacles {
				if o.Row < 1 || o.Row > MaxObstacleRow {
					errs = append(errs, fmt.Errorf("levels.%s[%d]: row %d out of range 1..%d", group, i, o.Row, MaxObstacleRow))
				}
			}
		}
	}
	check("fixed", c.Levels.Fixed)
	check("cycle", c.Levels.Cycle)

	for _, n := range c.Narration {
		if n.Level < 0 {
			errs = append(errs, fmt.Errorf("narration: negative level %d", n.Level))
		}
		for _, line := range n.Lines {
			if !isASCII(line) {
				errs = append(errs, fmt.Errorf("narration level %d: line %q has characters outside ASCII", n.Level, line))
			}
			if len(line) > MaxNarratorCol {
				errs = append(errs, fmt.Errorf("narration level %d: line %q longer than %d characters", n.Level, line, MaxNarratorCol))
			}
		}
	}

	return errors.Join(errs...)
}

// isASCII reports whether every byte is printable ASCII, the range the display font covers.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < ' ' || s[i] > '~' {
			return false
		}
	}
	return true
}
