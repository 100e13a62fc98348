package bladefall

import (
	"github.com/vovakirdan/bladefall/internal/config"
)

// Obstacle seeds one obstacle pair. Row counts from the bottom of the field.
type Obstacle struct {
	Row   int
	Tough bool
}

// Layout is the obstacle seeding of one level.
type Layout struct {
	Name      string
	Obstacles []Obstacle
}

// Script is the narrator text shown at the start of a level.
type Script struct {
	Delay uint8
	Lines []string
}

// Rules holds the tuning and level data a game runs with.
type Rules struct {
	DropDelay      uint8
	NextLevelDelay uint8
	GameOverDelay  uint8
	BladeTopSpeed  uint8

	// Fixed layouts apply to levels 0..len(Fixed)-1; later levels cycle through Cycle.
	Fixed []Layout
	Cycle []Layout

	Narration map[int]Script
}

// DefaultRules returns the rules built from the built-in configuration.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultBladefallConfig())
}

// RulesFromConfig converts loaded configuration into game rules.
func RulesFromConfig(cfg config.BladefallConfig) Rules {
	r := Rules{
		DropDelay:      cfg.Timing.DropDelay,
		NextLevelDelay: cfg.Timing.NextLevelDelay,
		GameOverDelay:  cfg.Timing.GameOverDelay,
		BladeTopSpeed:  cfg.Blade.TopSpeed,
		Fixed:          convertLayouts(cfg.Levels.Fixed),
		Cycle:          convertLayouts(cfg.Levels.Cycle),
		Narration:      make(map[int]Script, len(cfg.Narration)),
	}
	for _, n := range cfg.Narration {
		r.Narration[n.Level] = Script{Delay: n.Delay, Lines: n.Lines}
	}
	return r
}

func convertLayouts(in []config.LayoutConfig) []Layout {
	out := make([]Layout, 0, len(in))
	for _, l := range in {
		layout := Layout{Name: l.Name, Obstacles: make([]Obstacle, 0, len(l.Obstacles))}
		for _, o := range l.Obstacles {
			layout.Obstacles = append(layout.Obstacles, Obstacle{Row: o.Row, Tough: o.Tough})
		}
		out = append(out, layout)
	}
	return out
}

// LayoutFor returns the obstacle layout of a level. It depends only on the level number.
func (r Rules) LayoutFor(level int) Layout {
	if level < 0 {
		level = 0
	}
	if level < len(r.Fixed) {
		return r.Fixed[level]
	}
	if len(r.Cycle) == 0 {
		return Layout{}
	}
	return r.Cycle[level%len(r.Cycle)]
}

// NarratorFor returns a fresh narrator for the level, or nil when the level has no script.
func (r Rules) NarratorFor(level int) *Narrator {
	s, ok := r.Narration[level]
	if !ok || len(s.Lines) == 0 {
		return nil
	}
	return NewNarrator(s.Delay, s.Lines)
}
