package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 20, one frame every 50ms)
	Seed     int64 // Entropy seed; 0 means use the OS entropy source
}

// DefaultTickRate is the console frame rate: one frame every 50ms.
const DefaultTickRate = 20

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: DefaultTickRate,
		Seed:     0,
	}
}

// FrameInterval returns the wall-clock duration of one tick.
func (c RuntimeConfig) FrameInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Mode     string // Active top-level mode ("intro", "game", "gameover")
	Level    int    // Level being played, or reached when the game ended
	Score    int    // Current score
	GameOver bool   // Whether the game has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
