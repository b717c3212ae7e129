package core

import "time"

// DefaultTickInterval is the fixed simulation step of the classic game.
const DefaultTickInterval = 200 * time.Millisecond

// RuntimeConfig contains configuration passed to a game at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Fixed time between simulation ticks
	Seed         int64         // RNG seed for deterministic gameplay

	// Board overrides the variant's board size when both sides are positive.
	BoardW int
	BoardH int

	// AppleAttempts bounds random apple placement before falling back to
	// sampling the free cells directly. Zero or less samples free cells only.
	AppleAttempts int
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		TickInterval:  DefaultTickInterval,
		Seed:          0, // 0 means use current time in platform layer
		AppleAttempts: 64,
	}
}

// GameState is the coarse game status exposed to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended (lost, won or quit)
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
