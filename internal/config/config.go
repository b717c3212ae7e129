// Package config provides YAML-based game configuration loading and
// difficulty management for the snake game.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Tick       TickConfig       `yaml:"tick"`
	Apple      AppleConfig      `yaml:"apple"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig overrides the variant's board size. Zero keeps the variant default.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TickConfig defines the fixed simulation step.
type TickConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// AppleConfig defines apple placement parameters.
type AppleConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // Random probes before sampling free cells
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Preset       DifficultyPreset  `yaml:"preset"`
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra speed at max difficulty
	MinIntervalMS   int     `yaml:"min_interval_ms"`  // Floor for the tick interval
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "no preset".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IntervalForPreset returns the starting tick interval for a preset.
// Fixed and unknown presets return zero, meaning "keep the configured value".
func IntervalForPreset(preset DifficultyPreset) time.Duration {
	switch preset {
	case DifficultyEasy:
		return 300 * time.Millisecond
	case DifficultyNormal:
		return 200 * time.Millisecond
	case DifficultyHard:
		return 120 * time.Millisecond
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Interval returns the configured tick interval.
func (c SnakeConfig) Interval() time.Duration {
	if c.Tick.IntervalMS <= 0 {
		return core.DefaultTickInterval
	}
	return time.Duration(c.Tick.IntervalMS) * time.Millisecond
}

// Validate rejects values no game can run with.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Board.Width < 0 || c.Board.Height < 0:
		return fmt.Errorf("config: board size %dx%d must not be negative", c.Board.Width, c.Board.Height)
	case (c.Board.Width == 0) != (c.Board.Height == 0):
		return fmt.Errorf("config: board width and height must be set together")
	case c.Board.Width > 0 && !snake.FitsDefault(core.Bounds{W: c.Board.Width, H: c.Board.Height}):
		return fmt.Errorf("config: board %dx%d is too small for the starting snake", c.Board.Width, c.Board.Height)
	case c.Tick.IntervalMS < 0:
		return fmt.Errorf("config: tick interval %dms must not be negative", c.Tick.IntervalMS)
	case c.Apple.MaxAttempts < 0:
		return fmt.Errorf("config: apple max_attempts %d must not be negative", c.Apple.MaxAttempts)
	}
	if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
		return err
	}
	return nil
}

// ApplyTo copies the game parameters into a runtime config.
func (c SnakeConfig) ApplyTo(rc *core.RuntimeConfig) {
	rc.BoardW = c.Board.Width
	rc.BoardH = c.Board.Height
	rc.TickInterval = c.Interval()
	rc.AppleAttempts = c.Apple.MaxAttempts
}
