package config

import (
	"testing"
	"time"
)

func TestDifficultyDisabledKeepsBase(t *testing.T) {
	dm := NewDifficultyManager(DefaultSnakeConfig().Difficulty)
	base := 200 * time.Millisecond

	for _, score := range []int{0, 10, 100} {
		if got := dm.Interval(base, score, 0); got != base {
			t.Errorf("Interval(score=%d) = %v, expected %v", score, got, base)
		}
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	}
	dm := NewDifficultyManager(cfg)
	base := 200 * time.Millisecond

	tests := []struct {
		score    int
		level    float64
		interval time.Duration
	}{
		{0, 0.0, 200 * time.Millisecond},
		{10, 1.0, 100 * time.Millisecond},
		{50, 1.0, 100 * time.Millisecond},
	}

	for _, tc := range tests {
		if got := dm.Level(tc.score, 0); got != tc.level {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.level)
		}
		if got := dm.Interval(base, tc.score, 0); got != tc.interval {
			t.Errorf("Interval(%d) = %v, expected %v", tc.score, got, tc.interval)
		}
	}

	mid := dm.Interval(base, 5, 0)
	if mid <= 100*time.Millisecond || mid >= base {
		t.Errorf("Interval(5) = %v, expected strictly between 100ms and 200ms", mid)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
	})
	if got := dm.Level(0, 50); got != 0.5 {
		t.Errorf("Level(ticks=50) = %v, expected 0.5", got)
	}
}

func TestDifficultyFloor(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1},
		Scaling:     ScalingConfig{SpeedMultiplier: 10, MinIntervalMS: 60},
	})

	if got := dm.Interval(200*time.Millisecond, 5, 0); got != 60*time.Millisecond {
		t.Errorf("Interval() = %v, expected the 60ms floor", got)
	}
	// A floor above the base never slows the game down.
	if got := dm.Interval(40*time.Millisecond, 5, 0); got != 40*time.Millisecond {
		t.Errorf("Interval() = %v, expected 40ms", got)
	}
}

func TestDifficultyProgressionNone(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "none"},
	})
	if dm.IsEnabled() {
		t.Error("progression type none should disable scaling")
	}
	if got := dm.Level(100, 100); got != 0.3 {
		t.Errorf("Level() = %v, expected initial level 0.3", got)
	}
}
