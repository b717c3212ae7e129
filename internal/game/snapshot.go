package game

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Snapshot is a read-only copy of everything a renderer or a test needs.
type Snapshot struct {
	Tick        uint64
	Variant     string
	Board       core.Bounds
	Segments    []core.Point // Head first
	Direction   snake.Direction
	GrowPending bool
	Apple       core.Point
	Score       int
	Status      Status
	Reason      EndReason
	Paused      bool
}

// Head returns the first segment, or core.Unplaced for an empty snapshot.
func (s Snapshot) Head() core.Point {
	if len(s.Segments) == 0 {
		return core.Unplaced
	}
	return s.Segments[0]
}

// Length returns the number of snake segments.
func (s Snapshot) Length() int {
	return len(s.Segments)
}

// Snapshot returns the current state. The returned value shares no memory
// with the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    s.tick,
		Variant: s.variant.ID,
		Board:   s.bounds,
		Apple:   core.Unplaced,
		Score:   s.score,
		Status:  s.status,
		Reason:  s.reason,
		Paused:  s.paused,
	}
	if s.snake != nil {
		snap.Segments = s.snake.Segments()
		snap.Direction = s.snake.Direction()
		snap.GrowPending = s.snake.GrowPending()
	}
	if s.apple != nil {
		snap.Apple = s.apple.Position()
	}
	return snap
}

// Equal compares two snapshots field by field.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.Tick == o.Tick &&
		s.Variant == o.Variant &&
		s.Board == o.Board &&
		slices.Equal(s.Segments, o.Segments) &&
		s.Direction == o.Direction &&
		s.GrowPending == o.GrowPending &&
		s.Apple == o.Apple &&
		s.Score == o.Score &&
		s.Status == o.Status &&
		s.Reason == o.Reason &&
		s.Paused == o.Paused
}
