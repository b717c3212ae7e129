// Package snake implements the snake body and apple placement rules.
// Both types are plain state machines with no notion of time, rendering
// or input; the game session drives them once per tick.
package snake

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrEmptyBody is returned when a snake is built without segments.
var ErrEmptyBody = errors.New("snake: body must have at least one segment")

// ErrInvalidDirection is returned when a snake is built with an unknown heading.
var ErrInvalidDirection = errors.New("snake: invalid direction")

// DefaultBody is the starting body of a new game, head first.
func DefaultBody() []core.Point {
	return []core.Point{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}
}

// FitsDefault reports whether a new game can start on b: the whole default
// body is inside and at least one cell is left for the apple.
func FitsDefault(b core.Bounds) bool {
	body := DefaultBody()
	for _, p := range body {
		if !b.Contains(p) {
			return false
		}
	}
	return b.Cells() > len(body)
}

// Snake is an ordered body (head at index 0) with a heading and a pending
// growth flag.
type Snake struct {
	segments    []core.Point
	direction   Direction
	growPending bool
}

// New creates a snake from a head-first body and an initial heading.
// The body is copied.
func New(body []core.Point, dir Direction) (*Snake, error) {
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	return &Snake{
		segments:  slices.Clone(body),
		direction: dir,
	}, nil
}

// NewDefault creates the standard 3-segment snake heading right.
func NewDefault() *Snake {
	s, _ := New(DefaultBody(), DirRight) //nolint:errcheck // body is non-empty
	return s
}

// Head returns the head position.
func (s *Snake) Head() core.Point {
	return s.segments[0]
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []core.Point {
	return slices.Clone(s.segments)
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// GrowPending reports whether the next move keeps the tail.
func (s *Snake) GrowPending() bool {
	return s.growPending
}

// Move advances the head one cell along the current heading.
// The tail is dropped unless growth is pending, in which case the flag is
// consumed and the snake gets one segment longer. Bounds are not checked:
// a head outside the board is a valid state for the caller to detect.
func (s *Snake) Move() {
	newHead := s.Head().Add(s.direction.Vector())

	if s.growPending {
		s.growPending = false
		s.segments = slices.Insert(s.segments, 0, newHead)
		return
	}

	// Shift the body one slot towards the tail, reusing the backing array.
	copy(s.segments[1:], s.segments[:len(s.segments)-1])
	s.segments[0] = newHead
}

// Grow makes the next Move keep the tail. Calling it more than once before
// that move still grows by a single segment.
func (s *Snake) Grow() {
	s.growPending = true
}

// ChangeDirection sets the heading to d. Requests for the current heading or
// its exact opposite are ignored, as are invalid values.
// It reports whether the heading changed.
func (s *Snake) ChangeDirection(d Direction) bool {
	if !s.CanTurn(d) {
		return false
	}
	s.direction = d
	return true
}

// CanTurn reports whether ChangeDirection(d) would be accepted right now.
func (s *Snake) CanTurn(d Direction) bool {
	return d.Valid() && d != s.direction && d != s.direction.Opposite()
}

// CheckSelfCollision reports whether the head shares a cell with any other
// segment.
func (s *Snake) CheckSelfCollision() bool {
	head := s.Head()
	return slices.Contains(s.segments[1:], head)
}

// Occupies reports whether any segment is at p.
func (s *Snake) Occupies(p core.Point) bool {
	return slices.Contains(s.segments, p)
}
