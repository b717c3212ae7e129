// Package game wires the snake and apple rules into a playable session:
// tick orchestration, scoring, terminal states and rendering.
package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Status is the lifecycle state of a session.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusGameOver Status = "game_over"
	StatusWon      Status = "won"
)

// Terminal reports whether no more ticks will be simulated.
func (s Status) Terminal() bool {
	return s != StatusPlaying
}

// EndReason records why a session left the playing state.
type EndReason string

const (
	ReasonNone      EndReason = ""
	ReasonWall      EndReason = "wall-collision"
	ReasonSelf      EndReason = "self-collision"
	ReasonBoardFull EndReason = "board-full"
	ReasonQuit      EndReason = "quit"
)

// Event describes what happened during a single tick.
type Event struct {
	Ate   bool // The head reached the apple
	Ended bool // The session became terminal on this tick
}

// Session owns all mutable state of one game: the snake, the apple, the score
// and the pending heading requested since the last tick.
type Session struct {
	variant Variant
	bounds  core.Bounds
	rng     *rand.Rand
	id      string

	snake *snake.Snake
	apple *snake.Apple

	score  int
	status Status
	reason EndReason
	tick   uint64
	paused bool

	// Single-slot direction buffer: overwritten by every valid request,
	// consumed at the start of the next tick.
	pending    snake.Direction
	hasPending bool

	appleAttempts int
	tickInterval  time.Duration
	screenW       int
	screenH       int
}

// NewSession creates a session for the given variant. Call Reset before use.
func NewSession(v Variant) *Session {
	return &Session{
		variant: v,
		bounds:  v.Board,
		status:  StatusPlaying,
	}
}

// ID returns the variant identifier.
func (s *Session) ID() string {
	return s.variant.ID
}

// Title returns the variant display name.
func (s *Session) Title() string {
	return s.variant.Title
}

// SessionID returns the unique identifier of the current game, regenerated on
// every Reset.
func (s *Session) SessionID() string {
	return s.id
}

// TickInterval returns the fixed time between ticks for this session.
func (s *Session) TickInterval() time.Duration {
	if s.tickInterval <= 0 {
		return core.DefaultTickInterval
	}
	return s.tickInterval
}

// Reset starts a new game: default snake, fresh apple, zero score.
func (s *Session) Reset(cfg core.RuntimeConfig) {
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.id = uuid.NewString()

	// Overrides that cannot hold the starting snake fall back to the
	// variant board.
	s.bounds = s.variant.Board
	if override := (core.Bounds{W: cfg.BoardW, H: cfg.BoardH}); snake.FitsDefault(override) {
		s.bounds = override
	}
	s.appleAttempts = cfg.AppleAttempts
	s.tickInterval = cfg.TickInterval
	s.screenW = cfg.ScreenW
	s.screenH = cfg.ScreenH

	s.snake = snake.NewDefault()
	s.apple = snake.NewApple(s.appleAttempts)
	s.score = 0
	s.status = StatusPlaying
	s.reason = ReasonNone
	s.tick = 0
	s.paused = false
	s.hasPending = false

	if err := s.apple.Respawn(s.rng, s.bounds, s.snake.Segments()); errors.Is(err, snake.ErrBoardFull) {
		s.end(StatusWon, ReasonBoardFull)
	}
}

// RequestDirection buffers a heading change for the next tick.
// Requests that the snake would reject (current heading or its reverse) are
// dropped; otherwise the latest request replaces any earlier one.
func (s *Session) RequestDirection(d snake.Direction) {
	if s.snake == nil || !s.snake.CanTurn(d) {
		return
	}
	s.pending = d
	s.hasPending = true
}

// PendingDirection returns the buffered heading, if any.
func (s *Session) PendingDirection() (snake.Direction, bool) {
	return s.pending, s.hasPending
}

// Tick advances the simulation by one step. The order is fixed: apply the
// buffered heading, move, eat, then check walls and the body. Growth from an
// apple shows up on the following move.
func (s *Session) Tick() Event {
	var ev Event
	if s.snake == nil || s.status.Terminal() || s.paused {
		return ev
	}
	s.tick++

	if s.hasPending {
		s.snake.ChangeDirection(s.pending)
		s.hasPending = false
	}

	s.snake.Move()
	head := s.snake.Head()

	boardFull := false
	if head == s.apple.Position() {
		ev.Ate = true
		s.snake.Grow()
		s.score++
		if err := s.apple.Respawn(s.rng, s.bounds, s.snake.Segments()); errors.Is(err, snake.ErrBoardFull) {
			boardFull = true
		}
	}

	switch {
	case !s.bounds.Contains(head):
		s.end(StatusGameOver, ReasonWall)
	case s.snake.CheckSelfCollision():
		s.end(StatusGameOver, ReasonSelf)
	case boardFull:
		s.end(StatusWon, ReasonBoardFull)
	}

	ev.Ended = s.status.Terminal()
	return ev
}

// Quit ends a running session without changing the score.
func (s *Session) Quit() {
	if !s.status.Terminal() {
		s.end(StatusGameOver, ReasonQuit)
	}
}

// TogglePause pauses or resumes a running session.
func (s *Session) TogglePause() {
	if !s.status.Terminal() {
		s.paused = !s.paused
	}
}

func (s *Session) end(status Status, reason EndReason) {
	s.status = status
	s.reason = reason
	s.paused = false
	s.hasPending = false
}

// Step applies one frame of platform input and runs a tick.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && s.status.Terminal() {
		s.Reset(core.RuntimeConfig{
			Seed:          s.rng.Int63(),
			ScreenW:       s.screenW,
			ScreenH:       s.screenH,
			BoardW:        s.bounds.W,
			BoardH:        s.bounds.H,
			TickInterval:  s.tickInterval,
			AppleAttempts: s.appleAttempts,
		})
		return core.StepResult{State: s.State()}
	}

	if in.Has(core.ActionQuit) {
		s.Quit()
		return core.StepResult{State: s.State()}
	}

	if in.Has(core.ActionPause) {
		s.TogglePause()
	}

	for _, a := range in.Directions {
		if d, ok := snake.DirectionFromAction(a); ok {
			s.RequestDirection(d)
		}
	}

	s.Tick()
	return core.StepResult{State: s.State()}
}

// State returns the coarse status for the platform.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		GameOver: s.status.Terminal(),
		Paused:   s.paused,
	}
}

// Status returns the lifecycle state.
func (s *Session) Status() Status {
	return s.status
}

// Reason returns why the session ended, or ReasonNone while playing.
func (s *Session) Reason() EndReason {
	return s.reason
}

// Score returns the number of apples eaten.
func (s *Session) Score() int {
	return s.score
}
