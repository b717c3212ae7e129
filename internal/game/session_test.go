package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func testConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

// newScenario builds a classic session with a fixed body and apple.
func newScenario(t *testing.T, board core.Bounds, body []core.Point, dir snake.Direction, apple core.Point) *Session {
	t.Helper()
	s := NewSession(Variant{ID: "test", Title: "Test", Board: board})
	s.Reset(testConfig(1))

	sn, err := snake.New(body, dir)
	if err != nil {
		t.Fatalf("snake.New() failed: %v", err)
	}
	s.snake = sn
	s.apple.PlaceAt(apple)
	s.status = StatusPlaying
	s.reason = ReasonNone
	return s
}

func TestResetDefaults(t *testing.T) {
	s := NewSession(Classic)
	s.Reset(testConfig(42))
	snap := s.Snapshot()

	if snap.Status != StatusPlaying {
		t.Errorf("Status = %v, expected playing", snap.Status)
	}
	if snap.Score != 0 {
		t.Errorf("Score = %d, expected 0", snap.Score)
	}
	if snap.Length() != 3 || snap.Head() != (core.Point{X: 2, Y: 0}) {
		t.Errorf("unexpected start body %v", snap.Segments)
	}
	if snap.Direction != snake.DirRight {
		t.Errorf("Direction = %v, expected right", snap.Direction)
	}
	if !snap.Board.Contains(snap.Apple) {
		t.Errorf("apple %v should be on the board", snap.Apple)
	}
	for _, seg := range snap.Segments {
		if seg == snap.Apple {
			t.Errorf("apple spawned on snake at %v", seg)
		}
	}
	if s.SessionID() == "" {
		t.Error("SessionID() should be set after Reset")
	}
}

func TestResetBoardOverride(t *testing.T) {
	cfg := testConfig(1)
	cfg.BoardW, cfg.BoardH = 30, 15

	s := NewSession(Classic)
	s.Reset(cfg)

	if got := s.Snapshot().Board; got != (core.Bounds{W: 30, H: 15}) {
		t.Errorf("Board = %+v, expected 30x15", got)
	}
}

func TestResetIgnoresTooSmallOverride(t *testing.T) {
	for _, board := range []core.Bounds{{W: 2, H: 5}, {W: 2, H: 1}, {W: 3, H: 1}} {
		cfg := testConfig(1)
		cfg.BoardW, cfg.BoardH = board.W, board.H

		s := NewSession(Classic)
		s.Reset(cfg)
		snap := s.Snapshot()

		if snap.Board != Classic.Board {
			t.Errorf("%dx%d: Board = %+v, expected classic fallback", board.W, board.H, snap.Board)
		}
		if !snap.Board.Contains(snap.Head()) {
			t.Errorf("%dx%d: head %v starts off the board", board.W, board.H, snap.Head())
		}
		if snap.Status != StatusPlaying || snap.Score != 0 {
			t.Errorf("%dx%d: Status/Score = %v/%d, expected playing/0", board.W, board.H, snap.Status, snap.Score)
		}
	}
}

func TestResetOnFullBoardWins(t *testing.T) {
	s := NewSession(Variant{ID: "strip", Title: "Strip", Board: core.Bounds{W: 3, H: 1}})
	s.Reset(testConfig(1))

	if s.Status() != StatusWon || s.Reason() != ReasonBoardFull {
		t.Errorf("Status/Reason = %v/%v, expected won/board-full", s.Status(), s.Reason())
	}
}

func TestTickMovesRight(t *testing.T) {
	s := newScenario(t, Classic.Board, snake.DefaultBody(), snake.DirRight, core.Point{X: 10, Y: 5})
	ev := s.Tick()

	snap := s.Snapshot()
	expected := []core.Point{{X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}}
	for i, p := range expected {
		if snap.Segments[i] != p {
			t.Errorf("segment %d = %v, expected %v", i, snap.Segments[i], p)
		}
	}
	if snap.Length() != 3 {
		t.Errorf("Length() = %d, expected 3", snap.Length())
	}
	if ev.Ate || ev.Ended {
		t.Errorf("unexpected event %+v", ev)
	}
	if snap.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", snap.Tick)
	}
}

func TestEatGrowsOnFollowingMove(t *testing.T) {
	s := newScenario(t, Classic.Board, snake.DefaultBody(), snake.DirRight, core.Point{X: 3, Y: 0})

	ev := s.Tick()
	if !ev.Ate {
		t.Fatal("expected the apple to be eaten")
	}
	snap := s.Snapshot()
	if snap.Score != 1 {
		t.Errorf("Score = %d, expected 1", snap.Score)
	}
	if snap.Length() != 3 {
		t.Errorf("Length() right after eating = %d, expected 3", snap.Length())
	}
	if !snap.GrowPending {
		t.Error("growth should be pending after eating")
	}
	if snap.Apple == (core.Point{X: 3, Y: 0}) {
		t.Error("apple should have been respawned")
	}
	for _, seg := range snap.Segments {
		if seg == snap.Apple {
			t.Errorf("respawned apple lies on the snake at %v", seg)
		}
	}

	// Keep the next step away from the new apple so only growth is observed.
	s.apple.PlaceAt(core.Point{X: 19, Y: 9})
	s.Tick()
	snap = s.Snapshot()
	if snap.Length() != 4 {
		t.Errorf("Length() after the following move = %d, expected 4", snap.Length())
	}
	if snap.GrowPending {
		t.Error("growth flag should be consumed")
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name string
		body []core.Point
		dir  snake.Direction
	}{
		{"top", snake.DefaultBody(), snake.DirUp},
		{"left", []core.Point{{X: 0, Y: 5}, {X: 1, Y: 5}}, snake.DirLeft},
		{"right", []core.Point{{X: 19, Y: 5}, {X: 18, Y: 5}}, snake.DirRight},
		{"bottom", []core.Point{{X: 4, Y: 9}, {X: 4, Y: 8}}, snake.DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newScenario(t, Classic.Board, tc.body, tc.dir, core.Point{X: 10, Y: 5})
			ev := s.Tick()

			if !ev.Ended {
				t.Error("expected the session to end")
			}
			if s.Status() != StatusGameOver || s.Reason() != ReasonWall {
				t.Errorf("Status/Reason = %v/%v, expected game_over/wall-collision", s.Status(), s.Reason())
			}

			// Terminal sessions ignore further ticks.
			before := s.Snapshot()
			s.Tick()
			if !s.Snapshot().Equal(before) {
				t.Error("Tick on a finished session should be a no-op")
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	tests := []struct {
		name     string
		body     []core.Point
		dir      snake.Direction
		turn     snake.Direction
		expected Status
	}{
		{
			name:     "into body",
			body:     []core.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6}, {X: 4, Y: 5}},
			dir:      snake.DirLeft,
			turn:     snake.DirDown,
			expected: StatusGameOver,
		},
		{
			// The tail leaves (5,6) on the same move.
			name:     "into vacated tail",
			body:     []core.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}},
			dir:      snake.DirLeft,
			turn:     snake.DirDown,
			expected: StatusPlaying,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newScenario(t, Classic.Board, tc.body, tc.dir, core.Point{X: 0, Y: 9})
			s.RequestDirection(tc.turn)
			s.Tick()

			if s.Status() != tc.expected {
				t.Errorf("Status() = %v, expected %v", s.Status(), tc.expected)
			}
			if tc.expected == StatusGameOver && s.Reason() != ReasonSelf {
				t.Errorf("Reason() = %v, expected self-collision", s.Reason())
			}
		})
	}
}

func TestBoardFullWins(t *testing.T) {
	board := core.Bounds{W: 2, H: 2}
	body := []core.Point{{X: 1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}}
	s := newScenario(t, board, body, snake.DirDown, core.Point{X: 1, Y: 1})
	s.snake.Grow()

	ev := s.Tick()
	if !ev.Ate || !ev.Ended {
		t.Errorf("event = %+v, expected ate and ended", ev)
	}
	if s.Status() != StatusWon || s.Reason() != ReasonBoardFull {
		t.Errorf("Status/Reason = %v/%v, expected won/board-full", s.Status(), s.Reason())
	}
	if s.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", s.Score())
	}
}

func TestPendingDirectionLastValidWins(t *testing.T) {
	tests := []struct {
		name     string
		requests []snake.Direction
		expected snake.Direction
		pending  bool
	}{
		{"single turn", []snake.Direction{snake.DirUp}, snake.DirUp, true},
		{"later valid overwrites", []snake.Direction{snake.DirUp, snake.DirDown}, snake.DirDown, true},
		{"reversal dropped", []snake.Direction{snake.DirUp, snake.DirLeft}, snake.DirUp, true},
		{"same heading dropped", []snake.Direction{snake.DirDown, snake.DirRight}, snake.DirDown, true},
		{"only invalid", []snake.Direction{snake.DirLeft, snake.DirRight}, snake.DirRight, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newScenario(t, Classic.Board, []core.Point{{X: 5, Y: 5}, {X: 4, Y: 5}}, snake.DirRight, core.Point{X: 0, Y: 0})
			for _, d := range tc.requests {
				s.RequestDirection(d)
			}
			if _, ok := s.PendingDirection(); ok != tc.pending {
				t.Errorf("pending = %v, expected %v", ok, tc.pending)
			}

			s.Tick()
			if got := s.Snapshot().Direction; got != tc.expected {
				t.Errorf("Direction = %v, expected %v", got, tc.expected)
			}
			if _, ok := s.PendingDirection(); ok {
				t.Error("pending slot should be cleared by the tick")
			}
		})
	}
}

func TestReversalRejectedEndToEnd(t *testing.T) {
	s := newScenario(t, Classic.Board, snake.DefaultBody(), snake.DirRight, core.Point{X: 10, Y: 5})

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	s.Step(in)

	snap := s.Snapshot()
	if snap.Direction != snake.DirRight || snap.Head() != (core.Point{X: 3, Y: 0}) {
		t.Errorf("Direction/Head = %v/%v, expected right/(3,0)", snap.Direction, snap.Head())
	}
}

func TestStepAppliesFrameDirectionsInOrder(t *testing.T) {
	s := newScenario(t, Classic.Board, []core.Point{{X: 5, Y: 5}, {X: 4, Y: 5}}, snake.DirRight, core.Point{X: 0, Y: 0})

	in := core.NewInputFrame()
	in.Set(core.ActionDown)
	in.Set(core.ActionLeft) // reverse of the current heading, dropped
	s.Step(in)

	if got := s.Snapshot().Head(); got != (core.Point{X: 5, Y: 6}) {
		t.Errorf("Head() = %v, expected (5,6)", got)
	}
}

func TestTurnsCheckedAgainstCurrentHeading(t *testing.T) {
	// Heading right, down then right within one tick keeps down: the second
	// request matches the current heading and is dropped.
	s := newScenario(t, Classic.Board, []core.Point{{X: 2, Y: 0}, {X: 1, Y: 0}}, snake.DirRight, core.Point{X: 0, Y: 9})

	in := core.NewInputFrame()
	in.Set(core.ActionDown)
	in.Set(core.ActionRight)
	s.Step(in)

	snap := s.Snapshot()
	if snap.Direction != snake.DirDown || snap.Head() != (core.Point{X: 2, Y: 1}) {
		t.Errorf("Direction/Head = %v/%v, expected down/(2,1)", snap.Direction, snap.Head())
	}
}

func TestQuit(t *testing.T) {
	s := newScenario(t, Classic.Board, snake.DefaultBody(), snake.DirRight, core.Point{X: 3, Y: 0})
	s.Tick()

	in := core.NewInputFrame()
	in.Set(core.ActionQuit)
	res := s.Step(in)

	if !res.State.GameOver || s.Reason() != ReasonQuit {
		t.Errorf("GameOver/Reason = %v/%v, expected true/quit", res.State.GameOver, s.Reason())
	}
	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.State.Score)
	}
}

func TestPauseToggle(t *testing.T) {
	s := newScenario(t, Classic.Board, snake.DefaultBody(), snake.DirRight, core.Point{X: 10, Y: 5})

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	res := s.Step(pause)
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	head := s.Snapshot().Head()
	s.Step(core.NewInputFrame())
	if s.Snapshot().Head() != head {
		t.Error("paused session should not move")
	}

	res = s.Step(pause)
	if res.State.Paused {
		t.Error("second pause should resume")
	}
	if s.Snapshot().Head() == head {
		t.Error("resumed session should move on the same step")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	s := newScenario(t, Classic.Board, snake.DefaultBody(), snake.DirUp, core.Point{X: 10, Y: 5})
	s.Tick()
	if !s.State().GameOver {
		t.Fatal("expected game over")
	}
	oldID := s.SessionID()

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	res := s.Step(restart)

	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("state after restart = %+v", res.State)
	}
	if s.SessionID() == oldID {
		t.Error("restart should start a new session ID")
	}
	if s.Snapshot().Length() != 3 {
		t.Errorf("Length() = %d, expected 3", s.Snapshot().Length())
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	s := newScenario(t, Classic.Board, snake.DefaultBody(), snake.DirRight, core.Point{X: 3, Y: 0})
	s.Tick()

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	s.Step(restart)

	if s.Snapshot().Tick != 2 {
		t.Errorf("Tick = %d, restart should be ignored while playing", s.Snapshot().Tick)
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig(12345)
	g1, g2 := NewSession(Large), NewSession(Large)
	g1.Reset(cfg)
	g2.Reset(cfg)

	turns := map[int]core.Action{5: core.ActionDown, 12: core.ActionRight, 18: core.ActionUp, 20: core.ActionRight}
	in := core.NewInputFrame()
	for i := 0; i < 40; i++ {
		in.Clear()
		if a, ok := turns[i]; ok {
			in.Set(a)
		}
		g1.Step(in)
		g2.Step(in)

		if !g1.Snapshot().Equal(g2.Snapshot()) {
			t.Fatalf("tick %d: snapshots diverged\n%+v\n%+v", i, g1.Snapshot(), g2.Snapshot())
		}
	}
}

func TestScoreMonotonicRandomPlay(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	actions := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

	for game := 0; game < 20; game++ {
		s := NewSession(Tiny)
		s.Reset(testConfig(int64(game)))

		last := 0
		in := core.NewInputFrame()
		for i := 0; i < 200 && !s.Status().Terminal(); i++ {
			in.Clear()
			in.Set(actions[rng.Intn(len(actions))])
			res := s.Step(in)
			if res.State.Score < last {
				t.Fatalf("score decreased from %d to %d", last, res.State.Score)
			}
			last = res.State.Score

			snap := s.Snapshot()
			if snap.Status == StatusPlaying && !snap.Board.Contains(snap.Head()) {
				t.Fatalf("playing with head off the board at %v", snap.Head())
			}
		}
	}
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range Variants() {
		if !registry.Exists(v.ID) {
			t.Errorf("variant %q not registered", v.ID)
			continue
		}
		g, err := registry.Create(v.ID)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", v.ID, err)
		}
		if g.Title() != v.Title {
			t.Errorf("Title() = %q, expected %q", g.Title(), v.Title)
		}
	}
}

func TestLookupVariant(t *testing.T) {
	v, ok := LookupVariant("tiny")
	if !ok || v.Board != (core.Bounds{W: 6, H: 4}) {
		t.Errorf("LookupVariant(tiny) = %+v, %v", v, ok)
	}
	if _, ok := LookupVariant("huge"); ok {
		t.Error("unknown variant should not be found")
	}
}
