package snake

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestNewAppleUnplaced(t *testing.T) {
	a := NewApple(DefaultAppleAttempts)
	if a.Placed() {
		t.Error("new apple should be unplaced")
	}
	if a.Position() != core.Unplaced {
		t.Errorf("Position() = %v, expected %v", a.Position(), core.Unplaced)
	}
}

func TestRespawnAvoidsSnake(t *testing.T) {
	bounds := core.Bounds{W: 20, H: 10}
	body := DefaultBody()
	rng := rand.New(rand.NewSource(7))

	for _, attempts := range []int{DefaultAppleAttempts, 0} {
		a := NewApple(attempts)
		for i := 0; i < 500; i++ {
			if err := a.Respawn(rng, bounds, body); err != nil {
				t.Fatalf("Respawn() failed: %v", err)
			}
			p := a.Position()
			if !bounds.Contains(p) {
				t.Fatalf("apple spawned out of bounds at %v", p)
			}
			for _, seg := range body {
				if seg == p {
					t.Fatalf("apple spawned on snake at %v", p)
				}
			}
		}
	}
}

func TestRespawnSingleFreeCell(t *testing.T) {
	bounds := core.Bounds{W: 3, H: 2}
	occupied := []core.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 2, Y: 1}, {X: 1, Y: 1},
	}
	rng := rand.New(rand.NewSource(1))

	// A single probe will usually miss; the free-cell fallback must still land.
	a := NewApple(1)
	for i := 0; i < 50; i++ {
		if err := a.Respawn(rng, bounds, occupied); err != nil {
			t.Fatalf("Respawn() failed: %v", err)
		}
		if a.Position() != (core.Point{X: 0, Y: 1}) {
			t.Fatalf("Position() = %v, expected (0,1)", a.Position())
		}
	}
}

func TestRespawnBoardFull(t *testing.T) {
	bounds := core.Bounds{W: 2, H: 2}
	occupied := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	rng := rand.New(rand.NewSource(1))

	a := NewApple(DefaultAppleAttempts)
	err := a.Respawn(rng, bounds, occupied)
	if !errors.Is(err, ErrBoardFull) {
		t.Fatalf("Respawn() error = %v, expected ErrBoardFull", err)
	}
	if a.Placed() {
		t.Error("position should be unchanged when the board is full")
	}
}

func TestRespawnIgnoresOutOfBoundsOccupants(t *testing.T) {
	bounds := core.Bounds{W: 1, H: 1}
	// The head has left the board; the only cell is still free.
	occupied := []core.Point{{X: 1, Y: 0}, {X: -1, Y: 0}}
	rng := rand.New(rand.NewSource(3))

	a := NewApple(DefaultAppleAttempts)
	if err := a.Respawn(rng, bounds, occupied); err != nil {
		t.Fatalf("Respawn() failed: %v", err)
	}
	if a.Position() != (core.Point{X: 0, Y: 0}) {
		t.Errorf("Position() = %v, expected (0,0)", a.Position())
	}
}

func TestRespawnDeterministic(t *testing.T) {
	bounds := core.Bounds{W: 20, H: 10}
	a1, a2 := NewApple(DefaultAppleAttempts), NewApple(DefaultAppleAttempts)
	r1, r2 := rand.New(rand.NewSource(42)), rand.New(rand.NewSource(42))

	for i := 0; i < 20; i++ {
		_ = a1.Respawn(r1, bounds, DefaultBody())
		_ = a2.Respawn(r2, bounds, DefaultBody())
		if a1.Position() != a2.Position() {
			t.Fatalf("iteration %d: %v vs %v", i, a1.Position(), a2.Position())
		}
	}
}
