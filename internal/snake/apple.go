package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBoardFull is returned by Respawn when every cell is occupied.
var ErrBoardFull = errors.New("snake: no free cell for the apple")

// DefaultAppleAttempts is the random-probe budget used by NewApple callers
// that have no configured value.
const DefaultAppleAttempts = 64

// Apple holds the single food position on the board.
type Apple struct {
	position    core.Point
	maxAttempts int
}

// NewApple creates an unplaced apple. maxAttempts bounds the uniform random
// probes made by Respawn before it samples the free cells directly; zero or
// less skips probing.
func NewApple(maxAttempts int) *Apple {
	return &Apple{
		position:    core.Unplaced,
		maxAttempts: maxAttempts,
	}
}

// Position returns the apple position, or core.Unplaced before the first spawn.
func (a *Apple) Position() core.Point {
	return a.position
}

// Placed reports whether the apple has been spawned at least once.
func (a *Apple) Placed() bool {
	return a.position != core.Unplaced
}

// Respawn moves the apple to a uniformly random cell of bounds that is not in
// occupied. It returns ErrBoardFull, leaving the position unchanged, when no
// such cell exists.
func (a *Apple) Respawn(rng *rand.Rand, bounds core.Bounds, occupied []core.Point) error {
	if bounds.Cells() == 0 {
		return ErrBoardFull
	}

	taken := make(map[core.Point]struct{}, len(occupied))
	for _, p := range occupied {
		if bounds.Contains(p) {
			taken[p] = struct{}{}
		}
	}
	if len(taken) >= bounds.Cells() {
		return ErrBoardFull
	}

	for i := 0; i < a.maxAttempts; i++ {
		p := core.Point{X: rng.Intn(bounds.W), Y: rng.Intn(bounds.H)}
		if _, ok := taken[p]; !ok {
			a.position = p
			return nil
		}
	}

	// Crowded board: pick directly among the free cells.
	free := make([]core.Point, 0, bounds.Cells()-len(taken))
	for y := 0; y < bounds.H; y++ {
		for x := 0; x < bounds.W; x++ {
			p := core.Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	a.position = free[rng.Intn(len(free))]
	return nil
}

// PlaceAt puts the apple at p without any checks. Used to set up fixed
// scenarios.
func (a *Apple) PlaceAt(p core.Point) {
	a.position = p
}
