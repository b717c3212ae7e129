package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, expected := range pairs {
		if got := d.Opposite(); got != expected {
			t.Errorf("%v.Opposite() = %v, expected %v", d, got, expected)
		}
		if d.Vector().Add(d.Opposite().Vector()) != (core.Point{}) {
			t.Errorf("%v and its opposite should cancel out", d)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in       string
		expected Direction
		wantErr  bool
	}{
		{"UP", DirUp, false},
		{"down", DirDown, false},
		{" Left ", DirLeft, false},
		{"right", DirRight, false},
		{"north", 0, true},
	}

	for _, tc := range tests {
		got, err := ParseDirection(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.expected {
			t.Errorf("ParseDirection(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestDirectionFromAction(t *testing.T) {
	if d, ok := DirectionFromAction(core.ActionLeft); !ok || d != DirLeft {
		t.Errorf("DirectionFromAction(Left) = %v, %v", d, ok)
	}
	if _, ok := DirectionFromAction(core.ActionPause); ok {
		t.Error("Pause should not map to a direction")
	}
}
