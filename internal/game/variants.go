package game

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Variant is a named board preset.
type Variant struct {
	ID    string
	Title string
	Board core.Bounds
}

// Built-in variants. Classic matches the traditional 20x10 board.
var (
	Classic = Variant{ID: "classic", Title: "Snake", Board: core.Bounds{W: 20, H: 10}}
	Large   = Variant{ID: "large", Title: "Snake (Large)", Board: core.Bounds{W: 40, H: 20}}
	Tiny    = Variant{ID: "tiny", Title: "Snake (Tiny)", Board: core.Bounds{W: 6, H: 4}}
)

// Variants returns the built-in presets in menu order.
func Variants() []Variant {
	return []Variant{Classic, Large, Tiny}
}

// LookupVariant returns the built-in variant with the given ID.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range Variants() {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

func init() {
	for _, v := range Variants() {
		v := v
		registry.Register(v.ID, func() registry.Game {
			return NewSession(v)
		})
	}
}
