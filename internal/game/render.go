package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Board glyphs.
const (
	glyphHead   = 'H'
	glyphBody   = 'S'
	glyphApple  = 'A'
	glyphEmpty  = '.'
	glyphCorner = '+'
	glyphHoriz  = '-'
	glyphVert   = '|'
)

const (
	hudHeight = 2
	endFooter = "R: restart  Q: quit"
)

// cellAt resolves what occupies p. The head wins over the body, the body
// over the apple.
func cellAt(snap Snapshot, p core.Point) core.Cell {
	for i, seg := range snap.Segments {
		if seg != p {
			continue
		}
		if i == 0 {
			return core.Cell{Rune: glyphHead, Color: core.ColorBrightGreen}
		}
		return core.Cell{Rune: glyphBody, Color: core.ColorGreen}
	}
	if snap.Apple == p {
		return core.Cell{Rune: glyphApple, Color: core.ColorBrightRed}
	}
	return core.Cell{Rune: glyphEmpty, Color: core.ColorGray}
}

// BoardString renders the framed board followed by the score line as plain
// text, the layout used for screenshots.
func BoardString(snap Snapshot) string {
	w, h := snap.Board.W, snap.Board.H
	border := string(glyphCorner) + strings.Repeat(string(glyphHoriz), w) + string(glyphCorner)

	var b strings.Builder
	b.WriteString(border)
	b.WriteByte('\n')
	for y := 0; y < h; y++ {
		b.WriteRune(glyphVert)
		for x := 0; x < w; x++ {
			b.WriteRune(cellAt(snap, core.Point{X: x, Y: y}).Rune)
		}
		b.WriteRune(glyphVert)
		b.WriteByte('\n')
	}
	b.WriteString(border)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Score: %d", snap.Score)
	return b.String()
}

// Render draws the session into dst.
func (s *Session) Render(dst *core.Screen) {
	RenderSnapshot(dst, s.Title(), s.Snapshot())
}

// RenderSnapshot draws a HUD, the framed board centered below it, and an
// overlay for paused or finished games.
func RenderSnapshot(dst *core.Screen, title string, snap Snapshot) {
	dst.Clear()
	renderHUD(dst, title, snap)

	frameW, frameH := snap.Board.W+2, snap.Board.H+2
	if dst.Width() < frameW || dst.Height() < frameH+hudHeight+1 {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", frameW, frameH+hudHeight+1), "Resize to continue")
		return
	}

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-1)
	frame := area.Centered(frameW, frameH)
	renderBoard(dst, frame, snap)
	dst.DrawText(frame.X, frame.Bottom(), fmt.Sprintf("Score: %d", snap.Score))

	switch {
	case snap.Status == StatusWon:
		renderOverlay(dst, "BOARD FULL - YOU WIN!", fmt.Sprintf("Final Score: %d", snap.Score), endFooter)
	case snap.Status == StatusGameOver:
		renderOverlay(dst, "GAME OVER!", fmt.Sprintf("Final Score: %d", snap.Score), endFooter)
	case snap.Paused:
		renderOverlay(dst, "Paused", "Press P to continue", "Q: quit")
	}
}

func renderHUD(dst *core.Screen, title string, snap Snapshot) {
	hud := fmt.Sprintf(" %s — Score: %d  Length: %d", title, snap.Score, snap.Length())
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

func renderBoard(dst *core.Screen, frame core.Rect, snap Snapshot) {
	right, bottom := frame.Right()-1, frame.Bottom()-1

	for x := frame.X; x <= right; x++ {
		r := glyphHoriz
		if x == frame.X || x == right {
			r = glyphCorner
		}
		dst.SetColored(x, frame.Y, r, core.ColorWhite)
		dst.SetColored(x, bottom, r, core.ColorWhite)
	}
	for y := frame.Y + 1; y < bottom; y++ {
		dst.SetColored(frame.X, y, glyphVert, core.ColorWhite)
		dst.SetColored(right, y, glyphVert, core.ColorWhite)
	}

	for y := 0; y < snap.Board.H; y++ {
		for x := 0; x < snap.Board.W; x++ {
			dst.SetCell(frame.X+1+x, frame.Y+1+y, cellAt(snap, core.Point{X: x, Y: y}))
		}
	}
}

// renderOverlay draws a centered box with two lines of text and a footer.
func renderOverlay(dst *core.Screen, line1, line2, footer string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)), len(footer))
	box := dst.Bounds().Centered(maxLen+4, 7)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			isEdgeY := y == box.Y || y == box.Bottom()-1
			isEdgeX := x == box.X || x == box.Right()-1
			switch {
			case isEdgeY && isEdgeX:
				dst.SetColored(x, y, '+', core.ColorYellow)
			case isEdgeY:
				dst.SetColored(x, y, '=', core.ColorYellow)
			case isEdgeX:
				dst.SetColored(x, y, '|', core.ColorYellow)
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+5, footer, core.ColorGray)
}
