package slide

import (
	"math"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/games/slide/puzzle"
)

// Layout constants, in terminal cells.
const (
	hudRows     = 3 // title, stats, blank
	footerRows  = 2 // blank, buttons
	maxTileH    = 4
	buttonGap   = 2
	minScreenW  = 32
	tileAspectX = 2 // terminal cells are roughly twice as tall as wide
)

// ButtonID identifies an on-screen button.
type ButtonID int

const (
	ButtonRestart ButtonID = iota
	ButtonMenu
	ButtonHint
)

var buttonLabels = []struct {
	id    ButtonID
	label string
}{
	{ButtonRestart, "[ Restart ]"},
	{ButtonMenu, "[ Menu ]"},
	{ButtonHint, "[ Hint ]"},
}

// Button is a clickable label.
type Button struct {
	ID    ButtonID
	Label string
	Rect  core.Rect
}

// Layout maps the puzzle onto a terminal screen. Tiles are separated by a
// one-cell gap that doubles as their border.
type Layout struct {
	Size     int
	Board    core.Rect // includes the outer gap
	TileW    int
	TileH    int
	PitchX   int
	PitchY   int
	Buttons  []Button
	ControlY int // row of the controls line, -1 when it does not fit
	TooSmall bool
}

// ComputeLayout fits an N×N board between the HUD and the button row.
func ComputeLayout(screenW, screenH, size int) Layout {
	l := Layout{Size: size, ControlY: -1}
	if size <= 0 {
		l.TooSmall = true
		return l
	}

	availH := screenH - hudRows - footerRows
	byHeight := (availH-1)/size - 1
	byWidth := ((screenW-1)/size - 3) / tileAspectX
	tileH := min(byHeight, byWidth, maxTileH)
	if tileH < 1 || screenW < minScreenW {
		l.TooSmall = true
		return l
	}

	l.TileH = tileH
	l.TileW = tileAspectX*tileH + 2
	l.PitchX = l.TileW + 1
	l.PitchY = l.TileH + 1

	boardW := size*l.PitchX + 1
	boardH := size*l.PitchY + 1
	l.Board = core.NewRect((screenW-boardW)/2, hudRows, boardW, boardH)

	total := 0
	for _, b := range buttonLabels {
		total += len(b.label)
	}
	total += buttonGap * (len(buttonLabels) - 1)
	x := (screenW - total) / 2
	y := l.Board.Bottom() + 1
	for _, b := range buttonLabels {
		l.Buttons = append(l.Buttons, Button{
			ID:    b.id,
			Label: b.label,
			Rect:  core.NewRect(x, y, len(b.label), 1),
		})
		x += len(b.label) + buttonGap
	}

	if y+2 < screenH {
		l.ControlY = y + 2
	}
	return l
}

// origin is the top-left cell of grid cell (0, 0).
func (l Layout) origin() (int, int) {
	return l.Board.X + 1, l.Board.Y + 1
}

// CellRect returns the screen rectangle of grid cell c.
func (l Layout) CellRect(c puzzle.Coord) core.Rect {
	ox, oy := l.origin()
	return core.NewRect(ox+c.X*l.PitchX, oy+c.Y*l.PitchY, l.TileW, l.TileH)
}

// TileRect returns the screen rectangle of a tile at its animated position.
func (l Layout) TileRect(t puzzle.TileView) core.Rect {
	ox, oy := l.origin()
	x := int(math.Round(t.X / t.Size * float64(l.PitchX)))
	y := int(math.Round(t.Y / t.Size * float64(l.PitchY)))
	return core.NewRect(ox+x, oy+y, l.TileW, l.TileH)
}

// CellAt converts a screen position to a grid cell. A click on the gap to
// the right of or below a tile counts for that tile.
func (l Layout) CellAt(x, y int) (puzzle.Coord, bool) {
	if l.TooSmall {
		return puzzle.Coord{}, false
	}
	ox, oy := l.origin()
	c := puzzle.Coord{
		X: core.FloorDiv(x-ox, l.PitchX),
		Y: core.FloorDiv(y-oy, l.PitchY),
	}
	return c, c.In(l.Size)
}

// ButtonAt returns the button under a screen position.
func (l Layout) ButtonAt(x, y int) (ButtonID, bool) {
	for _, b := range l.Buttons {
		if b.Rect.Contains(x, y) {
			return b.ID, true
		}
	}
	return 0, false
}
