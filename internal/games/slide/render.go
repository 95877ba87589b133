package slide

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/games/slide/puzzle"
)

var (
	colorBoard   = core.RGB(40, 40, 40)
	colorButton  = core.RGB(100, 100, 100)
	colorOverlay = core.RGB(0, 0, 0)
)

const controlsText = "Click/Arrows: Slide  H: Hint  R: Restart  P: Pause  Esc: Menu"

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.layout.TooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderHint(dst)
	g.renderButtons(dst)

	if g.layout.ControlY >= 0 {
		dst.DrawTextColor((g.screenW-len(controlsText))/2, g.layout.ControlY, controlsText, core.ColorGray, core.ColorDefault)
	}

	switch {
	case g.session.Solved():
		g.renderOverlay(dst, []overlayLine{
			{"PUZZLE SOLVED!", core.ColorBrightGreen},
			{fmt.Sprintf("Moves: %d  Time: %s", g.session.Moves(), core.FormatClock(g.session.Elapsed())), core.ColorBrightWhite},
			{"R: Play again  Esc: Menu", core.ColorGray},
		})
	case g.paused:
		g.renderOverlay(dst, []overlayLine{
			{"PAUSED", core.ColorBrightYellow},
			{"P: Resume", core.ColorGray},
		})
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title and the stats line.
func (g *Game) renderHUD(dst *core.Screen) {
	title := "S L I D I N G   P U Z Z L E"
	dst.DrawTextColor((g.screenW-len(title))/2, 0, title, core.ColorBrightWhite, core.ColorDefault)

	stats := fmt.Sprintf("Moves: %d   Time: %s   Difficulty: %dx%d   Image: %s",
		g.session.Moves(), core.FormatClock(g.session.Elapsed()), g.size, g.size, g.session.Theme().Title())
	x := (g.screenW - len(stats)) / 2
	if x < 0 {
		x = 0
	}
	dst.DrawText(x, 1, stats)
}

// renderBoard paints the board background and every tile at its animated
// position. Each screen cell of a tile samples the theme picture at the
// matching pixel of the tile's home cell.
func (g *Game) renderBoard(dst *core.Screen) {
	dst.FillRect(g.layout.Board, colorBoard)

	palette := puzzle.PaletteFor(g.session.Theme())
	cell := int(g.session.Options().CellSize)
	boardPx := cell * g.size

	for _, t := range g.session.Tiles() {
		r := g.layout.TileRect(t)
		for dy := 0; dy < r.H; dy++ {
			py := t.Home.Y*cell + (2*dy+1)*cell/(2*r.H)
			for dx := 0; dx < r.W; dx++ {
				px := t.Home.X*cell + (2*dx+1)*cell/(2*r.W)
				bg := toColor(palette.Sample(px, py, boardPx, g.size))
				dst.SetCell(r.X+dx, r.Y+dy, core.Cell{Rune: ' ', Bg: bg})
			}
		}

		if palette.Labeled {
			label := strconv.Itoa(t.ID)
			cx, cy := r.Center()
			bg := toColor(palette.TileColor(t.ID, g.size, boardPx))
			dst.DrawTextColor(cx-len(label)/2, cy, label, core.ColorBrightWhite, bg)
		}
	}
}

// renderHint frames the hinted identity. When the gap itself is out of
// place the empty cell is framed.
func (g *Game) renderHint(dst *core.Screen) {
	id, ok := g.session.HintedTile()
	if !ok {
		return
	}

	var r core.Rect
	if id == puzzle.Empty {
		c, _ := g.session.HintCell()
		r = g.layout.CellRect(c)
	} else {
		for _, t := range g.session.Tiles() {
			if t.Hinted {
				r = g.layout.TileRect(t)
				break
			}
		}
	}
	drawFrame(dst, core.NewRect(r.X-1, r.Y-1, r.W+2, r.H+2), core.ColorBrightYellow)
}

// drawFrame outlines r in fg, keeping the background of the cells it crosses.
func drawFrame(dst *core.Screen, r core.Rect, fg core.Color) {
	put := func(x, y int, ch rune) {
		c := dst.GetCell(x, y)
		c.Rune = ch
		c.Fg = fg
		dst.SetCell(x, y, c)
	}
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		put(x, r.Y, '━')
		put(x, bottom, '━')
	}
	for y := r.Y + 1; y < bottom; y++ {
		put(r.X, y, '┃')
		put(right, y, '┃')
	}
	put(r.X, r.Y, '┏')
	put(right, r.Y, '┓')
	put(r.X, bottom, '┗')
	put(right, bottom, '┛')
}

func (g *Game) renderButtons(dst *core.Screen) {
	for _, b := range g.layout.Buttons {
		dst.DrawTextColor(b.Rect.X, b.Rect.Y, b.Label, core.ColorBrightWhite, colorButton)
	}
}

type overlayLine struct {
	text string
	fg   core.Color
}

// renderOverlay draws a boxed message centered on the board.
func (g *Game) renderOverlay(dst *core.Screen, lines []overlayLine) {
	w := 0
	for _, l := range lines {
		w = max(w, len(l.text))
	}
	w += 4
	h := len(lines) + 2

	cx, cy := g.layout.Board.Center()
	box := core.NewRect(cx-w/2, cy-h/2, w, h)
	dst.FillRect(box, colorOverlay)
	drawFrame(dst, box, core.ColorWhite)

	for i, l := range lines {
		x := box.X + (w-len(l.text))/2
		dst.DrawTextColor(x, box.Y+1+i, l.text, l.fg, colorOverlay)
	}
}

func toColor(c puzzle.RGB) core.Color {
	return core.RGB(c.R, c.G, c.B)
}
