package desktop

import (
	"image"

	"github.com/vovakirdan/tui-slide/internal/games/slide/puzzle"
)

const (
	maxBoardPx   = 500
	boardMargin  = 100 // subtracted from the shorter window side
	boardOffsetY = 30  // board sits below centre to leave room for the HUD
)

// Layout places an N×N board inside the window. Positions are in window
// pixels; tiles are square with integer sides.
type Layout struct {
	Size    int
	BoardPx int
	TilePx  int
	BoardX  int
	BoardY  int
	WindowW int
	WindowH int
}

// ComputeLayout centres the board horizontally and slightly below centre
// vertically. The board side is min(500, min(w, h) - 100).
func ComputeLayout(w, h, size int) Layout {
	board := min(maxBoardPx, min(w, h)-boardMargin)
	if board < size {
		board = size
	}
	return Layout{
		Size:    size,
		BoardPx: board,
		TilePx:  board / size,
		BoardX:  (w - board) / 2,
		BoardY:  (h-board)/2 + boardOffsetY,
		WindowW: w,
		WindowH: h,
	}
}

// Board returns the board rectangle.
func (l Layout) Board() image.Rectangle {
	return image.Rect(l.BoardX, l.BoardY, l.BoardX+l.BoardPx, l.BoardY+l.BoardPx)
}

// CellAt maps a window pixel to the grid cell under it. Pixels in the
// sliver the integer tile size leaves at the right and bottom edges map
// outside the grid and report false.
func (l Layout) CellAt(px, py int) (puzzle.Coord, bool) {
	if !(image.Point{px, py}).In(l.Board()) || l.TilePx <= 0 {
		return puzzle.Coord{}, false
	}
	c := puzzle.Coord{X: (px - l.BoardX) / l.TilePx, Y: (py - l.BoardY) / l.TilePx}
	return c, c.In(l.Size)
}

// CellRect returns the window rectangle of grid cell c.
func (l Layout) CellRect(c puzzle.Coord) image.Rectangle {
	x := l.BoardX + c.X*l.TilePx
	y := l.BoardY + c.Y*l.TilePx
	return image.Rect(x, y, x+l.TilePx, y+l.TilePx)
}

// TileRect returns where a tile is drawn this frame. The session is created
// with the tile size as its cell size, so animator positions are already in
// board pixels.
func (l Layout) TileRect(t puzzle.TileView) image.Rectangle {
	x := l.BoardX + int(t.X)
	y := l.BoardY + int(t.Y)
	return image.Rect(x, y, x+l.TilePx, y+l.TilePx)
}
