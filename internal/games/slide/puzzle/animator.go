package puzzle

import (
	"math"
	"sort"
)

// Animation defaults, in pixels.
const (
	DefaultCellSize = 100.0
	DefaultSpeed    = 10.0
)

// Vec is a rendered position in board pixels.
type Vec struct {
	X, Y float64
}

// Tile is one numbered piece. Cell is its logical grid position; Pos lags
// behind Target while the tile slides.
type Tile struct {
	ID     int
	Cell   Coord
	Pos    Vec
	Target Vec
	Moving bool
}

// NewTile creates a tile resting on cell.
func NewTile(id int, cell Coord, cellSize float64) *Tile {
	p := cellOrigin(cell, cellSize)
	return &Tile{ID: id, Cell: cell, Pos: p, Target: p}
}

func cellOrigin(c Coord, cellSize float64) Vec {
	return Vec{X: float64(c.X) * cellSize, Y: float64(c.Y) * cellSize}
}

// MoveTo changes the tile's logical cell and starts sliding toward it.
// The rendered position is left where it was.
func (t *Tile) MoveTo(cell Coord, cellSize float64) {
	t.Cell = cell
	t.Target = cellOrigin(cell, cellSize)
	t.Moving = true
}

// Step advances a moving tile by speed pixels on each axis independently.
// An axis closer than speed to its target snaps onto it. Moving clears on
// the tick both axes arrive.
func (t *Tile) Step(speed float64) {
	if !t.Moving {
		return
	}
	t.Pos.X = approach(t.Pos.X, t.Target.X, speed)
	t.Pos.Y = approach(t.Pos.Y, t.Target.Y, speed)
	if t.Pos == t.Target {
		t.Moving = false
	}
}

func approach(cur, target, speed float64) float64 {
	d := target - cur
	if math.Abs(d) < speed || speed <= 0 {
		return target
	}
	if d > 0 {
		return cur + speed
	}
	return cur - speed
}

// Animator owns the tiles of one session. The empty cell has no tile.
type Animator struct {
	tiles    map[int]*Tile
	cellSize float64
	speed    float64
}

// NewAnimator creates a resting tile for every non-empty cell of b.
func NewAnimator(b *Board, cellSize, speed float64) *Animator {
	a := &Animator{
		tiles:    make(map[int]*Tile, b.Size()*b.Size()),
		cellSize: cellSize,
		speed:    speed,
	}
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			c := Coord{x, y}
			if id := b.At(c); id != Empty {
				a.tiles[id] = NewTile(id, c, cellSize)
			}
		}
	}
	return a
}

// CellSize returns the pixel size of one grid cell.
func (a *Animator) CellSize() float64 {
	return a.cellSize
}

// Tile returns the tile with the given identity.
func (a *Animator) Tile(id int) (*Tile, bool) {
	t, ok := a.tiles[id]
	return t, ok
}

// Relocate starts sliding tile id toward cell.
func (a *Animator) Relocate(id int, cell Coord) {
	if t, ok := a.tiles[id]; ok {
		t.MoveTo(cell, a.cellSize)
	}
}

// Step advances every tile by one tick and reports whether any is still moving.
func (a *Animator) Step() bool {
	busy := false
	for _, t := range a.tiles {
		t.Step(a.speed)
		if t.Moving {
			busy = true
		}
	}
	return busy
}

// Busy reports whether any tile is sliding.
func (a *Animator) Busy() bool {
	for _, t := range a.tiles {
		if t.Moving {
			return true
		}
	}
	return false
}

// Tiles returns the tiles ordered by identity.
func (a *Animator) Tiles() []*Tile {
	out := make([]*Tile, 0, len(a.tiles))
	for _, t := range a.tiles {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
