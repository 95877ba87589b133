// Package puzzle implements the sliding-tile puzzle: the permutation grid
// with its move relation, the random-walk shuffle, solved detection, hint
// selection, tile animation and the session that ties them together.
package puzzle

// Coord addresses a grid cell. X is the column and Y the row, both 0-based.
type Coord struct {
	X, Y int
}

// Add returns c translated by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Sub returns c translated by -d.
func (c Coord) Sub(d Coord) Coord {
	return Coord{X: c.X - d.X, Y: c.Y - d.Y}
}

// Manhattan returns the taxicab distance between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// In reports whether c lies inside a size×size grid.
func (c Coord) In(size int) bool {
	return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size
}

// Direction is the way a tile slides.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit offset of the direction.
func (d Direction) Delta() Coord {
	switch d {
	case DirUp:
		return Coord{0, -1}
	case DirDown:
		return Coord{0, 1}
	case DirLeft:
		return Coord{-1, 0}
	case DirRight:
		return Coord{1, 0}
	}
	return Coord{}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
