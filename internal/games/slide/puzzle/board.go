package puzzle

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

const (
	// Empty is the identity of the vacant cell.
	Empty = 0

	// MinSize is the smallest grid accepted. A 2×2 grid only reaches 12 of
	// its 24 arrangements and short shuffles often land back on solved.
	MinSize = 2

	// DefaultShuffleFactor is the number of random moves per cell used to
	// scramble a board.
	DefaultShuffleFactor = 20
)

// ErrInvalidSize is returned when a grid smaller than MinSize is requested.
var ErrInvalidSize = errors.New("puzzle: grid size must be at least 2")

// Board is an N×N grid holding a permutation of 0..N²-1 where 0 marks the
// empty cell. cells is indexed [y][x]; empty always agrees with it.
type Board struct {
	size  int
	cells [][]int
	empty Coord
}

// NewSolvedBoard returns a board in solved order: identity k+1 at row-major
// cell k and the final cell empty.
func NewSolvedBoard(size int) (*Board, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	b := &Board{size: size}
	b.cells = make([][]int, size)
	for y := range b.cells {
		b.cells[y] = make([]int, size)
	}
	b.Reset()
	return b, nil
}

// NewBoard builds a solved board and scrambles it with
// DefaultShuffleFactor × size² random legal moves drawn from rng.
func NewBoard(size int, rng *rand.Rand) (*Board, error) {
	b, err := NewSolvedBoard(size)
	if err != nil {
		return nil, err
	}
	b.Shuffle(rng, ShuffleSteps(size, DefaultShuffleFactor))
	return b, nil
}

// BoardFromCells builds a board from rows of identities. The rows must form
// a square permutation of 0..N²-1.
func BoardFromCells(rows [][]int) (*Board, error) {
	size := len(rows)
	if size < MinSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	b := &Board{size: size, cells: make([][]int, size)}
	for y, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("puzzle: row %d has %d cells, want %d", y, len(row), size)
		}
		b.cells[y] = append([]int(nil), row...)
		for x, id := range row {
			if id == Empty {
				b.empty = Coord{x, y}
			}
		}
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// ShuffleSteps returns the number of random moves used to scramble a grid.
func ShuffleSteps(size, factor int) int {
	return factor * size * size
}

// Size returns N.
func (b *Board) Size() int {
	return b.size
}

// Empty returns the coordinates of the vacant cell.
func (b *Board) Empty() Coord {
	return b.empty
}

// At returns the identity at c, or -1 when c is outside the grid.
func (b *Board) At(c Coord) int {
	if !c.In(b.size) {
		return -1
	}
	return b.cells[c.Y][c.X]
}

// ExpectedAt returns the identity cell c holds when the grid is solved.
func ExpectedAt(c Coord, size int) int {
	if c.X == size-1 && c.Y == size-1 {
		return Empty
	}
	return c.Y*size + c.X + 1
}

// HomeOf returns the cell where identity id sits when the grid is solved.
func HomeOf(id, size int) Coord {
	if id == Empty {
		return Coord{size - 1, size - 1}
	}
	k := id - 1
	return Coord{X: k % size, Y: k / size}
}

// Reset puts the board back in solved order.
func (b *Board) Reset() {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			b.cells[y][x] = ExpectedAt(Coord{x, y}, b.size)
		}
	}
	b.empty = Coord{b.size - 1, b.size - 1}
}

// Neighbors returns the in-bounds orthogonal neighbours of c: two for a
// corner, three on an edge and four inside.
func Neighbors(c Coord, size int) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range []Direction{DirLeft, DirRight, DirUp, DirDown} {
		n := c.Add(d.Delta())
		if n.In(size) {
			out = append(out, n)
		}
	}
	return out
}

// RandomStep picks uniformly among the neighbours of empty and returns it.
// Moving that neighbour's tile makes it the new empty cell.
func RandomStep(rng *rand.Rand, empty Coord, size int) Coord {
	n := Neighbors(empty, size)
	return n[rng.Intn(len(n))]
}

// Shuffle resets the board to solved order and applies steps random legal
// moves, so the result is always reachable from the solved grid.
func (b *Board) Shuffle(rng *rand.Rand, steps int) {
	b.Reset()
	for i := 0; i < steps; i++ {
		b.Move(RandomStep(rng, b.empty, b.size))
	}
}

// CanMove reports whether the tile at target may slide into the empty cell.
func (b *Board) CanMove(target Coord) bool {
	return target.In(b.size) && target.Manhattan(b.empty) == 1
}

// Move slides the tile at target into the empty cell. It returns false and
// leaves the board untouched when target is out of bounds, not orthogonally
// adjacent to the empty cell, or the empty cell itself.
func (b *Board) Move(target Coord) bool {
	if !b.CanMove(target) {
		return false
	}
	e := b.empty
	b.cells[e.Y][e.X] = b.cells[target.Y][target.X]
	b.cells[target.Y][target.X] = Empty
	b.empty = target
	return true
}

// IsSolved reports whether every cell holds its solved identity. The scan
// stops at the first mismatch.
func (b *Board) IsSolved() bool {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if b.cells[y][x] != ExpectedAt(Coord{x, y}, b.size) {
				return false
			}
		}
	}
	return true
}

// Hint returns the first cell in row-major order whose identity differs from
// its solved identity. The final cell is expected to be empty, so the
// returned cell may hold Empty. ok is false on a solved board.
func (b *Board) Hint() (c Coord, ok bool) {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			c = Coord{x, y}
			if b.cells[y][x] != ExpectedAt(c, b.size) {
				return c, true
			}
		}
	}
	return Coord{}, false
}

// Find returns the cell holding identity id.
func (b *Board) Find(id int) (Coord, bool) {
	if id == Empty {
		return b.empty, true
	}
	for y, row := range b.cells {
		for x, v := range row {
			if v == id {
				return Coord{x, y}, true
			}
		}
	}
	return Coord{}, false
}

// Misplaced counts non-empty tiles that are not on their solved cell.
func (b *Board) Misplaced() int {
	n := 0
	for y, row := range b.cells {
		for x, v := range row {
			if v != Empty && v != ExpectedAt(Coord{x, y}, b.size) {
				n++
			}
		}
	}
	return n
}

// Cells returns a copy of the grid, indexed [y][x].
func (b *Board) Cells() [][]int {
	out := make([][]int, b.size)
	for y, row := range b.cells {
		out[y] = append([]int(nil), row...)
	}
	return out
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{size: b.size, cells: b.Cells(), empty: b.empty}
}

// Equal reports whether both boards hold the same arrangement.
func (b *Board) Equal(o *Board) bool {
	if o == nil || b.size != o.size || b.empty != o.empty {
		return false
	}
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x] != o.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Validate checks that the grid is a permutation of 0..N²-1 and that the
// cached empty cell agrees with it.
func (b *Board) Validate() error {
	n := b.size * b.size
	seen := make([]bool, n)
	for y, row := range b.cells {
		for x, v := range row {
			if v < 0 || v >= n {
				return fmt.Errorf("puzzle: identity %d at (%d,%d) out of range", v, x, y)
			}
			if seen[v] {
				return fmt.Errorf("puzzle: identity %d appears twice", v)
			}
			seen[v] = true
		}
	}
	if got := b.At(b.empty); got != Empty {
		return fmt.Errorf("puzzle: empty cell cached at (%d,%d) holds %d", b.empty.X, b.empty.Y, got)
	}
	return nil
}

// String renders the grid as rows of right-aligned identities with "."
// for the empty cell.
func (b *Board) String() string {
	width := len(fmt.Sprint(b.size*b.size - 1))
	var sb strings.Builder
	for y, row := range b.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if v == Empty {
				fmt.Fprintf(&sb, "%*s", width, ".")
			} else {
				fmt.Fprintf(&sb, "%*d", width, v)
			}
		}
	}
	return sb.String()
}
