package puzzle

import (
	"errors"
	"math/rand"
	"testing"
)

func mustBoard(t *testing.T, rows [][]int) *Board {
	t.Helper()
	b, err := BoardFromCells(rows)
	if err != nil {
		t.Fatalf("BoardFromCells(%v) failed: %v", rows, err)
	}
	return b
}

func TestNewSolvedBoard(t *testing.T) {
	b, err := NewSolvedBoard(3)
	if err != nil {
		t.Fatalf("NewSolvedBoard(3) failed: %v", err)
	}

	want := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 0}}
	got := b.Cells()
	for y := range want {
		for x := range want[y] {
			if got[y][x] != want[y][x] {
				t.Errorf("cell (%d,%d) = %d, want %d", x, y, got[y][x], want[y][x])
			}
		}
	}
	if b.Empty() != (Coord{2, 2}) {
		t.Errorf("Empty() = %v, want {2 2}", b.Empty())
	}
	if !b.IsSolved() {
		t.Error("solved board reports unsolved")
	}
}

func TestNewBoardRejectsSmallSizes(t *testing.T) {
	for _, size := range []int{-1, 0, 1} {
		if _, err := NewSolvedBoard(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewSolvedBoard(%d) error = %v, want ErrInvalidSize", size, err)
		}
		if _, err := NewBoard(size, rand.New(rand.NewSource(1))); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewBoard(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestNewBoardIsPermutation(t *testing.T) {
	for _, size := range []int{3, 4, 5} {
		b, err := NewBoard(size, rand.New(rand.NewSource(42)))
		if err != nil {
			t.Fatalf("NewBoard(%d) failed: %v", size, err)
		}

		seen := make(map[int]int)
		for _, row := range b.Cells() {
			for _, v := range row {
				seen[v]++
			}
		}
		for id := 0; id < size*size; id++ {
			if seen[id] != 1 {
				t.Errorf("size %d: identity %d appears %d times", size, id, seen[id])
			}
		}
		if err := b.Validate(); err != nil {
			t.Errorf("size %d: Validate() = %v", size, err)
		}
	}
}

func TestNewBoardDeterministic(t *testing.T) {
	a, _ := NewBoard(4, rand.New(rand.NewSource(7)))
	b, _ := NewBoard(4, rand.New(rand.NewSource(7)))
	if !a.Equal(b) {
		t.Errorf("same seed produced different boards:\n%s\n\n%s", a, b)
	}
}

func TestIsSolved(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want bool
	}{
		{"solved", [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 0}}, true},
		{"last two swapped", [][]int{{1, 2, 3}, {4, 5, 6}, {7, 0, 8}}, false},
		{"first row wrong", [][]int{{2, 1, 3}, {4, 5, 6}, {7, 8, 0}}, false},
		{"gap in the middle", [][]int{{1, 2, 3}, {4, 0, 6}, {7, 8, 5}}, false},
		{"2x2 solved", [][]int{{1, 2}, {3, 0}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.rows)
			if got := b.IsSolved(); got != tt.want {
				t.Errorf("IsSolved() = %v, want %v\n%s", got, tt.want, b)
			}
		})
	}
}

func TestMoveLegal(t *testing.T) {
	b := mustBoard(t, [][]int{{1, 2, 3}, {4, 0, 6}, {7, 8, 5}})

	if !b.Move(Coord{2, 1}) {
		t.Fatal("Move({2 1}) = false, want true")
	}
	want := [][]int{{1, 2, 3}, {4, 6, 0}, {7, 8, 5}}
	if !b.Equal(mustBoard(t, want)) {
		t.Errorf("after move got\n%s", b)
	}
	if b.Empty() != (Coord{2, 1}) {
		t.Errorf("Empty() = %v, want {2 1}", b.Empty())
	}
}

func TestMoveIllegal(t *testing.T) {
	rows := [][]int{{1, 2, 3}, {4, 0, 6}, {7, 8, 5}}

	tests := []struct {
		name   string
		target Coord
	}{
		{"empty cell itself", Coord{1, 1}},
		{"diagonal", Coord{0, 0}},
		{"two cells away", Coord{1, 1}.Add(Coord{0, 2})},
		{"out of bounds left", Coord{-1, 1}},
		{"out of bounds below", Coord{1, 3}},
		{"far away", Coord{10, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, rows)
			before := b.Clone()
			if b.Move(tt.target) {
				t.Errorf("Move(%v) = true, want false", tt.target)
			}
			if !b.Equal(before) {
				t.Errorf("illegal move changed the board:\n%s", b)
			}
		})
	}
}

func TestNeighbors(t *testing.T) {
	tests := []struct {
		name string
		c    Coord
		size int
		want int
	}{
		{"corner", Coord{0, 0}, 3, 2},
		{"other corner", Coord{2, 2}, 3, 2},
		{"edge", Coord{1, 0}, 3, 3},
		{"interior", Coord{1, 1}, 3, 4},
		{"interior 5x5", Coord{2, 3}, 5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Neighbors(tt.c, tt.size)
			if len(n) != tt.want {
				t.Errorf("len(Neighbors(%v, %d)) = %d, want %d", tt.c, tt.size, len(n), tt.want)
			}
			for _, c := range n {
				if c.Manhattan(tt.c) != 1 || !c.In(tt.size) {
					t.Errorf("neighbor %v of %v is not adjacent and in bounds", c, tt.c)
				}
			}
		})
	}
}

func TestShuffleUsesExpectedStepCount(t *testing.T) {
	if got := ShuffleSteps(4, DefaultShuffleFactor); got != 320 {
		t.Errorf("ShuffleSteps(4, 20) = %d, want 320", got)
	}

	// Shuffle consumes exactly one rng draw per step, so replaying the same
	// draws by hand lands on the same arrangement.
	b, _ := NewSolvedBoard(3)
	b.Shuffle(rand.New(rand.NewSource(3)), 180)

	manual, _ := NewSolvedBoard(3)
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 180; i++ {
		if !manual.Move(RandomStep(rng, manual.Empty(), 3)) {
			t.Fatal("RandomStep produced an illegal move")
		}
	}
	if !b.Equal(manual) {
		t.Errorf("Shuffle diverged from manual walk:\n%s\n\n%s", b, manual)
	}
}

func TestHint(t *testing.T) {
	tests := []struct {
		name   string
		rows   [][]int
		wantOK bool
		want   Coord
	}{
		{"solved board has no hint", [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 0}}, false, Coord{}},
		{"gap out of place", [][]int{{1, 2, 3}, {4, 0, 6}, {7, 8, 5}}, true, Coord{1, 1}},
		{"first cell wrong", [][]int{{2, 1, 3}, {4, 5, 6}, {7, 8, 0}}, true, Coord{0, 0}},
		{"only last row wrong", [][]int{{1, 2, 3}, {4, 5, 6}, {7, 0, 8}}, true, Coord{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.rows)
			before := b.Clone()
			got, ok := b.Hint()
			if ok != tt.wantOK {
				t.Fatalf("Hint() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Hint() = %v, want %v", got, tt.want)
			}
			if !b.Equal(before) {
				t.Error("Hint() mutated the board")
			}
		})
	}
}

func TestBoardFromCellsRejectsBadGrids(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
	}{
		{"too small", [][]int{{0}}},
		{"ragged", [][]int{{1, 2}, {0}}},
		{"duplicate", [][]int{{1, 1}, {2, 0}}},
		{"out of range", [][]int{{1, 2}, {7, 0}}},
		{"no empty", [][]int{{1, 2}, {3, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BoardFromCells(tt.rows); err == nil {
				t.Errorf("BoardFromCells(%v) succeeded, want error", tt.rows)
			}
		})
	}
}

func TestHomeOfAndExpectedAt(t *testing.T) {
	for size := 2; size <= 5; size++ {
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				c := Coord{x, y}
				if got := HomeOf(ExpectedAt(c, size), size); got != c {
					t.Errorf("size %d: HomeOf(ExpectedAt(%v)) = %v", size, c, got)
				}
			}
		}
	}
}

func TestFindAndMisplaced(t *testing.T) {
	b := mustBoard(t, [][]int{{1, 2, 3}, {4, 0, 6}, {7, 8, 5}})

	if c, ok := b.Find(5); !ok || c != (Coord{2, 2}) {
		t.Errorf("Find(5) = %v, %v; want {2 2}, true", c, ok)
	}
	if c, ok := b.Find(Empty); !ok || c != (Coord{1, 1}) {
		t.Errorf("Find(Empty) = %v, %v; want {1 1}, true", c, ok)
	}
	if _, ok := b.Find(42); ok {
		t.Error("Find(42) found a tile")
	}
	if got := b.Misplaced(); got != 1 {
		t.Errorf("Misplaced() = %d, want 1", got)
	}
}

func TestBoardString(t *testing.T) {
	b := mustBoard(t, [][]int{{1, 2, 3}, {4, 0, 6}, {7, 8, 5}})
	want := "1 2 3\n4 . 6\n7 8 5"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
