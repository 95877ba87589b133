package puzzle

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-slide/internal/core"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func sessionFrom(t *testing.T, rows [][]int, clock Clock) *Session {
	t.Helper()
	s, err := NewSessionFromBoard(mustBoard(t, rows), Options{}, clock)
	if err != nil {
		t.Fatalf("NewSessionFromBoard failed: %v", err)
	}
	return s
}

func TestNewSessionValidation(t *testing.T) {
	if _, err := NewSession(Options{Size: 1}, nil); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("size 1 error = %v, want ErrInvalidSize", err)
	}
	if _, err := NewSession(Options{Size: 3, Theme: Theme(7)}, nil); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("theme 7 error = %v, want ErrUnknownTheme", err)
	}
}

func TestNewSessionStartsShuffled(t *testing.T) {
	for _, size := range []int{2, 3, 4, 5} {
		s, err := NewSession(Options{Size: size, Theme: ThemeGrid, Seed: 99}, newFakeClock())
		if err != nil {
			t.Fatalf("NewSession(size %d) failed: %v", size, err)
		}
		if s.Moves() != 0 || s.Solved() || s.Elapsed() != 0 {
			t.Errorf("size %d: fresh session moves=%d solved=%v elapsed=%v", size, s.Moves(), s.Solved(), s.Elapsed())
		}
		if s.Board().IsSolved() {
			t.Errorf("size %d: fresh session board is solved", size)
		}
		if err := s.Board().Validate(); err != nil {
			t.Errorf("size %d: %v", size, err)
		}
		if got := len(s.Tiles()); got != size*size-1 {
			t.Errorf("size %d: len(Tiles()) = %d", size, got)
		}
		if s.Options().HintTicks != DefaultHintTicks || s.Options().Speed != DefaultSpeed {
			t.Errorf("size %d: defaults not applied: %+v", size, s.Options())
		}
	}
}

func TestSessionClickSolvesAndLatchesElapsed(t *testing.T) {
	clock := newFakeClock()
	s := sessionFrom(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 0, 8}}, clock)

	clock.Advance(5 * time.Second)
	if !s.Click(Coord{2, 2}) {
		t.Fatal("Click({2 2}) = false, want true")
	}
	if !s.Solved() {
		t.Fatal("session not solved after final move")
	}
	if s.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", s.Moves())
	}
	if s.Elapsed() != 5*time.Second {
		t.Errorf("Elapsed() = %v, want 5s", s.Elapsed())
	}

	want := []core.Event{core.EventMove, core.EventSolved}
	if got := s.DrainEvents(); !reflect.DeepEqual(got, want) {
		t.Errorf("DrainEvents() = %v, want %v", got, want)
	}

	clock.Advance(time.Minute)
	for i := 0; i < 30; i++ {
		s.Tick()
	}
	if s.Elapsed() != 5*time.Second {
		t.Errorf("Elapsed() after solve = %v, want 5s", s.Elapsed())
	}

	if s.Click(Coord{2, 1}) {
		t.Error("Click after solve moved a tile")
	}
	if s.Moves() != 1 {
		t.Errorf("Moves() after ignored click = %d, want 1", s.Moves())
	}
}

func TestSessionIllegalClick(t *testing.T) {
	s := sessionFrom(t, [][]int{{1, 2, 3}, {4, 0, 6}, {7, 8, 5}}, newFakeClock())
	before := s.Board()

	for _, c := range []Coord{{0, 0}, {1, 1}, {3, 1}, {-1, -1}} {
		if s.Click(c) {
			t.Errorf("Click(%v) = true, want false", c)
		}
	}
	if s.Moves() != 0 || !s.Board().Equal(before) {
		t.Errorf("illegal clicks changed state: moves=%d\n%s", s.Moves(), s.Board())
	}
	if ev := s.DrainEvents(); len(ev) != 0 {
		t.Errorf("illegal clicks emitted %v", ev)
	}
}

func TestSessionElapsedRunsWhileUnsolved(t *testing.T) {
	clock := newFakeClock()
	s := sessionFrom(t, [][]int{{1, 2, 3}, {4, 0, 6}, {7, 8, 5}}, clock)

	clock.Advance(3 * time.Second)
	s.Tick()
	if s.Elapsed() != 3*time.Second {
		t.Errorf("Elapsed() = %v, want 3s", s.Elapsed())
	}
}

func TestSessionSlide(t *testing.T) {
	s := sessionFrom(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 0, 8}}, newFakeClock())

	// Tile 5 sits above the gap; sliding down moves it.
	if !s.Slide(DirDown) {
		t.Fatal("Slide(DirDown) = false")
	}
	if got := s.Board().At(Coord{1, 2}); got != 5 {
		t.Errorf("cell {1 2} = %d, want 5", got)
	}
	if !s.Slide(DirUp) {
		t.Fatal("Slide(DirUp) = false")
	}
	if !s.Slide(DirLeft) {
		t.Fatal("Slide(DirLeft) = false")
	}
	if !s.Solved() || s.Moves() != 3 {
		t.Errorf("solved=%v moves=%d, want true 3", s.Solved(), s.Moves())
	}
}

func TestSessionSlideAtEdgeIsIgnored(t *testing.T) {
	s := sessionFrom(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 0}}, newFakeClock())
	// Already solved sessions ignore input entirely.
	if s.Slide(DirRight) {
		t.Error("Slide on solved board moved a tile")
	}

	s = sessionFrom(t, [][]int{{1, 2, 3}, {4, 5, 0}, {7, 8, 6}}, newFakeClock())
	// Nothing lies left of the right column's gap in this direction.
	if s.Slide(DirLeft) {
		t.Error("Slide(DirLeft) with gap on the right edge moved a tile")
	}
}

func TestSessionHintCountdown(t *testing.T) {
	s := sessionFrom(t, [][]int{{1, 2, 3}, {4, 0, 6}, {7, 8, 5}}, newFakeClock())

	c, ok := s.ShowHint()
	if !ok || c != (Coord{1, 1}) {
		t.Fatalf("ShowHint() = %v, %v; want {1 1}, true", c, ok)
	}
	if id, ok := s.HintedTile(); !ok || id != Empty {
		t.Errorf("HintedTile() = %d, %v; want Empty, true", id, ok)
	}
	if ev := s.DrainEvents(); len(ev) != 1 || ev[0] != core.EventHint {
		t.Errorf("events = %v, want [hint]", ev)
	}

	for i := 0; i < DefaultHintTicks-1; i++ {
		s.Tick()
	}
	if s.HintTicksLeft() != 1 {
		t.Errorf("HintTicksLeft() = %d, want 1", s.HintTicksLeft())
	}
	s.Tick()
	if _, ok := s.HintedTile(); ok {
		t.Error("hint still active after 180 ticks")
	}
}

func TestSessionHintFollowsTile(t *testing.T) {
	s := sessionFrom(t, [][]int{{2, 0, 3}, {1, 5, 6}, {4, 7, 8}}, newFakeClock())

	if _, ok := s.ShowHint(); !ok {
		t.Fatal("ShowHint() found nothing")
	}
	if id, _ := s.HintedTile(); id != 2 {
		t.Fatalf("HintedTile() = %d, want 2", id)
	}

	s.Click(Coord{0, 0})
	if c, ok := s.HintCell(); !ok || c != (Coord{1, 0}) {
		t.Errorf("HintCell() = %v, %v; want {1 0}, true", c, ok)
	}

	hinted := 0
	for _, tv := range s.Tiles() {
		if tv.Hinted {
			hinted++
			if tv.ID != 2 {
				t.Errorf("tile %d flagged as hinted", tv.ID)
			}
		}
	}
	if hinted != 1 {
		t.Errorf("%d tiles flagged as hinted, want 1", hinted)
	}
}

func TestSessionHintOnSolvedBoard(t *testing.T) {
	s := sessionFrom(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 0}}, newFakeClock())
	if _, ok := s.ShowHint(); ok {
		t.Error("ShowHint() on solved board returned a cell")
	}
	if len(s.DrainEvents()) != 0 {
		t.Error("ShowHint() on solved board emitted an event")
	}
}

func TestSessionAnimatesMovedTile(t *testing.T) {
	s := sessionFrom(t, [][]int{{1, 2, 3}, {4, 0, 6}, {7, 8, 5}}, newFakeClock())
	s.Click(Coord{1, 0}) // tile 2 slides down

	if !s.Animating() {
		t.Fatal("Animating() = false right after a move")
	}
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if s.Animating() {
		t.Error("still animating after 10 ticks")
	}
	for _, tv := range s.Tiles() {
		if tv.ID == 2 && (tv.X != 100 || tv.Y != 100 || tv.Cell != (Coord{1, 1})) {
			t.Errorf("tile 2 view = %+v, want at (100,100) cell {1 1}", tv)
		}
	}
}

func TestSessionPauseStopsClock(t *testing.T) {
	clock := newFakeClock()
	s := sessionFrom(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 0, 8}}, clock)

	clock.Advance(2 * time.Second)
	s.SetPaused(true)
	clock.Advance(time.Minute)
	s.Tick()
	if s.Elapsed() != 0 {
		t.Errorf("Elapsed() while paused before any tick = %v, want 0", s.Elapsed())
	}
	s.SetPaused(false)
	clock.Advance(time.Second)
	s.Tick()
	if s.Elapsed() != 3*time.Second {
		t.Errorf("Elapsed() = %v, want 3s", s.Elapsed())
	}

	s.Click(Coord{2, 2})
	if !s.Solved() || s.Elapsed() != 3*time.Second {
		t.Errorf("solved=%v elapsed=%v, want true 3s", s.Solved(), s.Elapsed())
	}
}
