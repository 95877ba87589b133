package puzzle

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-slide/internal/core"
)

// DefaultHintTicks keeps a hint visible for 3 seconds at 60 ticks per second.
const DefaultHintTicks = 180

// maxReshuffles bounds the retries when a shuffle lands on the solved
// arrangement, which only happens in practice on 2×2 grids.
const maxReshuffles = 16

// Clock supplies wall-clock readings for elapsed time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Options configure a session. Zero numeric fields take their defaults.
type Options struct {
	Size          int
	Theme         Theme
	Seed          int64
	CellSize      float64 // pixels per grid cell
	Speed         float64 // animation pixels per tick
	ShuffleFactor int     // random moves per cell when shuffling
	HintTicks     int     // ticks a hint stays visible
}

func (o Options) withDefaults() Options {
	if o.CellSize <= 0 {
		o.CellSize = DefaultCellSize
	}
	if o.Speed <= 0 {
		o.Speed = DefaultSpeed
	}
	if o.ShuffleFactor <= 0 {
		o.ShuffleFactor = DefaultShuffleFactor
	}
	if o.HintTicks <= 0 {
		o.HintTicks = DefaultHintTicks
	}
	return o
}

// Validate rejects grid sizes and themes outside the supported set.
func (o Options) Validate() error {
	if o.Size < MinSize {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, o.Size)
	}
	if !o.Theme.Valid() {
		return fmt.Errorf("%w %d", ErrUnknownTheme, int(o.Theme))
	}
	return nil
}

type hint struct {
	id    int
	ticks int
}

// Session is one shuffled puzzle from creation until it is solved or
// dropped. Restarting means creating a new session.
type Session struct {
	opts  Options
	clock Clock

	board *Board
	anim  *Animator

	moves   int
	start   time.Time
	elapsed time.Duration
	solved  bool
	hint    *hint

	paused    bool
	pausedAt  time.Time
	pausedFor time.Duration

	events []core.Event
}

// NewSession validates opts, shuffles a fresh board and starts the clock.
func NewSession(opts Options, clock Clock) (*Session, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = SystemClock{}
	}

	board, err := NewSolvedBoard(opts.Size)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	steps := ShuffleSteps(opts.Size, opts.ShuffleFactor)
	for i := 0; i < maxReshuffles; i++ {
		board.Shuffle(rng, steps)
		if !board.IsSolved() {
			break
		}
	}

	s := &Session{
		opts:  opts,
		clock: clock,
		board: board,
	}
	s.anim = NewAnimator(board, opts.CellSize, opts.Speed)
	s.start = clock.Now()
	return s, nil
}

// NewSessionFromBoard starts a session on an existing arrangement without
// shuffling it. The board is copied.
func NewSessionFromBoard(b *Board, opts Options, clock Clock) (*Session, error) {
	opts.Size = b.Size()
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = SystemClock{}
	}
	s := &Session{
		opts:  opts,
		clock: clock,
		board: b.Clone(),
	}
	s.anim = NewAnimator(s.board, opts.CellSize, opts.Speed)
	s.start = clock.Now()
	s.solved = s.board.IsSolved()
	return s, nil
}

// Click applies the pointer press on grid cell c. Only the tile orthogonally
// next to the empty cell moves; anything else, and any click after the
// puzzle is solved, is ignored. It reports whether a tile moved.
func (s *Session) Click(c Coord) bool {
	if s.solved {
		return false
	}
	id := s.board.At(c)
	from := s.board.Empty()
	if !s.board.Move(c) {
		return false
	}
	s.anim.Relocate(id, from)
	s.moves++
	s.emit(core.EventMove)

	if s.board.IsSolved() {
		s.solved = true
		s.elapsed = s.clock.Now().Sub(s.start) - s.pausedFor
		s.hint = nil
		s.emit(core.EventSolved)
	}
	return true
}

// Slide moves the tile that sits on the far side of the gap in direction d,
// so DirUp moves the tile below the gap upward.
func (s *Session) Slide(d Direction) bool {
	return s.Click(s.board.Empty().Sub(d.Delta()))
}

// ShowHint highlights the first misplaced cell for HintTicks ticks and
// returns it. Nothing happens on a solved board.
func (s *Session) ShowHint() (Coord, bool) {
	if s.solved {
		return Coord{}, false
	}
	c, ok := s.board.Hint()
	if !ok {
		return Coord{}, false
	}
	s.hint = &hint{id: s.board.At(c), ticks: s.opts.HintTicks}
	s.emit(core.EventHint)
	return c, true
}

// Tick advances animations and the hint countdown by one frame.
func (s *Session) Tick() {
	s.anim.Step()

	if s.hint != nil {
		s.hint.ticks--
		if s.hint.ticks <= 0 {
			s.hint = nil
		}
	}

	if !s.solved && !s.paused {
		s.elapsed = s.clock.Now().Sub(s.start) - s.pausedFor
	}
}

// SetPaused stops or restarts the clock. Time spent paused is not counted.
func (s *Session) SetPaused(p bool) {
	if p == s.paused || s.solved {
		return
	}
	now := s.clock.Now()
	if p {
		s.pausedAt = now
	} else {
		s.pausedFor += now.Sub(s.pausedAt)
	}
	s.paused = p
}

// Paused reports whether the clock is stopped.
func (s *Session) Paused() bool { return s.paused }

func (s *Session) emit(e core.Event) {
	s.events = append(s.events, e)
}

// DrainEvents returns and clears the events queued since the last call.
func (s *Session) DrainEvents() []core.Event {
	out := s.events
	s.events = nil
	return out
}

// Moves returns the number of moves applied.
func (s *Session) Moves() int { return s.moves }

// Elapsed returns the time since the shuffle, as of the last tick. It is
// frozen once the puzzle is solved.
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// Solved reports whether the puzzle is solved.
func (s *Session) Solved() bool { return s.solved }

// Size returns the grid size.
func (s *Session) Size() int { return s.opts.Size }

// Theme returns the tile theme.
func (s *Session) Theme() Theme { return s.opts.Theme }

// Options returns the effective options.
func (s *Session) Options() Options { return s.opts }

// Board returns a copy of the current arrangement.
func (s *Session) Board() *Board { return s.board.Clone() }

// Animating reports whether any tile is still sliding.
func (s *Session) Animating() bool { return s.anim.Busy() }

// HintedTile returns the identity under the active hint. The identity may
// be Empty when the gap itself is out of place.
func (s *Session) HintedTile() (int, bool) {
	if s.hint == nil {
		return 0, false
	}
	return s.hint.id, true
}

// HintCell returns the cell currently holding the hinted identity.
func (s *Session) HintCell() (Coord, bool) {
	id, ok := s.HintedTile()
	if !ok {
		return Coord{}, false
	}
	return s.board.Find(id)
}

// HintTicksLeft returns the remaining hint ticks, or 0 without a hint.
func (s *Session) HintTicksLeft() int {
	if s.hint == nil {
		return 0
	}
	return s.hint.ticks
}

// TileView is what a renderer needs to paint one tile.
type TileView struct {
	ID     int
	Home   Coord // solved cell, selects the theme swatch
	Cell   Coord
	X, Y   float64 // rendered top-left in board pixels
	Size   float64
	Moving bool
	Hinted bool
}

// Tiles returns a view of every non-empty tile ordered by identity.
func (s *Session) Tiles() []TileView {
	hinted, hasHint := s.HintedTile()
	tiles := s.anim.Tiles()
	out := make([]TileView, 0, len(tiles))
	for _, t := range tiles {
		out = append(out, TileView{
			ID:     t.ID,
			Home:   HomeOf(t.ID, s.opts.Size),
			Cell:   t.Cell,
			X:      t.Pos.X,
			Y:      t.Pos.Y,
			Size:   s.opts.CellSize,
			Moving: t.Moving,
			Hinted: hasHint && hinted == t.ID,
		})
	}
	return out
}
