// Package slide adapts the sliding puzzle to the platform's Game interface:
// input frames drive a puzzle session and the session is drawn onto a
// character screen.
package slide

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/games/slide/puzzle"
	"github.com/vovakirdan/tui-slide/internal/registry"
)

var (
	cfgMu       sync.RWMutex
	slideConfig = config.DefaultSlideConfig()
)

// SetConfig replaces the configuration used by games reset after the call.
func SetConfig(cfg config.SlideConfig) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	slideConfig = cfg
}

func currentConfig() config.SlideConfig {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return slideConfig
}

func init() {
	for _, p := range config.AllPresets() {
		preset := p
		registry.Register(preset.GameID(), func() registry.Game {
			return New(preset.Size())
		})
	}
}

// Game implements registry.Game for one grid size.
type Game struct {
	size  int
	clock puzzle.Clock

	session *puzzle.Session
	rng     *rand.Rand // seeds reshuffles after a restart
	seed    int64      // seed of the current session
	tick    uint64

	screenW int
	screenH int
	layout  Layout

	paused  bool
	exit    bool
	pending []core.Event
}

// New creates an N×N puzzle game.
func New(size int) *Game {
	return NewWithClock(size, puzzle.SystemClock{})
}

// NewWithClock creates a game whose timer reads clock.
func NewWithClock(size int, clock puzzle.Clock) *Game {
	return &Game{size: size, clock: clock}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return config.GameIDForSize(g.size)
}

// Title returns the display name.
func (g *Game) Title() string {
	p, err := config.PresetForSize(g.size)
	if err != nil {
		return "Sliding Puzzle"
	}
	return p.Title()
}

// Reset starts a freshly shuffled puzzle.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.paused = false
	g.exit = false
	g.pending = nil
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	sc := currentConfig()
	name := cfg.Theme
	if name == "" {
		name = sc.Defaults.Theme
	}
	theme, err := puzzle.ParseTheme(name)
	if err != nil {
		theme = puzzle.ThemeNumbers
	}
	g.newSession(cfg.Seed, theme, sc)
}

func (g *Game) newSession(seed int64, theme puzzle.Theme, sc config.SlideConfig) {
	opts := puzzle.Options{
		Size:          g.size,
		Theme:         theme,
		Seed:          seed,
		CellSize:      sc.Board.CellSize,
		Speed:         sc.Animation.Speed,
		ShuffleFactor: sc.Board.ShuffleFactor,
		HintTicks:     sc.Hint.Ticks,
	}
	s, err := puzzle.NewSession(opts, g.clock)
	if err != nil {
		// Retry at the easy size; keep the current puzzle if that fails too.
		opts.Size = config.DifficultyEasy.Size()
		if s, err = puzzle.NewSession(opts, g.clock); err != nil && g.session != nil {
			return
		}
		g.size = opts.Size
		g.layout = ComputeLayout(g.screenW, g.screenH, g.size)
	}
	g.session = s
	g.seed = seed
}

// restart reshuffles with the same theme. Events from the old session are kept.
func (g *Game) restart() {
	g.pending = append(g.pending, g.session.DrainEvents()...)
	g.paused = false
	g.newSession(g.rng.Int63(), g.session.Theme(), currentConfig())
}

// Resize recomputes the layout without touching the puzzle.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout = ComputeLayout(w, h, g.size)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// The clock stops while the window is too small to show the board.
	if g.layout.TooSmall {
		g.session.SetPaused(true)
		return g.result()
	}
	g.session.SetPaused(g.paused)

	if in.Has(core.ActionPause) && !g.session.Solved() {
		g.paused = !g.paused
		g.session.SetPaused(g.paused)
	}
	if g.paused {
		return g.result()
	}

	if in.Has(core.ActionRestart) {
		g.restart()
	}

	for _, p := range in.Clicks {
		if id, ok := g.layout.ButtonAt(p.X, p.Y); ok {
			g.press(id)
			continue
		}
		if c, ok := g.layout.CellAt(p.X, p.Y); ok {
			g.session.Click(c)
		}
	}

	switch {
	case in.Has(core.ActionUp):
		g.session.Slide(puzzle.DirUp)
	case in.Has(core.ActionDown):
		g.session.Slide(puzzle.DirDown)
	case in.Has(core.ActionLeft):
		g.session.Slide(puzzle.DirLeft)
	case in.Has(core.ActionRight):
		g.session.Slide(puzzle.DirRight)
	}

	if in.Has(core.ActionHint) {
		g.session.ShowHint()
	}

	g.session.Tick()
	return g.result()
}

func (g *Game) press(id ButtonID) {
	g.pending = append(g.pending, core.EventClick)
	switch id {
	case ButtonRestart:
		g.restart()
	case ButtonMenu:
		g.exit = true
	case ButtonHint:
		g.session.ShowHint()
	}
}

func (g *Game) result() core.StepResult {
	events := append(g.pending, g.session.DrainEvents()...)
	g.pending = nil
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Paused: g.paused || g.layout.TooSmall,
		Exit:   g.exit,
	}
	if g.session != nil && g.session.Solved() {
		st.GameOver = true
		st.Score = g.session.Moves()
	}
	return st
}

// Moves returns the moves made in the current puzzle.
func (g *Game) Moves() int {
	return g.session.Moves()
}

// Elapsed returns the current puzzle's play time.
func (g *Game) Elapsed() time.Duration {
	return g.session.Elapsed()
}

// ThemeName returns the config name of the current theme.
func (g *Game) ThemeName() string {
	return g.session.Theme().String()
}

// Size returns the grid size.
func (g *Game) Size() int {
	return g.size
}

// Layout returns the current screen layout.
func (g *Game) Layout() Layout {
	return g.layout
}
