// Package desktop is the windowed frontend built on Ebitengine. It shares
// the puzzle core with the terminal frontend and adds mouse hover, drawn
// tile pictures and sound effects.
package desktop

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/games/slide/puzzle"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

type screenID int

const (
	screenMain screenID = iota
	screenDifficulty
	screenImage
	screenScores
	screenGame
)

const (
	mainStart = iota
	mainDifficulty
	mainImage
	mainScores
	mainQuit
)

const (
	gameRestart = iota
	gameMenu
	gameHint
)

const scoresShown = 10

var (
	colorBackground = color.White
	colorText       = color.Black
	colorBoard      = color.RGBA{150, 150, 150, 255}
	colorHint       = color.RGBA{255, 255, 0, 255}
	colorOverlay    = color.RGBA{0, 0, 0, 128}
)

// Options configure the desktop app.
type Options struct {
	Config   config.SlideConfig
	Store    *storage.Store // optional
	Logger   *log.Logger    // optional
	Clock    puzzle.Clock   // optional, defaults to the system clock
	Seed     int64          // 0 seeds from the current time
	TickRate int
	Preset   config.DifficultyPreset
	Theme    puzzle.Theme
}

// App implements ebiten.Game.
type App struct {
	cfg    config.SlideConfig
	store  *storage.Store
	logger *log.Logger
	sounds *Sounds
	clock  puzzle.Clock
	rng    *rand.Rand

	width  int
	height int

	screen  screenID
	preset  config.DifficultyPreset
	theme   puzzle.Theme
	buttons map[screenID][]*Button

	session  *puzzle.Session
	layout   Layout
	pictures pictureCache
	scores   []storage.SolveEntry
	events   []core.Event
	quit     bool
}

// NewApp creates the app on its main menu. sounds may be nil.
func NewApp(opts Options, sounds *Sounds) *App {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = puzzle.SystemClock{}
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Preset.Size() == 0 {
		opts.Preset = config.DifficultyEasy
	}

	a := &App{
		cfg:    opts.Config,
		store:  opts.Store,
		logger: opts.Logger,
		sounds: sounds,
		clock:  opts.Clock,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		width:  opts.Config.Window.Width,
		height: opts.Config.Window.Height,
		preset: opts.Preset,
		theme:  opts.Theme,
	}
	a.buttons = a.makeButtons()
	return a
}

func (a *App) makeButtons() map[screenID][]*Button {
	presets := config.AllPresets()
	diffLabels := make([]string, 0, len(presets)+1)
	for _, p := range presets {
		diffLabels = append(diffLabels, p.Title())
	}
	themes := puzzle.AllThemes()
	imageLabels := make([]string, 0, len(themes)+1)
	for _, t := range themes {
		imageLabels = append(imageLabels, t.Title())
	}

	cx := a.width/2 - buttonW/2
	bottom := a.height - 70
	return map[screenID][]*Button{
		screenMain: column(a.width,
			[]string{"Start Game", "Select Difficulty", "Select Image", "High Scores", "Quit"}, nil),
		screenDifficulty: column(a.width, append(diffLabels, "Back"),
			[]color.RGBA{colorGreen, colorBlue, colorRed}),
		screenImage: column(a.width, append(imageLabels, "Back"), nil),
		screenScores: {
			NewButton("Back", cx, bottom, buttonW, buttonH, colorBlue),
		},
		screenGame: {
			NewButton("Restart", cx-110, bottom, buttonW-40, buttonH, colorBlue),
			NewButton("Menu", cx+70, bottom, buttonW-40, buttonH, colorBlue),
			NewButton("Hint", a.width-100, bottom, 80, buttonH, colorBlue),
		},
	}
}

// Update advances one tick: input, then animation and hint timers.
func (a *App) Update() error {
	x, y := ebiten.CursorPosition()
	hover(a.buttons[a.screen], x, y)

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		a.onKey(k)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.onClick(x, y)
	}

	a.tick()
	if a.quit {
		return ebiten.Termination
	}
	return nil
}

func (a *App) tick() {
	if a.screen == screenGame && a.session != nil && !a.session.Paused() {
		a.session.Tick()
	}
	a.flushEvents()
}

// flushEvents plays the queued sounds and records a finished puzzle.
func (a *App) flushEvents() {
	events := a.events
	a.events = nil
	if a.session != nil {
		events = append(events, a.session.DrainEvents()...)
	}
	for _, e := range events {
		if e == core.EventSolved {
			a.recordSolve()
		}
	}
	a.sounds.PlayEvents(events)
}

func (a *App) recordSolve() {
	s := a.session
	gameID := config.GameIDForSize(s.Size())
	a.logger.Info("puzzle solved", "game", gameID, "moves", s.Moves(), "elapsed", s.Elapsed().Round(time.Second))
	if a.store == nil {
		return
	}
	if _, err := a.store.SaveSolve(gameID, s.Theme().String(), s.Moves(), s.Elapsed()); err != nil {
		a.logger.Warn("could not save solve", "game", gameID, "error", err)
	}
}

func (a *App) onKey(k ebiten.Key) {
	if a.screen != screenGame {
		if k == ebiten.KeyEscape {
			if a.screen == screenMain {
				a.quit = true
				return
			}
			a.screen = screenMain
		}
		return
	}

	switch k {
	case ebiten.KeyEscape:
		a.leaveGame()
		return
	case ebiten.KeyR:
		a.startGame()
		return
	case ebiten.KeyP:
		a.session.SetPaused(!a.session.Paused())
		return
	}
	if a.session.Paused() {
		return
	}
	switch k {
	case ebiten.KeyArrowUp, ebiten.KeyW:
		a.session.Slide(puzzle.DirUp)
	case ebiten.KeyArrowDown, ebiten.KeyS:
		a.session.Slide(puzzle.DirDown)
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		a.session.Slide(puzzle.DirLeft)
	case ebiten.KeyArrowRight, ebiten.KeyD:
		a.session.Slide(puzzle.DirRight)
	case ebiten.KeyH:
		a.session.ShowHint()
	}
}

func (a *App) onClick(x, y int) {
	i := hitButton(a.buttons[a.screen], x, y)
	if i >= 0 {
		a.events = append(a.events, core.EventClick)
	}

	switch a.screen {
	case screenMain:
		switch i {
		case mainStart:
			a.startGame()
		case mainDifficulty:
			a.screen = screenDifficulty
		case mainImage:
			a.screen = screenImage
		case mainScores:
			a.openScores()
		case mainQuit:
			a.quit = true
		}

	case screenDifficulty:
		if presets := config.AllPresets(); i >= 0 && i < len(presets) {
			a.preset = presets[i]
		}
		if i >= 0 {
			a.screen = screenMain
		}

	case screenImage:
		if themes := puzzle.AllThemes(); i >= 0 && i < len(themes) {
			a.theme = themes[i]
		}
		if i >= 0 {
			a.screen = screenMain
		}

	case screenScores:
		if i >= 0 {
			a.screen = screenMain
		}

	case screenGame:
		a.clickGame(i, x, y)
	}
}

func (a *App) clickGame(button, x, y int) {
	switch button {
	case gameRestart:
		a.startGame()
		return
	case gameMenu:
		a.leaveGame()
		return
	}
	if a.session.Paused() {
		return
	}
	if button == gameHint {
		a.session.ShowHint()
		return
	}
	if c, ok := a.layout.CellAt(x, y); ok {
		a.session.Click(c)
	}
}

// startGame shuffles a new puzzle with the current selection.
func (a *App) startGame() {
	a.layout = ComputeLayout(a.width, a.height, a.preset.Size())
	s, err := puzzle.NewSession(puzzle.Options{
		Size:          a.preset.Size(),
		Theme:         a.theme,
		Seed:          a.rng.Int63(),
		CellSize:      float64(a.layout.TilePx),
		Speed:         a.cfg.Animation.Speed,
		ShuffleFactor: a.cfg.Board.ShuffleFactor,
		HintTicks:     a.cfg.Hint.Ticks,
	}, a.clock)
	if err != nil {
		a.logger.Error("cannot start puzzle", "size", a.preset.Size(), "error", err)
		a.screen = screenMain
		return
	}
	a.session = s
	a.screen = screenGame
	a.logger.Debug("game started", "size", s.Size(), "theme", s.Theme())
}

func (a *App) leaveGame() {
	a.flushEvents()
	a.session = nil
	a.screen = screenMain
}

func (a *App) openScores() {
	a.scores = nil
	if a.store != nil {
		scores, err := a.store.BestSolves(a.preset.GameID(), scoresShown)
		if err != nil {
			a.logger.Warn("could not load scores", "error", err)
		}
		a.scores = scores
	}
	a.screen = screenScores
}

// Layout reports the fixed logical screen size.
func (a *App) Layout(_, _ int) (int, int) {
	return a.width, a.height
}

// Draw renders the current screen.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	w := float64(a.width)

	switch a.screen {
	case screenMain:
		drawCentered(screen, "Sliding Puzzle", w/2, 100, 4, colorText)
		settings := fmt.Sprintf("Difficulty: %dx%d   Image: %s", a.preset.Size(), a.preset.Size(), a.theme.Title())
		drawCentered(screen, settings, w/2, 150, 1.5, colorText)
	case screenDifficulty:
		drawCentered(screen, "Select Difficulty", w/2, 100, 4, colorText)
	case screenImage:
		drawCentered(screen, "Select Image", w/2, 100, 4, colorText)
	case screenScores:
		a.drawScores(screen)
	case screenGame:
		a.drawGame(screen)
	}

	for _, b := range a.buttons[a.screen] {
		b.Draw(screen)
	}
}

func (a *App) drawScores(dst *ebiten.Image) {
	w := float64(a.width)
	drawCentered(dst, "Best Solves - "+a.preset.Title(), w/2, 100, 3, colorText)
	if len(a.scores) == 0 {
		drawCentered(dst, "No solves recorded yet.", w/2, 200, 1.5, colorText)
		return
	}
	drawText(dst, fmt.Sprintf("%-5s %6s %6s  %-8s %s", "Rank", "Moves", "Time", "Image", "Date"), w/2, 150, 1.5, text.AlignCenter, colorText)
	for i, s := range a.scores {
		row := fmt.Sprintf("#%-4d %6d %6s  %-8s %s",
			i+1, s.Moves, core.FormatClock(s.Duration), themeTitle(s.Theme), s.CreatedAt.Format("Jan 02 15:04"))
		drawText(dst, row, w/2, 180+float64(i)*28, 1.5, text.AlignCenter, colorText)
	}
}

func themeTitle(name string) string {
	if t, err := puzzle.ParseTheme(name); err == nil {
		return t.Title()
	}
	return name
}

func (a *App) drawGame(dst *ebiten.Image) {
	s := a.session
	if s == nil {
		return
	}
	l := a.layout
	b := l.Board()
	vector.FillRect(dst, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), colorBoard, false)

	pal := puzzle.PaletteFor(s.Theme())
	pic := a.pictures.get(s.Theme(), l)
	var hinted *image.Rectangle
	for _, t := range s.Tiles() {
		r := l.TileRect(t)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
		dst.DrawImage(tileSource(pic, t.ID, l), op)
		if pal.Bordered {
			strokeRect(dst, r, 2, color.Black)
		}
		if pal.Labeled {
			c := r.Min.Add(r.Size().Div(2))
			drawCentered(dst, fmt.Sprint(t.ID), float64(c.X), float64(c.Y), 2.5, color.White)
		}
		if t.Hinted {
			hinted = &r
		}
	}
	if hinted == nil {
		if cell, ok := s.HintCell(); ok {
			r := l.CellRect(cell)
			hinted = &r
		}
	}
	if hinted != nil {
		strokeRect(dst, *hinted, 4, colorHint)
	}

	el := core.FormatClock(s.Elapsed())
	w := float64(a.width)
	drawText(dst, fmt.Sprintf("Moves: %d", s.Moves()), 10, 10, 2, text.AlignStart, colorText)
	drawText(dst, "Time: "+el, 10, 50, 2, text.AlignStart, colorText)
	drawText(dst, fmt.Sprintf("Difficulty: %dx%d", s.Size(), s.Size()), w-10, 10, 2, text.AlignEnd, colorText)
	drawText(dst, "Image: "+s.Theme().Title(), w-10, 50, 2, text.AlignEnd, colorText)

	switch {
	case s.Solved():
		a.drawOverlay(dst, "SOLVED!", colorGreen, fmt.Sprintf("Moves: %d   Time: %s", s.Moves(), el))
	case s.Paused():
		a.drawOverlay(dst, "PAUSED", color.White, "Press P to resume")
	}
}

func (a *App) drawOverlay(dst *ebiten.Image, title string, titleColor color.Color, detail string) {
	w, h := float64(a.width), float64(a.height)
	vector.FillRect(dst, 0, 0, float32(w), float32(h), colorOverlay, false)
	drawCentered(dst, title, w/2, h/2-50, 5, titleColor)
	drawCentered(dst, detail, w/2, h/2+20, 2.5, color.White)
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), width, clr, false)
}

// Screen returns the active screen for tests and logging.
func (a *App) Screen() string {
	return [...]string{"main", "difficulty", "image", "scores", "game"}[a.screen]
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	win := opts.Config.Window

	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetTPS(opts.TickRate)

	sounds := NewSounds(audio.NewContext(SampleRate), opts.Config.Sound, opts.Logger)
	app := NewApp(opts, sounds)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
