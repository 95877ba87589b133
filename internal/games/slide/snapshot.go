package slide

import "time"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSolved      GameStateType = "solved"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Size      int
	Seed      int64
	Theme     string
	Cells     [][]int
	Moves     int
	Elapsed   time.Duration
	HintTicks int
	Animating bool
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.layout.TooSmall:
		state = StatePausedSmall
	case g.session.Solved():
		state = StateSolved
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:      g.tick,
		Size:      g.size,
		Seed:      g.seed,
		Theme:     g.session.Theme().String(),
		Cells:     g.session.Board().Cells(),
		Moves:     g.session.Moves(),
		Elapsed:   g.session.Elapsed(),
		HintTicks: g.session.HintTicksLeft(),
		Animating: g.session.Animating(),
		State:     state,
	}
}
