package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestScoreboardFilterAndSizes(t *testing.T) {
	store := openTestStore(t)
	for _, s := range []struct {
		game, theme string
		moves       int
	}{
		{"slide4", "numbers", 40},
		{"slide4", "gradient", 31},
		{"slide4", "numbers", 55},
		{"slide5", "grid", 90},
	} {
		if _, err := store.SaveSolve(s.game, s.theme, s.moves, time.Minute); err != nil {
			t.Fatalf("SaveSolve() error = %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	m.SelectGame("slide4")
	if len(m.scores) != 3 {
		t.Fatalf("scores = %d, want 3", len(m.scores))
	}
	if m.scores[0].Moves != 31 {
		t.Errorf("best moves = %d, want 31", m.scores[0].Moves)
	}
	if m.stats == nil || m.stats.Solves != 3 || m.stats.FewestMoves != 31 {
		t.Errorf("stats = %+v, want 3 solves fewest 31", m.stats)
	}

	// First filter step narrows to the first image.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	m = next.(ScoreboardModel)
	if got := m.filterLabel(); got != "Numbers" {
		t.Errorf("filterLabel() = %q, want Numbers", got)
	}
	if len(m.scores) != 2 {
		t.Errorf("filtered scores = %d, want 2", len(m.scores))
	}
	if m.stats.Solves != 3 {
		t.Errorf("stats ignore the filter: Solves = %d, want 3", m.stats.Solves)
	}

	m.SelectGame("slide5")
	if len(m.scores) != 0 {
		t.Errorf("slide5 numbers scores = %d, want 0", len(m.scores))
	}
	if !strings.Contains(m.View(), "No solves recorded yet.") {
		t.Error("empty list should show the placeholder")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() || cmd == nil {
		t.Error("esc should go back")
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}
