package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveSolve("slide3", "numbers", 30, 40*time.Second); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestSolve("slide3")
	if err != nil || best == nil || best.Moves != 30 {
		t.Errorf("BestSolve() after reopen = %+v, %v", best, err)
	}
}

func TestBestSolvesOrdering(t *testing.T) {
	store := openTestStore(t)

	solves := []struct {
		gameID string
		theme  string
		moves  int
		d      time.Duration
	}{
		{"slide3", "numbers", 40, 60 * time.Second},
		{"slide3", "grid", 25, 90 * time.Second},
		{"slide3", "gradient", 25, 45 * time.Second},
		{"slide3", "numbers", 100, 10 * time.Second},
		{"slide4", "numbers", 12, 5 * time.Second},
	}
	for _, s := range solves {
		if _, err := store.SaveSolve(s.gameID, s.theme, s.moves, s.d); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	entries, err := store.BestSolves("slide3", 10)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("len(entries) = %d, want 4", len(entries))
	}

	want := []struct {
		moves int
		theme string
	}{
		{25, "gradient"},
		{25, "grid"},
		{40, "numbers"},
		{100, "numbers"},
	}
	for i, w := range want {
		if entries[i].Moves != w.moves || entries[i].Theme != w.theme {
			t.Errorf("entries[%d] = %d %s, want %d %s", i, entries[i].Moves, entries[i].Theme, w.moves, w.theme)
		}
	}
	if entries[0].Duration != 45*time.Second {
		t.Errorf("entries[0].Duration = %v, want 45s", entries[0].Duration)
	}
	if entries[0].CreatedAt.IsZero() {
		t.Error("entries[0].CreatedAt not parsed")
	}

	limited, err := store.BestSolves("slide3", 2)
	if err != nil {
		t.Fatalf("BestSolves(limit 2) failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("len(limited) = %d, want 2", len(limited))
	}
}

func TestSaveSolveRejectsZeroMoves(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveSolve("slide3", "numbers", 0, time.Second); err == nil {
		t.Error("SaveSolve with 0 moves: expected error")
	}
}

func TestBestSolveEmpty(t *testing.T) {
	store := openTestStore(t)
	best, err := store.BestSolve("slide5")
	if err != nil {
		t.Fatalf("BestSolve() failed: %v", err)
	}
	if best != nil {
		t.Errorf("BestSolve() = %+v, want nil", best)
	}
}

func TestClearSolves(t *testing.T) {
	store := openTestStore(t)
	store.SaveSolve("slide3", "numbers", 20, time.Second)
	store.SaveSolve("slide4", "numbers", 50, time.Second)

	if err := store.ClearSolves("slide3"); err != nil {
		t.Fatalf("ClearSolves() failed: %v", err)
	}

	if entries, _ := store.BestSolves("slide3", 10); len(entries) != 0 {
		t.Errorf("slide3 still has %d solves", len(entries))
	}
	if entries, _ := store.BestSolves("slide4", 10); len(entries) != 1 {
		t.Errorf("slide4 has %d solves, want 1", len(entries))
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveSolve("slide3", "numbers", 20, 30*time.Second)
	store.SaveSolve("slide3", "grid", 40, 20*time.Second)
	store.SaveSolve("slide5", "numbers", 300, 5*time.Minute)

	stats, err := store.GetGameStats("slide3")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Solves != 2 || stats.FewestMoves != 20 || stats.AvgMoves != 30 || stats.Fastest != 20*time.Second {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	empty, err := store.GetGameStats("slide4")
	if err != nil {
		t.Fatalf("GetGameStats(empty) failed: %v", err)
	}
	if empty.Solves != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["slide5"].FewestMoves != 300 {
		t.Errorf("all stats = %v", all)
	}
}

func TestRecentSolves(t *testing.T) {
	store := openTestStore(t)
	store.SaveSolve("slide3", "numbers", 20, time.Second)
	store.SaveSolve("slide4", "grid", 30, time.Second)

	recent, err := store.RecentSolves(10)
	if err != nil {
		t.Fatalf("RecentSolves() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].GameID != "slide4" {
		t.Errorf("RecentSolves() = %+v, want slide4 first", recent)
	}
}
