package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/games/slide/puzzle"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [size]",
	Short: "Show the best solves",
	Long: `Display the 10 best solves, fewest moves first, for one grid size
or for every size when none is given.

Examples:
  slide scores
  slide scores easy
  slide scores 4x4`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	presets := config.AllPresets()
	if len(args) == 1 {
		p, err := config.ParseDifficulty(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		presets = []config.DifficultyPreset{p}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	for i, p := range presets {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, p); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
			os.Exit(1)
		}
	}
}

func printScores(store *storage.Store, p config.DifficultyPreset) error {
	solves, err := store.BestSolves(p.GameID(), 10)
	if err != nil {
		return err
	}

	fmt.Printf("Best Solves - %s\n", p.Title())
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Printf("Play 'slide play --size %s' to set the first record!\n", p)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %s\n", "Rank", "Moves", "Time", "Image", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "----", "-----", "----")
	for i, s := range solves {
		fmt.Printf("  %-4d  %-6d  %-6s  %-8s  %s\n",
			i+1, s.Moves, core.FormatClock(s.Duration), imageTitle(s.Theme), s.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(p.GameID())
	if err == nil {
		fmt.Println()
		fmt.Printf("Solves: %d   Fewest moves: %d   Average: %.1f   Fastest: %s\n",
			stats.Solves, stats.FewestMoves, stats.AvgMoves, core.FormatClock(stats.Fastest))
	}
	return nil
}

func imageTitle(name string) string {
	if t, err := puzzle.ParseTheme(name); err == nil {
		return t.Title()
	}
	return name
}
