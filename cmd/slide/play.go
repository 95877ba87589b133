package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/platform/tui"
	"github.com/vovakirdan/tui-slide/internal/registry"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

var (
	flagSize  string
	flagTheme string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a puzzle",
	Long: `Shuffle a puzzle and start playing it in the terminal.

Controls:
  Click        - Slide a tile next to the gap
  Arrows/WASD  - Slide the tile on that side of the gap
  H/?          - Highlight the first misplaced tile
  R            - Reshuffle
  P            - Pause
  Esc/Q        - Quit

Sizes: easy (3x3), medium (4x4), hard (5x5)
Images: numbers, grid, nature

Examples:
  slide play
  slide play --size 4
  slide play --size hard --theme nature
  slide play --config ./my-slide.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSize, "size", "", "Grid size: 3, 4, 5 or easy, medium, hard")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Tile image: numbers, grid, nature")
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func runPlay(_ *cobra.Command, _ []string) {
	s, err := loadSettings(flagSize, flagTheme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(true)
	defer closeLog()

	game, err := registry.Create(s.preset.GameID())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Theme:    s.theme.String(),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solves database: %v\n", err)
		// Continue without storage - the puzzle still works
		store = nil
	}

	runErr := tui.Run(game, store, logger, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
