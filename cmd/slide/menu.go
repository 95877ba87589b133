package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/platform/tui"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the puzzle with a menu",
	Long: `Start in interactive menu mode.

Pick a difficulty and an image, then start a game. Leaving a game
returns to the menu with the same selection.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Click  - Select
  Tab          - Best solves
  Esc          - Back
  Q            - Quit

Examples:
  slide menu
  slide menu --fps 30
  slide menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagSize, "size", "", "Initial grid size: 3, 4, 5 or easy, medium, hard")
	menuCmd.Flags().StringVar(&flagTheme, "theme", "", "Initial tile image: numbers, grid, nature")
}

func runMenu(_ *cobra.Command, _ []string) {
	s, err := loadSettings(flagSize, flagTheme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(true)
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solves database: %v\n", err)
		store = nil
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runErr := tui.RunSession(store, logger, cfg, tui.Selection{Preset: s.preset, Theme: s.theme})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
