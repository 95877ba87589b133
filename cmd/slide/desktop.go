package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/platform/desktop"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Open the windowed puzzle",
	Long: `Open the puzzle in a window with mouse hover, drawn images and sound.

Sound effects are read from the sound directory in the config
(move.wav, success.wav, click.wav, hint.wav). Missing files are
synthesized from sound.soundfont when it is set, otherwise silent.

Examples:
  slide desktop
  slide desktop --size 5 --theme nature
  slide desktop --config ./my-slide.yaml`,
	Args: cobra.NoArgs,
	Run:  runDesktop,
}

func init() {
	desktopCmd.Flags().StringVar(&flagSize, "size", "", "Initial grid size: 3, 4, 5 or easy, medium, hard")
	desktopCmd.Flags().StringVar(&flagTheme, "theme", "", "Initial tile image: numbers, grid, nature")
}

func runDesktop(_ *cobra.Command, _ []string) {
	s, err := loadSettings(flagSize, flagTheme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(false)
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open solves database", "error", err)
		store = nil
	}

	runErr := desktop.Run(desktop.Options{
		Config:   s.cfg,
		Store:    store,
		Logger:   logger,
		Seed:     flagSeed,
		TickRate: flagFPS,
		Preset:   s.preset,
		Theme:    s.theme,
	})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
