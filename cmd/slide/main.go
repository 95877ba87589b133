// slide is a sliding tile puzzle for the terminal, the desktop and SSH.
//
// Usage:
//
//	slide play               - Play one puzzle in the terminal
//	slide menu               - Start the menu to pick difficulty and image
//	slide desktop            - Open the windowed version
//	slide serve              - Start SSH server for remote play
//	slide scores [size]      - Show the best solves
//	slide list               - List puzzle sizes and images
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible shuffles
//	--db <path>         - Set database path (default: ~/.slide/scores.db)
//	--config <path>     - Load a custom slide.yaml
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/games/slide"
	"github.com/vovakirdan/tui-slide/internal/games/slide/puzzle"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slide",
	Short: "Sliding Puzzle - Slide numbered tiles back into order",
	Long: `Sliding Puzzle shuffles an N×N grid of tiles with one gap.
Slide tiles into the gap until they are back in order.

Available commands:
  play     - Play a puzzle directly
  menu     - Interactive menu with difficulty and image selection
  desktop  - Windowed version with mouse and sound
  serve    - Start SSH server for remote play
  scores   - View best solves
  list     - Show sizes and images

Examples:
  slide play --size 4 --theme grid
  slide menu
  slide desktop --size hard
  slide serve --ssh :2222
  slide scores medium`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slide/scores.db", "Path to solves database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom slide.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the process logger. Terminal frontends own the screen,
// so they log to ~/.slide/slide.log; the returned func closes that file.
func newLogger(toFile bool) (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	closer := func() {}

	if toFile {
		w = io.Discard
		if dir := config.UserDir(); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err == nil {
				f, err := os.OpenFile(filepath.Join(dir, "slide.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err == nil {
					w = f
					closer = func() { f.Close() }
				}
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "slide",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger, closer
}

// settings is the configuration shared by every frontend.
type settings struct {
	cfg    config.SlideConfig
	preset config.DifficultyPreset
	theme  puzzle.Theme
}

// loadSettings reads the config file and applies --size and --theme over
// its defaults. The config is installed for the terminal game as well.
func loadSettings(size, theme string) (settings, error) {
	cfg, err := config.LoadSlide(flagConfig)
	if err != nil {
		return settings{}, err
	}
	slide.SetConfig(cfg)

	s := settings{cfg: cfg}
	if size == "" {
		s.preset, err = config.PresetForSize(cfg.Defaults.Size)
	} else {
		s.preset, err = config.ParseDifficulty(size)
	}
	if err != nil {
		return settings{}, err
	}

	if theme == "" {
		theme = cfg.Defaults.Theme
	}
	if s.theme, err = puzzle.ParseTheme(theme); err != nil {
		return settings{}, fmt.Errorf("%w (use numbers, grid or nature)", err)
	}
	return s, nil
}
