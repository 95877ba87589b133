// Package config provides YAML-based configuration loading and difficulty
// presets for the sliding puzzle.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-slide/internal/games/slide/puzzle"
)

// SlideConfig contains all configuration for the sliding puzzle.
type SlideConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Animation AnimationConfig `yaml:"animation"`
	Hint      HintConfig      `yaml:"hint"`
	Defaults  DefaultsConfig  `yaml:"defaults"`
	Sound     SoundConfig     `yaml:"sound"`
	Window    WindowConfig    `yaml:"window"`
}

// BoardConfig defines the board geometry and shuffle depth.
type BoardConfig struct {
	CellSize      float64 `yaml:"cell_size"`      // Pixels per grid cell used by the animator
	ShuffleFactor int     `yaml:"shuffle_factor"` // Random moves per cell when shuffling
}

// AnimationConfig defines tile motion.
type AnimationConfig struct {
	Speed float64 `yaml:"speed"` // Pixels per tick on each axis
}

// HintConfig defines how long a hint stays on screen.
type HintConfig struct {
	Ticks int `yaml:"ticks"`
}

// DefaultsConfig holds the selections the menus start from.
type DefaultsConfig struct {
	Size  int    `yaml:"size"`  // 3, 4 or 5
	Theme string `yaml:"theme"` // numbers, grid or gradient
}

// SoundConfig points at the sound effect assets.
type SoundConfig struct {
	Dir       string  `yaml:"dir"`       // Directory holding move.wav, success.wav, click.wav, hint.wav
	SoundFont string  `yaml:"soundfont"` // Optional .sf2 used to synthesize missing effects
	Volume    float64 `yaml:"volume"`    // 0.0 - 1.0
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate rejects values the puzzle cannot run with.
func (c SlideConfig) Validate() error {
	switch {
	case c.Board.CellSize <= 0:
		return fmt.Errorf("%w: board.cell_size must be positive, got %v", ErrInvalidConfig, c.Board.CellSize)
	case c.Board.ShuffleFactor <= 0:
		return fmt.Errorf("%w: board.shuffle_factor must be positive, got %d", ErrInvalidConfig, c.Board.ShuffleFactor)
	case c.Animation.Speed <= 0:
		return fmt.Errorf("%w: animation.speed must be positive, got %v", ErrInvalidConfig, c.Animation.Speed)
	case c.Hint.Ticks <= 0:
		return fmt.Errorf("%w: hint.ticks must be positive, got %d", ErrInvalidConfig, c.Hint.Ticks)
	case c.Sound.Volume < 0 || c.Sound.Volume > 1:
		return fmt.Errorf("%w: sound.volume must be within [0, 1], got %v", ErrInvalidConfig, c.Sound.Volume)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if _, err := PresetForSize(c.Defaults.Size); err != nil {
		return fmt.Errorf("%w: defaults.size: %v", ErrInvalidConfig, err)
	}
	if _, err := puzzle.ParseTheme(c.Defaults.Theme); err != nil {
		return fmt.Errorf("%w: defaults.theme: %v", ErrInvalidConfig, err)
	}
	return nil
}
