package config

import (
	_ "embed"
)

//go:embed defaults/slide.yaml
var defaultSlideYAML []byte

// DefaultSlideConfig returns the default sliding puzzle configuration.
func DefaultSlideConfig() SlideConfig {
	return SlideConfig{
		Board: BoardConfig{
			CellSize:      100,
			ShuffleFactor: 20,
		},
		Animation: AnimationConfig{
			Speed: 10,
		},
		Hint: HintConfig{
			Ticks: 180,
		},
		Defaults: DefaultsConfig{
			Size:  3,
			Theme: "numbers",
		},
		Sound: SoundConfig{
			Dir:    "sounds",
			Volume: 0.5,
		},
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Sliding Puzzle",
		},
	}
}
