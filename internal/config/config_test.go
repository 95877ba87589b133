package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSlideConfigValid(t *testing.T) {
	if err := DefaultSlideConfig().Validate(); err != nil {
		t.Errorf("DefaultSlideConfig().Validate() = %v, want nil", err)
	}
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := LoadSlide("")
	if err != nil {
		t.Fatalf("LoadSlide(\"\") failed: %v", err)
	}
	def := DefaultSlideConfig()
	if cfg.Board != def.Board || cfg.Animation != def.Animation || cfg.Hint != def.Hint {
		t.Errorf("embedded config %+v differs from defaults %+v", cfg, def)
	}
}

func TestLoadSlideCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "slide.yaml")
	data := []byte("animation:\n  speed: 25\ndefaults:\n  size: 5\n  theme: grid\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSlide(path)
	if err != nil {
		t.Fatalf("LoadSlide failed: %v", err)
	}
	if cfg.Animation.Speed != 25 {
		t.Errorf("Animation.Speed = %v, want 25", cfg.Animation.Speed)
	}
	if cfg.Defaults.Size != 5 || cfg.Defaults.Theme != "grid" {
		t.Errorf("Defaults = %+v, want size 5 grid", cfg.Defaults)
	}
	if cfg.Board.CellSize != 100 {
		t.Errorf("Board.CellSize = %v, want default 100", cfg.Board.CellSize)
	}
}

func TestLoadSlideErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSlide(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file: expected error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSlide(bad); err == nil {
		t.Error("malformed yaml: expected error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("animation:\n  speed: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSlide(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero speed error = %v, want ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SlideConfig)
	}{
		{"cell size", func(c *SlideConfig) { c.Board.CellSize = -1 }},
		{"shuffle factor", func(c *SlideConfig) { c.Board.ShuffleFactor = 0 }},
		{"speed", func(c *SlideConfig) { c.Animation.Speed = 0 }},
		{"hint ticks", func(c *SlideConfig) { c.Hint.Ticks = 0 }},
		{"volume", func(c *SlideConfig) { c.Sound.Volume = 1.5 }},
		{"window", func(c *SlideConfig) { c.Window.Width = 0 }},
		{"default size", func(c *SlideConfig) { c.Defaults.Size = 7 }},
		{"default theme", func(c *SlideConfig) { c.Defaults.Theme = "sepia" }},
		{"empty theme", func(c *SlideConfig) { c.Defaults.Theme = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSlideConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input    string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"easy", DifficultyEasy, false},
		{" Medium ", DifficultyMedium, false},
		{"HARD", DifficultyHard, false},
		{"3", DifficultyEasy, false},
		{"4x4", DifficultyMedium, false},
		{"5", DifficultyHard, false},
		{"6", "", true},
		{"4x5", "", true},
		{"insane", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestPresetLabels(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		title  string
		id     string
	}{
		{DifficultyEasy, "Easy (3x3)", "slide3"},
		{DifficultyMedium, "Medium (4x4)", "slide4"},
		{DifficultyHard, "Hard (5x5)", "slide5"},
	}

	for _, tt := range tests {
		if got := tt.preset.Title(); got != tt.title {
			t.Errorf("%s.Title() = %q, want %q", tt.preset, got, tt.title)
		}
		if got := tt.preset.GameID(); got != tt.id {
			t.Errorf("%s.GameID() = %q, want %q", tt.preset, got, tt.id)
		}
	}
}
