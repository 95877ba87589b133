package puzzle

import (
	"errors"
	"testing"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"numbers", ThemeNumbers, false},
		{"Numbers", ThemeNumbers, false},
		{"GRID", ThemeGrid, false},
		{"gradient", ThemeGradient, false},
		{"Nature", ThemeGradient, false},
		{" grid ", ThemeGrid, false},
		{"photo", ThemeNumbers, true},
		{"", ThemeNumbers, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTheme(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTheme(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownTheme) {
				t.Errorf("ParseTheme(%q) error = %v, want ErrUnknownTheme", tt.in, err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTheme(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestThemeNames(t *testing.T) {
	for _, th := range AllThemes() {
		parsed, err := ParseTheme(th.String())
		if err != nil || parsed != th {
			t.Errorf("ParseTheme(%q) = %v, %v", th.String(), parsed, err)
		}
	}
	if ThemeGradient.Title() != "Nature" {
		t.Errorf("ThemeGradient.Title() = %q, want %q", ThemeGradient.Title(), "Nature")
	}
	if Theme(9).Valid() {
		t.Error("Theme(9).Valid() = true")
	}
}

func TestGridColor(t *testing.T) {
	tests := []struct {
		x, y int
		want RGB
	}{
		{0, 0, RGB{0, 0, 0}},
		{2, 3, RGB{100, 150, 150}},
		{4, 4, RGB{200, 200, 240}},
		{6, 0, RGB{45, 0, 180}},
	}

	for _, tt := range tests {
		if got := GridColor(tt.x, tt.y); got != tt.want {
			t.Errorf("GridColor(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGradientColor(t *testing.T) {
	tests := []struct {
		x, y, board int
		want        RGB
	}{
		{0, 0, 500, RGB{0, 0, 0}},
		{250, 0, 500, RGB{127, 0, 63}},
		{499, 499, 500, RGB{254, 254, 254}},
		{10, 10, 0, RGB{}},
	}

	for _, tt := range tests {
		if got := GradientColor(tt.x, tt.y, tt.board); got != tt.want {
			t.Errorf("GradientColor(%d, %d, %d) = %v, want %v", tt.x, tt.y, tt.board, got, tt.want)
		}
	}
}

func TestPaletteTileColor(t *testing.T) {
	// Tile 6 of a 3x3 board lives at (2,1); a 300px board has 100px cells.
	if got := PaletteFor(ThemeGrid).TileColor(6, 3, 300); got != GridColor(2, 1) {
		t.Errorf("grid TileColor(6) = %v, want %v", got, GridColor(2, 1))
	}
	if got := PaletteFor(ThemeGradient).TileColor(6, 3, 300); got != GradientColor(250, 150, 300) {
		t.Errorf("gradient TileColor(6) = %v, want %v", got, GradientColor(250, 150, 300))
	}
	if got := PaletteFor(ThemeNumbers).TileColor(6, 3, 300); got != (RGB{0, 0, 255}) {
		t.Errorf("numbers TileColor(6) = %v, want blue", got)
	}
	if !PaletteFor(ThemeNumbers).Labeled || PaletteFor(ThemeGrid).Labeled {
		t.Error("only the numbers palette is labeled")
	}
	if PaletteFor(Theme(42)).Theme != ThemeNumbers {
		t.Error("unknown theme should fall back to numbers")
	}
}
