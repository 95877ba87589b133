package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

// Theme selects how tiles are decorated.
type Theme int

const (
	ThemeNumbers  Theme = iota // solid tiles with their number
	ThemeGrid                  // one generated color per solved cell
	ThemeGradient              // a generated gradient picture, shown as "Nature"
)

// ErrUnknownTheme is returned by ParseTheme for unrecognized names.
var ErrUnknownTheme = errors.New("puzzle: unknown theme")

var themeNames = map[Theme]string{
	ThemeNumbers:  "numbers",
	ThemeGrid:     "grid",
	ThemeGradient: "gradient",
}

var themeTitles = map[Theme]string{
	ThemeNumbers:  "Numbers",
	ThemeGrid:     "Grid",
	ThemeGradient: "Nature",
}

// AllThemes returns every theme in menu order.
func AllThemes() []Theme {
	return []Theme{ThemeNumbers, ThemeGrid, ThemeGradient}
}

// ParseTheme accepts a theme name or menu title, case-insensitively.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "numbers", "number":
		return ThemeNumbers, nil
	case "grid":
		return ThemeGrid, nil
	case "gradient", "nature":
		return ThemeGradient, nil
	}
	return ThemeNumbers, fmt.Errorf("%w %q", ErrUnknownTheme, s)
}

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	_, ok := themeNames[t]
	return ok
}

// String returns the theme's config name.
func (t Theme) String() string {
	if name, ok := themeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("theme(%d)", int(t))
}

// Title returns the theme's menu label.
func (t Theme) Title() string {
	if title, ok := themeTitles[t]; ok {
		return title
	}
	return t.String()
}

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

var (
	tileBlue = RGB{0, 0, 255}
	black    = RGB{0, 0, 0}
)

// Palette describes how a theme paints the solved picture. Sample is
// evaluated in board pixels of the solved arrangement, so each tile carries
// the part of the picture at its home cell.
type Palette struct {
	Theme    Theme
	Labeled  bool // draw the tile number
	Bordered bool // outline each tile in black
	Border   RGB
	sample   func(px, py, boardPx, size int) RGB
}

var palettes = map[Theme]Palette{
	ThemeNumbers: {
		Theme:    ThemeNumbers,
		Labeled:  true,
		Bordered: true,
		Border:   black,
		sample:   func(_, _, _, _ int) RGB { return tileBlue },
	},
	ThemeGrid: {
		Theme:    ThemeGrid,
		Bordered: true,
		Border:   black,
		sample:   gridSample,
	},
	ThemeGradient: {
		Theme:    ThemeGradient,
		Bordered: true,
		Border:   black,
		sample:   gradientSample,
	},
}

// PaletteFor returns the palette of t, falling back to Numbers.
func PaletteFor(t Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[ThemeNumbers]
}

// Sample returns the picture color at board pixel (px, py) of a boardPx-wide
// board with size cells per side.
func (p Palette) Sample(px, py, boardPx, size int) RGB {
	return p.sample(px, py, boardPx, size)
}

// TileColor returns the color at the center of id's home cell.
func (p Palette) TileColor(id, size, boardPx int) RGB {
	home := HomeOf(id, size)
	cell := boardPx / size
	return p.Sample(home.X*cell+cell/2, home.Y*cell+cell/2, boardPx, size)
}

// GridColor returns the Grid theme color of cell (x, y).
func GridColor(x, y int) RGB {
	return RGB{
		R: uint8((x * 50) % 255),
		G: uint8((y * 50) % 255),
		B: uint8(((x + y) * 30) % 255),
	}
}

func gridSample(px, py, boardPx, size int) RGB {
	if boardPx <= 0 {
		return GridColor(0, 0)
	}
	x := clampCell(px*size/boardPx, size)
	y := clampCell(py*size/boardPx, size)
	return GridColor(x, y)
}

// GradientColor returns the gradient theme color at board pixel (x, y).
func GradientColor(x, y, boardPx int) RGB {
	if boardPx <= 0 {
		return RGB{}
	}
	return RGB{
		R: uint8(255 * x / boardPx),
		G: uint8(255 * y / boardPx),
		B: uint8(255 * (x + y) / (2 * boardPx)),
	}
}

func gradientSample(px, py, boardPx, _ int) RGB {
	return GradientColor(clampCell(px, boardPx), clampCell(py, boardPx), boardPx)
}

func clampCell(v, size int) int {
	if v < 0 {
		return 0
	}
	if v >= size {
		return size - 1
	}
	return v
}
