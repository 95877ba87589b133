package desktop

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	buttonW     = 200
	buttonH     = 50
	buttonTop   = 200
	buttonPitch = 70
	hoverBoost  = 50
)

var (
	colorBlue  = color.RGBA{0, 0, 255, 255}
	colorGreen = color.RGBA{0, 200, 0, 255}
	colorRed   = color.RGBA{200, 0, 0, 255}
)

// Button is a labelled rectangle that lightens while the pointer is over it.
type Button struct {
	Label   string
	Rect    image.Rectangle
	Color   color.RGBA
	Hovered bool
}

// NewButton creates a button with its top-left corner at (x, y).
func NewButton(label string, x, y, w, h int, c color.RGBA) *Button {
	return &Button{Label: label, Rect: image.Rect(x, y, x+w, y+h), Color: c}
}

// Contains reports whether the window pixel (x, y) is inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// HoverColor brightens each channel by 50, capped at 255.
func HoverColor(c color.RGBA) color.RGBA {
	boost := func(v uint8) uint8 {
		return uint8(min(int(v)+hoverBoost, 255))
	}
	return color.RGBA{boost(c.R), boost(c.G), boost(c.B), c.A}
}

// Fill returns the colour the button is drawn with this frame.
func (b *Button) Fill() color.RGBA {
	if b.Hovered {
		return HoverColor(b.Color)
	}
	return b.Color
}

// Draw paints the button with a black outline and a centred white label.
func (b *Button) Draw(dst *ebiten.Image) {
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.FillRect(dst, x, y, w, h, b.Fill(), false)
	vector.StrokeRect(dst, x, y, w, h, 2, color.Black, false)

	c := b.Rect.Min.Add(b.Rect.Size().Div(2))
	drawCentered(dst, b.Label, float64(c.X), float64(c.Y), 1.5, color.White)
}

// column lays labels out as a centred column of equal buttons.
func column(windowW int, labels []string, colors []color.RGBA) []*Button {
	x := windowW/2 - buttonW/2
	out := make([]*Button, len(labels))
	for i, label := range labels {
		c := colorBlue
		if i < len(colors) {
			c = colors[i]
		}
		out[i] = NewButton(label, x, buttonTop+i*buttonPitch, buttonW, buttonH, c)
	}
	return out
}

// hitButton returns the index of the first button containing (x, y).
func hitButton(buttons []*Button, x, y int) int {
	for i, b := range buttons {
		if b.Contains(x, y) {
			return i
		}
	}
	return -1
}

func hover(buttons []*Button, x, y int) {
	for _, b := range buttons {
		b.Hovered = b.Contains(x, y)
	}
}
