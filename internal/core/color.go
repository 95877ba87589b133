package core

import "fmt"

// Color is a terminal color. Named colors hold an ANSI palette index;
// true colors hold a "#rrggbb" hex string. The empty value means the
// terminal's default.
type Color string

// Named terminal colors.
const (
	ColorDefault      Color = ""
	ColorBlack        Color = "0"
	ColorRed          Color = "1"
	ColorGreen        Color = "2"
	ColorYellow       Color = "3"
	ColorBlue         Color = "4"
	ColorMagenta      Color = "5"
	ColorCyan         Color = "6"
	ColorWhite        Color = "7"
	ColorBrightGreen  Color = "10"
	ColorBrightYellow Color = "11"
	ColorBrightWhite  Color = "15"
	ColorGray         Color = "245"
	ColorDarkGray     Color = "238"
)

// RGB returns a true color.
func RGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
