package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-slide/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per foreground/background pair.
// Sessions served over SSH render concurrently.
var styleCache = struct {
	sync.RWMutex
	styles map[colorPair]lipgloss.Style
}{styles: make(map[colorPair]lipgloss.Style)}

func styleFor(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}

	styleCache.RLock()
	style, ok := styleCache.styles[key]
	styleCache.RUnlock()
	if ok {
		return style
	}

	style = lipgloss.NewStyle()
	if !fg.IsDefault() {
		style = style.Foreground(lipgloss.Color(string(fg)))
	}
	if !bg.IsDefault() {
		style = style.Background(lipgloss.Color(string(bg)))
	}

	styleCache.Lock()
	styleCache.styles[key] = style
	styleCache.Unlock()
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			fg, bg := cell.Fg, cell.Bg

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != fg || cell.Bg != bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if fg.IsDefault() && bg.IsDefault() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(fg, bg).Render(run.String()))
		}
	}
	return sb.String()
}
