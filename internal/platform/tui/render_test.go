package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-slide/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(1, 1, "cd")

	got := RenderScreen(s)
	want := "ab   \n cd  "
	if got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextColor(0, 0, "12", core.ColorWhite, core.ColorBlue)
	s.DrawText(3, 0, "ok")

	got := RenderScreen(s)
	if !strings.Contains(got, "12") || !strings.Contains(got, "ok") {
		t.Errorf("RenderScreen() = %q, want both runs present", got)
	}
	if strings.Count(got, "\n") != 0 {
		t.Errorf("RenderScreen() has %d newlines, want 0", strings.Count(got, "\n"))
	}
}

func TestStyleForCached(t *testing.T) {
	a := styleFor(core.ColorWhite, core.RGB(0, 0, 255))
	b := styleFor(core.ColorWhite, core.RGB(0, 0, 255))
	if a.Render("x") != b.Render("x") {
		t.Error("styleFor returned different styles for the same pair")
	}
}
