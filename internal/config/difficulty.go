package config

import (
	"fmt"
	"strconv"
	"strings"
)

// DifficultyPreset represents a named grid size.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

var presetSizes = map[DifficultyPreset]int{
	DifficultyEasy:   3,
	DifficultyMedium: 4,
	DifficultyHard:   5,
}

// AllPresets returns the presets in menu order.
func AllPresets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Size returns the grid size of the preset.
func (p DifficultyPreset) Size() int {
	return presetSizes[p]
}

// Title returns the menu label, e.g. "Easy (3x3)".
func (p DifficultyPreset) Title() string {
	n := p.Size()
	name := string(p)
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return fmt.Sprintf("%s (%dx%d)", name, n, n)
}

// GameID returns the registry ID of the preset's game.
func (p DifficultyPreset) GameID() string {
	return GameIDForSize(p.Size())
}

// GameIDForSize returns the registry ID for an N×N puzzle.
func GameIDForSize(size int) string {
	return "slide" + strconv.Itoa(size)
}

// ParseDifficulty accepts a preset name, a bare size ("4") or "4x4".
func ParseDifficulty(s string) (DifficultyPreset, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if _, ok := presetSizes[DifficultyPreset(v)]; ok {
		return DifficultyPreset(v), nil
	}
	if i := strings.IndexByte(v, 'x'); i > 0 && v[:i] == v[i+1:] {
		v = v[:i]
	}
	if n, err := strconv.Atoi(v); err == nil {
		return PresetForSize(n)
	}
	return "", fmt.Errorf("unknown difficulty %q (use easy, medium, hard or 3, 4, 5)", s)
}

// PresetForSize maps a grid size back to its preset.
func PresetForSize(size int) (DifficultyPreset, error) {
	for _, p := range AllPresets() {
		if p.Size() == size {
			return p, nil
		}
	}
	return "", fmt.Errorf("unsupported grid size %d (use 3, 4 or 5)", size)
}
