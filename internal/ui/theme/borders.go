// Package theme maps named border presets and terminal styles onto the layout domain.
package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tessera/internal/domain/entity"
)

// DefaultBorderStyle is the preset used when none is configured.
const DefaultBorderStyle = "double"

var borderPresets = map[string]func() lipgloss.Border{
	"double":  lipgloss.DoubleBorder,
	"normal":  lipgloss.NormalBorder,
	"rounded": lipgloss.RoundedBorder,
	"thick":   lipgloss.ThickBorder,
}

// BorderStyles returns the names of the available presets, sorted.
func BorderStyles() []string {
	names := make([]string, 0, len(borderPresets))
	for name := range borderPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BorderGlyphs resolves a preset name to a frame border glyph set.
func BorderGlyphs(name string) (entity.BorderGlyphs, error) {
	preset, ok := borderPresets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return entity.BorderGlyphs{}, fmt.Errorf("%w: unknown style %q (available: %s)",
			entity.ErrInvalidBorder, name, strings.Join(BorderStyles(), ", "))
	}

	glyphs := FromLipgloss(preset())
	if err := glyphs.Validate(); err != nil {
		return entity.BorderGlyphs{}, fmt.Errorf("border style %q: %w", name, err)
	}
	return glyphs, nil
}

// FromLipgloss converts a lipgloss border into frame border glyphs.
// Frames draw one rule glyph per axis, so the top and left edges are used.
func FromLipgloss(b lipgloss.Border) entity.BorderGlyphs {
	return entity.BorderGlyphs{
		Horizontal:  b.Top,
		Vertical:    b.Left,
		TopLeft:     b.TopLeft,
		TopRight:    b.TopRight,
		BottomRight: b.BottomRight,
		BottomLeft:  b.BottomLeft,
	}
}
