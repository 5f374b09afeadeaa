package entity

import (
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"
)

// ErrInvalidBorder is returned when a border glyph set cannot be drawn
// into single terminal cells.
var ErrInvalidBorder = errors.New("invalid border glyphs")

// BorderGlyphs is the set of glyphs used to decorate a frame's perimeter.
type BorderGlyphs struct {
	Horizontal  string
	Vertical    string
	TopLeft     string
	TopRight    string
	BottomRight string
	BottomLeft  string
}

// DefaultBorderGlyphs returns the double-line border set.
func DefaultBorderGlyphs() BorderGlyphs {
	return BorderGlyphs{
		Horizontal:  "═",
		Vertical:    "║",
		TopLeft:     "╔",
		TopRight:    "╗",
		BottomRight: "╝",
		BottomLeft:  "╚",
	}
}

// Validate checks that every glyph occupies exactly one cell and that the
// four corners are distinct from each other.
func (b BorderGlyphs) Validate() error {
	glyphs := map[string]string{
		"horizontal":   b.Horizontal,
		"vertical":     b.Vertical,
		"top_left":     b.TopLeft,
		"top_right":    b.TopRight,
		"bottom_right": b.BottomRight,
		"bottom_left":  b.BottomLeft,
	}
	for name, g := range glyphs {
		if w := runewidth.StringWidth(g); w != 1 {
			return fmt.Errorf("%w: %s glyph %q has width %d", ErrInvalidBorder, name, g, w)
		}
	}

	corners := []string{b.TopLeft, b.TopRight, b.BottomRight, b.BottomLeft}
	seen := make(map[string]struct{}, len(corners))
	for _, c := range corners {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: corner glyph %q used twice", ErrInvalidBorder, c)
		}
		seen[c] = struct{}{}
	}
	return nil
}
