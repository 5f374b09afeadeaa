// Package entity defines the layout domain: frames, their geometry and the split tree.
package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is returned when a frame would end up with a
// non-positive extent or an anchor outside the terminal surface.
var ErrInvalidGeometry = errors.New("invalid frame geometry")

// Point is a 1-indexed (row, column) terminal coordinate.
type Point struct {
	Row    int
	Column int
}

// Origin is the top-left cell of the terminal.
var Origin = Point{Row: 1, Column: 1}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
}

// FrameRect represents a frame's position and size on the terminal surface.
type FrameRect struct {
	FrameID FrameID
	TopLeft Point
	Rows    int
	Columns int
}

// Area returns the number of cells covered by the rectangle.
func (r FrameRect) Area() int {
	return r.Rows * r.Columns
}

// Bottom returns the last row covered by the rectangle (inclusive).
func (r FrameRect) Bottom() int {
	return r.TopLeft.Row + r.Rows - 1
}

// Right returns the last column covered by the rectangle (inclusive).
func (r FrameRect) Right() int {
	return r.TopLeft.Column + r.Columns - 1
}

// Overlaps reports whether two rectangles share at least one cell.
func (r FrameRect) Overlaps(o FrameRect) bool {
	return r.TopLeft.Row <= o.Bottom() && o.TopLeft.Row <= r.Bottom() &&
		r.TopLeft.Column <= o.Right() && o.TopLeft.Column <= r.Right()
}

// Contains reports whether o lies entirely inside r.
func (r FrameRect) Contains(o FrameRect) bool {
	return o.TopLeft.Row >= r.TopLeft.Row && o.Bottom() <= r.Bottom() &&
		o.TopLeft.Column >= r.TopLeft.Column && o.Right() <= r.Right()
}

// validateGeometry checks a frame's size and anchor before any state is touched.
func validateGeometry(rows, columns int, topLeft Point) error {
	if rows <= 0 || columns <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidGeometry, rows, columns)
	}
	if topLeft.Row < 1 || topLeft.Column < 1 {
		return fmt.Errorf("%w: anchor %s", ErrInvalidGeometry, topLeft)
	}
	return nil
}

// SplitExtent divides an extent into the part kept by the original frame
// and the part handed to the new frame. The new frame receives the extra
// cell when n is odd.
func SplitExtent(n int) (kept, added int, err error) {
	if n < 2 {
		return 0, 0, fmt.Errorf("%w: cannot split extent %d", ErrInvalidGeometry, n)
	}
	kept = n / 2
	return kept, n - kept, nil
}
