package entity

import "strings"

// FrameID uniquely identifies a frame within a frame manager.
type FrameID string

// BlankCell is the glyph a freshly allocated buffer is filled with.
const BlankCell = " "

// Frame is a fixed-position, fixed-size rectangular glyph buffer.
// Frames tile the terminal like windows in a tiling window manager:
// there is one root frame, and splits carve new frames out of existing ones.
type Frame struct {
	ID      FrameID
	Rows    int
	Columns int
	TopLeft Point

	// Buffer holds one glyph per cell, row-major.
	// Its dimensions always equal (Rows, Columns).
	Buffer [][]string

	HasBorder bool
	Border    BorderGlyphs
}

// NewFrame creates a frame of the given size anchored at topLeft.
// The buffer starts blank and without a border.
func NewFrame(id FrameID, rows, columns int, topLeft Point) (*Frame, error) {
	if err := validateGeometry(rows, columns, topLeft); err != nil {
		return nil, err
	}

	return &Frame{
		ID:      id,
		Rows:    rows,
		Columns: columns,
		TopLeft: topLeft,
		Buffer:  blankBuffer(rows, columns),
		Border:  DefaultBorderGlyphs(),
	}, nil
}

// AddBorder draws the border glyphs onto the outer ring of the buffer.
// Calling it again yields the same buffer.
func (f *Frame) AddBorder() {
	for r := range f.Buffer {
		for c := range f.Buffer[r] {
			if c == 0 || c == f.Columns-1 {
				f.Buffer[r][c] = f.Border.Vertical
			}
			if r == 0 || r == f.Rows-1 {
				f.Buffer[r][c] = f.Border.Horizontal
			}
		}
	}

	// Corners last so the rules above never clobber them.
	last, lastCol := f.Rows-1, f.Columns-1
	f.Buffer[0][0] = f.Border.TopLeft
	f.Buffer[0][lastCol] = f.Border.TopRight
	f.Buffer[last][lastCol] = f.Border.BottomRight
	f.Buffer[last][0] = f.Border.BottomLeft

	f.HasBorder = true
}

// RemoveBorder clears the buffer back to blank cells and stops the border
// from being redrawn on resize.
func (f *Frame) RemoveBorder() {
	f.HasBorder = false
	f.Buffer = blankBuffer(f.Rows, f.Columns)
}

// SetBorderGlyphs replaces the glyph set used by AddBorder and redraws the
// border when one is already present. An invalid set leaves the frame untouched.
func (f *Frame) SetBorderGlyphs(glyphs BorderGlyphs) error {
	if err := glyphs.Validate(); err != nil {
		return err
	}
	f.Border = glyphs
	if f.HasBorder {
		f.AddBorder()
	}
	return nil
}

// Resize replaces the frame geometry and reallocates a blank buffer.
// Prior content is discarded; a border, if present, is drawn again for the
// new dimensions. On error the frame is left untouched.
func (f *Frame) Resize(rows, columns int, topLeft Point) error {
	if err := validateGeometry(rows, columns, topLeft); err != nil {
		return err
	}

	f.Rows = rows
	f.Columns = columns
	f.TopLeft = topLeft
	f.Buffer = blankBuffer(rows, columns)

	if f.HasBorder {
		f.AddBorder()
	}
	return nil
}

// Rect returns the frame's assigned rectangle.
func (f *Frame) Rect() FrameRect {
	return FrameRect{
		FrameID: f.ID,
		TopLeft: f.TopLeft,
		Rows:    f.Rows,
		Columns: f.Columns,
	}
}

// Area returns the number of cells the frame covers.
func (f *Frame) Area() int {
	return f.Rows * f.Columns
}

// String renders the buffer as lines without a trailing separator.
// Useful for debugging a single frame; full-screen output goes through the manager.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow(f.Rows * (f.Columns + 1))

	for r, row := range f.Buffer {
		for _, cell := range row {
			sb.WriteString(cell)
		}
		if r != f.Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func blankBuffer(rows, columns int) [][]string {
	buf := make([][]string, rows)
	for r := range buf {
		row := make([]string, columns)
		for c := range row {
			row[c] = BlankCell
		}
		buf[r] = row
	}
	return buf
}
