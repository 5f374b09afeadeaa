package entity_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tessera/internal/domain/entity"
)

func TestNewFrame_BlankBuffer(t *testing.T) {
	f, err := entity.NewFrame("f1", 3, 4, entity.Point{Row: 2, Column: 5})
	require.NoError(t, err)

	assert.Equal(t, 3, f.Rows)
	assert.Equal(t, 4, f.Columns)
	assert.Equal(t, entity.Point{Row: 2, Column: 5}, f.TopLeft)
	assert.False(t, f.HasBorder)
	require.Len(t, f.Buffer, 3)
	for _, row := range f.Buffer {
		require.Len(t, row, 4)
		for _, cell := range row {
			assert.Equal(t, entity.BlankCell, cell)
		}
	}
}

func TestNewFrame_InvalidGeometry(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		columns int
		topLeft entity.Point
	}{
		{name: "zero rows", rows: 0, columns: 5, topLeft: entity.Origin},
		{name: "negative columns", rows: 5, columns: -1, topLeft: entity.Origin},
		{name: "anchor row below one", rows: 5, columns: 5, topLeft: entity.Point{Row: 0, Column: 1}},
		{name: "anchor column below one", rows: 5, columns: 5, topLeft: entity.Point{Row: 1, Column: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := entity.NewFrame("f", tt.rows, tt.columns, tt.topLeft)
			assert.Nil(t, f)
			assert.ErrorIs(t, err, entity.ErrInvalidGeometry)
		})
	}
}

func TestAddBorder_FiveByFive(t *testing.T) {
	f, err := entity.NewFrame("f", 5, 5, entity.Origin)
	require.NoError(t, err)

	f.AddBorder()

	glyphs := entity.DefaultBorderGlyphs()
	corners := []string{f.Buffer[0][0], f.Buffer[0][4], f.Buffer[4][4], f.Buffer[4][0]}
	assert.Equal(t, []string{glyphs.TopLeft, glyphs.TopRight, glyphs.BottomRight, glyphs.BottomLeft}, corners)

	seen := map[string]bool{}
	for _, c := range corners {
		assert.False(t, seen[c], "corner glyph %q repeated", c)
		seen[c] = true
	}

	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			cell := f.Buffer[r][c]
			isCorner := (r == 0 || r == 4) && (c == 0 || c == 4)
			switch {
			case isCorner:
				continue
			case r == 0 || r == 4:
				assert.Equal(t, glyphs.Horizontal, cell, "cell (%d,%d)", r, c)
			case c == 0 || c == 4:
				assert.Equal(t, glyphs.Vertical, cell, "cell (%d,%d)", r, c)
			default:
				assert.Equal(t, entity.BlankCell, cell, "interior cell (%d,%d)", r, c)
			}
		}
	}
	assert.True(t, f.HasBorder)
}

func TestAddBorder_Idempotent(t *testing.T) {
	f, err := entity.NewFrame("f", 4, 7, entity.Origin)
	require.NoError(t, err)

	f.AddBorder()
	once := f.String()
	f.AddBorder()

	assert.Equal(t, once, f.String())
}

func TestAddBorder_SingleRow(t *testing.T) {
	f, err := entity.NewFrame("f", 1, 3, entity.Origin)
	require.NoError(t, err)

	f.AddBorder()

	// Bottom corners are drawn last and win on a single row.
	assert.Equal(t, "╚═╝", f.String())
}

func TestResize_DiscardsContentAndKeepsBorder(t *testing.T) {
	f, err := entity.NewFrame("f", 3, 3, entity.Origin)
	require.NoError(t, err)
	f.AddBorder()
	f.Buffer[1][1] = "x"

	require.NoError(t, f.Resize(4, 6, entity.Point{Row: 2, Column: 3}))

	assert.True(t, f.HasBorder)
	assert.Equal(t, entity.Point{Row: 2, Column: 3}, f.TopLeft)

	want, err := entity.NewFrame("want", 4, 6, entity.Point{Row: 2, Column: 3})
	require.NoError(t, err)
	want.AddBorder()
	assert.Equal(t, want.Buffer, f.Buffer)
}

func TestResize_WithoutBorderIsBlank(t *testing.T) {
	f, err := entity.NewFrame("f", 2, 2, entity.Origin)
	require.NoError(t, err)
	f.Buffer[0][0] = "x"

	require.NoError(t, f.Resize(2, 3, entity.Origin))

	assert.False(t, f.HasBorder)
	assert.Equal(t, "   \n   ", f.String())
}

func TestResize_InvalidLeavesFrameUntouched(t *testing.T) {
	f, err := entity.NewFrame("f", 2, 2, entity.Origin)
	require.NoError(t, err)
	f.Buffer[0][0] = "x"

	err = f.Resize(0, 2, entity.Origin)

	assert.ErrorIs(t, err, entity.ErrInvalidGeometry)
	assert.Equal(t, 2, f.Rows)
	assert.Equal(t, "x", f.Buffer[0][0])
}

func TestString_NoTrailingSeparator(t *testing.T) {
	f, err := entity.NewFrame("f", 3, 2, entity.Origin)
	require.NoError(t, err)

	out := f.String()

	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestSetBorderGlyphs_RedrawsExistingBorder(t *testing.T) {
	f, err := entity.NewFrame("f", 3, 3, entity.Origin)
	require.NoError(t, err)
	f.AddBorder()

	require.NoError(t, f.SetBorderGlyphs(entity.BorderGlyphs{
		Horizontal: "-", Vertical: "|",
		TopLeft: "a", TopRight: "b", BottomRight: "c", BottomLeft: "d",
	}))

	assert.Equal(t, "a-b\n| |\nd-c", f.String())
}

func TestSetBorderGlyphs_RejectsWideGlyph(t *testing.T) {
	f, err := entity.NewFrame("f", 3, 3, entity.Origin)
	require.NoError(t, err)
	f.AddBorder()
	before := f.String()

	wide := entity.DefaultBorderGlyphs()
	wide.Horizontal = "世"
	assert.ErrorIs(t, f.SetBorderGlyphs(wide), entity.ErrInvalidBorder)

	assert.Equal(t, entity.DefaultBorderGlyphs(), f.Border)
	assert.Equal(t, before, f.String())
}

func TestBorderGlyphs_Validate(t *testing.T) {
	assert.NoError(t, entity.DefaultBorderGlyphs().Validate())

	wide := entity.DefaultBorderGlyphs()
	wide.Horizontal = "世"
	assert.ErrorIs(t, wide.Validate(), entity.ErrInvalidBorder)

	dup := entity.DefaultBorderGlyphs()
	dup.TopRight = dup.TopLeft
	assert.ErrorIs(t, dup.Validate(), entity.ErrInvalidBorder)
}

func TestRemoveBorder(t *testing.T) {
	f, err := entity.NewFrame("f", 3, 3, entity.Origin)
	require.NoError(t, err)
	f.AddBorder()

	f.RemoveBorder()
	assert.False(t, f.HasBorder)
	assert.Equal(t, "   \n   \n   ", f.String())

	require.NoError(t, f.Resize(3, 4, entity.Origin))
	assert.Equal(t, entity.BlankCell, f.Buffer[0][0], "resize no longer redraws the border")
}
