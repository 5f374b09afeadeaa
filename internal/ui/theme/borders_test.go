package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tessera/internal/domain/entity"
)

func TestBorderGlyphs_DefaultMatchesDomainDefault(t *testing.T) {
	glyphs, err := BorderGlyphs(DefaultBorderStyle)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultBorderGlyphs(), glyphs)
}

func TestBorderGlyphs_AllPresetsValidate(t *testing.T) {
	for _, name := range BorderStyles() {
		t.Run(name, func(t *testing.T) {
			glyphs, err := BorderGlyphs(name)
			require.NoError(t, err)
			assert.NoError(t, glyphs.Validate())
		})
	}
}

func TestBorderGlyphs_NameIsNormalised(t *testing.T) {
	glyphs, err := BorderGlyphs("  Rounded ")
	require.NoError(t, err)
	assert.Equal(t, "╭", glyphs.TopLeft)
}

func TestBorderGlyphs_UnknownStyle(t *testing.T) {
	_, err := BorderGlyphs("dotted")
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidBorder)
	assert.Contains(t, err.Error(), "double")
}

func TestBorderStyles_Sorted(t *testing.T) {
	assert.Equal(t, []string{"double", "normal", "rounded", "thick"}, BorderStyles())
}

func TestFromLipgloss(t *testing.T) {
	glyphs := FromLipgloss(lipgloss.NormalBorder())
	assert.Equal(t, entity.BorderGlyphs{
		Horizontal:  "─",
		Vertical:    "│",
		TopLeft:     "┌",
		TopRight:    "┐",
		BottomRight: "┘",
		BottomLeft:  "└",
	}, glyphs)
}
