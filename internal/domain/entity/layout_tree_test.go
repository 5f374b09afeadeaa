package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tessera/internal/domain/entity"
)

func newLeaf(t *testing.T, id string, rows, columns int, at entity.Point) *entity.Frame {
	t.Helper()
	f, err := entity.NewFrame(entity.FrameID(id), rows, columns, at)
	require.NoError(t, err)
	return f
}

func TestSplitExtent(t *testing.T) {
	for n := 2; n <= 101; n++ {
		kept, added, err := entity.SplitExtent(n)
		require.NoError(t, err)
		assert.Equal(t, n, kept+added)
		assert.Equal(t, n/2, kept)
		assert.Equal(t, (n+1)/2, added)
	}

	_, _, err := entity.SplitExtent(1)
	assert.ErrorIs(t, err, entity.ErrInvalidGeometry)
}

func TestLayoutTree_SplitKeepsIndices(t *testing.T) {
	root := newLeaf(t, "root", 24, 80, entity.Origin)
	tree := entity.NewLayoutTree(root)
	rootIdx := tree.Root()

	added := newLeaf(t, "right", 24, 40, entity.Point{Row: 1, Column: 41})
	idx, err := tree.Split("root", entity.AxisVertical, added)
	require.NoError(t, err)

	assert.Equal(t, rootIdx, idx)
	node, ok := tree.Node(idx)
	require.True(t, ok)
	assert.False(t, node.IsLeaf())
	assert.Equal(t, entity.AxisVertical, node.Axis)

	first, _ := tree.Node(node.First)
	second, _ := tree.Node(node.Second)
	assert.Same(t, root, first.Frame)
	assert.Same(t, added, second.Frame)
	assert.Equal(t, idx, first.Parent)
	assert.Equal(t, 2, tree.LeafCount())
	assert.Equal(t, 3, tree.Len())

	leafIdx, ok := tree.LeafOf("root")
	require.True(t, ok)
	assert.Equal(t, node.First, leafIdx)
}

func TestLayoutTree_SplitErrors(t *testing.T) {
	tree := entity.NewLayoutTree(newLeaf(t, "root", 2, 2, entity.Origin))
	other := newLeaf(t, "other", 1, 1, entity.Origin)

	_, err := tree.Split("missing", entity.AxisVertical, other)
	assert.ErrorIs(t, err, entity.ErrLeafNotFound)

	_, err = tree.Split("root", entity.AxisNone, other)
	assert.Error(t, err)

	_, err = tree.Split("root", entity.AxisVertical, nil)
	assert.Error(t, err)
}

func TestLayoutTree_Layout(t *testing.T) {
	root := newLeaf(t, "a", 5, 9, entity.Origin)
	tree := entity.NewLayoutTree(root)
	_, err := tree.Split("a", entity.AxisVertical, newLeaf(t, "b", 1, 1, entity.Origin))
	require.NoError(t, err)
	_, err = tree.Split("b", entity.AxisHorizontal, newLeaf(t, "c", 1, 1, entity.Origin))
	require.NoError(t, err)

	rects, err := tree.Layout(entity.FrameRect{TopLeft: entity.Origin, Rows: 5, Columns: 9})
	require.NoError(t, err)

	assert.Equal(t, entity.FrameRect{FrameID: "a", TopLeft: entity.Point{Row: 1, Column: 1}, Rows: 5, Columns: 4}, rects["a"])
	assert.Equal(t, entity.FrameRect{FrameID: "b", TopLeft: entity.Point{Row: 1, Column: 5}, Rows: 2, Columns: 5}, rects["b"])
	assert.Equal(t, entity.FrameRect{FrameID: "c", TopLeft: entity.Point{Row: 3, Column: 5}, Rows: 3, Columns: 5}, rects["c"])
}

func TestLayoutTree_LayoutTooSmall(t *testing.T) {
	tree := entity.NewLayoutTree(newLeaf(t, "a", 1, 4, entity.Origin))
	_, err := tree.Split("a", entity.AxisHorizontal, newLeaf(t, "b", 1, 1, entity.Origin))
	require.NoError(t, err)

	_, err = tree.Layout(entity.FrameRect{TopLeft: entity.Origin, Rows: 1, Columns: 4})
	assert.ErrorIs(t, err, entity.ErrInvalidGeometry)
}

func TestLayoutTree_LeavesInSpatialOrder(t *testing.T) {
	tree := entity.NewLayoutTree(newLeaf(t, "a", 4, 4, entity.Origin))
	_, err := tree.Split("a", entity.AxisVertical, newLeaf(t, "b", 1, 1, entity.Origin))
	require.NoError(t, err)
	_, err = tree.Split("a", entity.AxisHorizontal, newLeaf(t, "c", 1, 1, entity.Origin))
	require.NoError(t, err)

	var ids []entity.FrameID
	for _, f := range tree.Leaves() {
		ids = append(ids, f.ID)
	}
	assert.Equal(t, []entity.FrameID{"a", "c", "b"}, ids)
}

func TestValidateTiling(t *testing.T) {
	bounds := entity.FrameRect{TopLeft: entity.Origin, Rows: 2, Columns: 4}

	left := newLeaf(t, "l", 2, 2, entity.Origin)
	right := newLeaf(t, "r", 2, 2, entity.Point{Row: 1, Column: 3})
	assert.NoError(t, entity.ValidateTiling(bounds, []*entity.Frame{left, right}))

	overlap := newLeaf(t, "o", 2, 2, entity.Point{Row: 1, Column: 2})
	assert.ErrorIs(t, entity.ValidateTiling(bounds, []*entity.Frame{left, overlap}), entity.ErrTilingViolation)

	assert.ErrorIs(t, entity.ValidateTiling(bounds, []*entity.Frame{left}), entity.ErrTilingViolation)

	outside := newLeaf(t, "x", 2, 2, entity.Point{Row: 1, Column: 4})
	assert.ErrorIs(t, entity.ValidateTiling(bounds, []*entity.Frame{left, outside}), entity.ErrTilingViolation)
}

func TestParseSplitAxis(t *testing.T) {
	tests := []struct {
		in   string
		want entity.SplitAxis
	}{
		{"v", entity.AxisVertical},
		{" Vertical ", entity.AxisVertical},
		{"h", entity.AxisHorizontal},
		{"HORIZONTAL", entity.AxisHorizontal},
	}
	for _, tt := range tests {
		got, err := entity.ParseSplitAxis(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := entity.ParseSplitAxis("diagonal")
	assert.Error(t, err)
}
