package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTilingViolation is returned when frame rectangles leave a gap,
// overlap, or spill outside the surface they are supposed to tile.
var ErrTilingViolation = errors.New("frames do not tile the surface")

// ErrLeafNotFound is returned when no leaf holds the requested frame.
var ErrLeafNotFound = errors.New("frame is not a leaf of the layout tree")

// SplitAxis indicates how an internal node divides its rectangle.
type SplitAxis int

const (
	AxisNone       SplitAxis = iota // Leaf node
	AxisVertical                    // Columns divided: first=left, second=right
	AxisHorizontal                  // Rows divided: first=top, second=bottom
)

func (a SplitAxis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return "none"
	}
}

// ParseSplitAxis accepts "v"/"vertical" and "h"/"horizontal".
func ParseSplitAxis(s string) (SplitAxis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v", "vertical":
		return AxisVertical, nil
	case "h", "horizontal":
		return AxisHorizontal, nil
	}
	return AxisNone, fmt.Errorf("unknown split axis %q (want v or h)", s)
}

// NodeIndex references a node inside a LayoutTree arena.
type NodeIndex int

// NoNode marks an absent parent or child reference.
const NoNode NodeIndex = -1

// LayoutNode is either a leaf holding a frame or an internal split node
// holding two child references.
type LayoutNode struct {
	Axis   SplitAxis
	Parent NodeIndex
	First  NodeIndex
	Second NodeIndex
	Frame  *Frame // Non-nil for leaf nodes
}

// IsLeaf returns true if this node holds a frame.
func (n LayoutNode) IsLeaf() bool {
	return n.Frame != nil && n.Axis == AxisNone
}

// LayoutTree is a binary split tree stored in an arena.
// Nodes are never removed; a split turns a leaf into an internal node in
// place, so indices handed out earlier stay valid.
type LayoutTree struct {
	nodes  []LayoutNode
	root   NodeIndex
	leaves map[FrameID]NodeIndex
}

// NewLayoutTree creates a tree with a single leaf for the root frame.
func NewLayoutTree(root *Frame) *LayoutTree {
	t := &LayoutTree{
		leaves: make(map[FrameID]NodeIndex),
	}
	t.root = t.push(LayoutNode{
		Axis:   AxisNone,
		Parent: NoNode,
		First:  NoNode,
		Second: NoNode,
		Frame:  root,
	})
	return t
}

func (t *LayoutTree) push(n LayoutNode) NodeIndex {
	idx := NodeIndex(len(t.nodes))
	t.nodes = append(t.nodes, n)
	if n.IsLeaf() {
		t.leaves[n.Frame.ID] = idx
	}
	return idx
}

// Root returns the index of the root node.
func (t *LayoutTree) Root() NodeIndex {
	return t.root
}

// Len returns the number of nodes in the arena.
func (t *LayoutTree) Len() int {
	return len(t.nodes)
}

// Node returns the node at idx.
func (t *LayoutTree) Node(idx NodeIndex) (LayoutNode, bool) {
	if idx < 0 || int(idx) >= len(t.nodes) {
		return LayoutNode{}, false
	}
	return t.nodes[idx], true
}

// LeafOf returns the leaf index holding the given frame.
func (t *LayoutTree) LeafOf(id FrameID) (NodeIndex, bool) {
	idx, ok := t.leaves[id]
	return idx, ok
}

// Split turns the leaf holding target into an internal node along axis.
// The target frame becomes the first child and added the second.
// Returns the index of the new internal node.
func (t *LayoutTree) Split(target FrameID, axis SplitAxis, added *Frame) (NodeIndex, error) {
	if axis == AxisNone {
		return NoNode, fmt.Errorf("split axis is required")
	}
	if added == nil {
		return NoNode, fmt.Errorf("added frame is required")
	}
	idx, ok := t.leaves[target]
	if !ok {
		return NoNode, fmt.Errorf("%w: %s", ErrLeafNotFound, target)
	}

	old := t.nodes[idx].Frame
	first := t.push(LayoutNode{Axis: AxisNone, Parent: idx, First: NoNode, Second: NoNode, Frame: old})
	second := t.push(LayoutNode{Axis: AxisNone, Parent: idx, First: NoNode, Second: NoNode, Frame: added})

	t.nodes[idx].Axis = axis
	t.nodes[idx].Frame = nil
	t.nodes[idx].First = first
	t.nodes[idx].Second = second

	return idx, nil
}

// Walk traverses the tree depth-first, first child before second.
// Returns early if fn returns false.
func (t *LayoutTree) Walk(fn func(NodeIndex, LayoutNode) bool) {
	t.walk(t.root, fn)
}

func (t *LayoutTree) walk(idx NodeIndex, fn func(NodeIndex, LayoutNode) bool) bool {
	if idx == NoNode {
		return true
	}
	n := t.nodes[idx]
	if !fn(idx, n) {
		return false
	}
	if n.IsLeaf() {
		return true
	}
	return t.walk(n.First, fn) && t.walk(n.Second, fn)
}

// Leaves returns all frames in spatial order (left-to-right, top-to-bottom per split).
func (t *LayoutTree) Leaves() []*Frame {
	var frames []*Frame
	t.Walk(func(_ NodeIndex, n LayoutNode) bool {
		if n.IsLeaf() {
			frames = append(frames, n.Frame)
		}
		return true
	})
	return frames
}

// LeafCount returns the number of leaf nodes.
func (t *LayoutTree) LeafCount() int {
	return len(t.leaves)
}

// Layout derives every leaf rectangle from bounds by applying the split
// rule recursively. Nothing is mutated; callers apply the result.
func (t *LayoutTree) Layout(bounds FrameRect) (map[FrameID]FrameRect, error) {
	if err := validateGeometry(bounds.Rows, bounds.Columns, bounds.TopLeft); err != nil {
		return nil, err
	}
	rects := make(map[FrameID]FrameRect, len(t.leaves))
	if err := t.layout(t.root, bounds, rects); err != nil {
		return nil, err
	}
	return rects, nil
}

func (t *LayoutTree) layout(idx NodeIndex, rect FrameRect, out map[FrameID]FrameRect) error {
	n := t.nodes[idx]
	if n.IsLeaf() {
		rect.FrameID = n.Frame.ID
		out[n.Frame.ID] = rect
		return nil
	}

	first, second := rect, rect
	switch n.Axis {
	case AxisVertical:
		kept, added, err := SplitExtent(rect.Columns)
		if err != nil {
			return err
		}
		first.Columns = kept
		second.Columns = added
		second.TopLeft.Column = rect.TopLeft.Column + kept
	case AxisHorizontal:
		kept, added, err := SplitExtent(rect.Rows)
		if err != nil {
			return err
		}
		first.Rows = kept
		second.Rows = added
		second.TopLeft.Row = rect.TopLeft.Row + kept
	}

	if err := t.layout(n.First, first, out); err != nil {
		return err
	}
	return t.layout(n.Second, second, out)
}

// Validate checks that the current leaf frames exactly tile bounds:
// every frame lies inside, no two frames overlap, and the areas sum up.
func (t *LayoutTree) Validate(bounds FrameRect) error {
	return ValidateTiling(bounds, t.Leaves())
}

// ValidateTiling checks that frames exactly tile bounds.
func ValidateTiling(bounds FrameRect, frames []*Frame) error {
	total := 0
	for i, f := range frames {
		r := f.Rect()
		if !bounds.Contains(r) {
			return fmt.Errorf("%w: frame %s at %s (%dx%d) exceeds bounds",
				ErrTilingViolation, f.ID, r.TopLeft, r.Rows, r.Columns)
		}
		for _, other := range frames[i+1:] {
			if r.Overlaps(other.Rect()) {
				return fmt.Errorf("%w: frames %s and %s overlap", ErrTilingViolation, f.ID, other.ID)
			}
		}
		total += r.Area()
	}
	if total != bounds.Area() {
		return fmt.Errorf("%w: frames cover %d of %d cells", ErrTilingViolation, total, bounds.Area())
	}
	return nil
}
