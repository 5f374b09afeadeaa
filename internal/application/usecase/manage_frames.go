package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/event"
	"github.com/bnema/tessera/internal/logging"
)

// ErrFrameNotFound is returned when an operation targets a frame the manager does not own.
var ErrFrameNotFound = errors.New("frame not found")

const (
	// RowSeparator terminates every grid row except the last.
	RowSeparator = "\n"
	// gridEnd replaces the separator after the last row so the output
	// does not scroll the terminal by one line.
	gridEnd = ""
)

// IDGenerator produces unique frame identifiers.
type IDGenerator func() string

// Option configures a FrameManager.
type Option func(*FrameManager)

// WithIDGenerator overrides the default "frame-N" identifiers.
func WithIDGenerator(gen IDGenerator) Option {
	return func(m *FrameManager) {
		if gen != nil {
			m.newID = gen
		}
	}
}

// WithBorderGlyphs sets the glyph set given to every frame the manager creates.
func WithBorderGlyphs(glyphs entity.BorderGlyphs) Option {
	return func(m *FrameManager) {
		m.border = glyphs
	}
}

// FrameManager owns every frame on the terminal surface, the split tree
// they were derived from, and the screen-sized grid they are composited into.
//
// FrameManager performs no locking. Hosts that share it between goroutines
// must serialise every call.
type FrameManager struct {
	terminal port.Terminal

	rows    int
	columns int

	// frames is the compositing order, which is creation order.
	frames []*entity.Frame
	owned  map[entity.FrameID]*entity.Frame
	tree   *entity.LayoutTree
	grid   [][]string

	handles map[entity.FrameID]event.Handle
	newID   IDGenerator
	border  entity.BorderGlyphs
}

// NewFrameManager creates a manager sized to the terminal with one root
// frame covering it, registered for resize notifications.
func NewFrameManager(ctx context.Context, terminal port.Terminal, opts ...Option) (*FrameManager, error) {
	if terminal == nil {
		return nil, fmt.Errorf("terminal is required")
	}

	m := &FrameManager{
		terminal: terminal,
		owned:    make(map[entity.FrameID]*entity.Frame),
		handles:  make(map[entity.FrameID]event.Handle),
		newID:    sequentialIDs("frame"),
		border:   entity.DefaultBorderGlyphs(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if err := m.border.Validate(); err != nil {
		return nil, err
	}

	rows, columns := terminal.Size()
	root, err := entity.NewFrame(entity.FrameID(m.newID()), rows, columns, entity.Origin)
	if err != nil {
		return nil, fmt.Errorf("create root frame for %dx%d terminal: %w", rows, columns, err)
	}
	root.Border = m.border

	m.rows, m.columns = rows, columns
	m.grid = newGrid(rows, columns)
	m.tree = entity.NewLayoutTree(root)
	m.adopt(root)

	if err := m.RegisterFrame(ctx, root); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Int("rows", rows).
		Int("columns", columns).
		Str("root_id", string(root.ID)).
		Msg("frame manager created")

	return m, nil
}

func (m *FrameManager) adopt(f *entity.Frame) {
	m.frames = append(m.frames, f)
	m.owned[f.ID] = f
}

func (m *FrameManager) lookup(f *entity.Frame) error {
	if f == nil {
		return fmt.Errorf("%w: nil frame", ErrFrameNotFound)
	}
	if owned, ok := m.owned[f.ID]; !ok || owned != f {
		return fmt.Errorf("%w: %s", ErrFrameNotFound, f.ID)
	}
	return nil
}

// resizeListener re-applies its frame's rectangle when the terminal resizes.
// The rectangle itself is left alone; callers that want a new layout use Reflow.
type resizeListener struct {
	frame *entity.Frame
}

func (l resizeListener) Notify(ctx context.Context, _ event.Event) error {
	f := l.frame
	ctx = logging.WithFrameID(ctx, string(f.ID))
	logging.FromContext(ctx).Debug().Msg("re-applying frame geometry after terminal resize")
	return f.Resize(f.Rows, f.Columns, f.TopLeft)
}

// RegisterFrame subscribes the frame to terminal resize notifications.
// Registering a frame twice is a no-op.
func (m *FrameManager) RegisterFrame(ctx context.Context, f *entity.Frame) error {
	if err := m.lookup(f); err != nil {
		return err
	}
	if _, ok := m.handles[f.ID]; ok {
		return nil
	}

	m.handles[f.ID] = m.terminal.Subscribe(resizeListener{frame: f})
	logging.FromContext(ctx).Debug().Str("frame_id", string(f.ID)).Msg("frame registered for resize")
	return nil
}

// UnregisterFrame removes the frame's resize subscription.
// Returns event.ErrCallbackNotFound if the frame was never registered.
func (m *FrameManager) UnregisterFrame(ctx context.Context, f *entity.Frame) error {
	if err := m.lookup(f); err != nil {
		return err
	}
	h, ok := m.handles[f.ID]
	if !ok {
		return fmt.Errorf("unregister frame %s: %w", f.ID, event.ErrCallbackNotFound)
	}
	if err := m.terminal.Unsubscribe(h); err != nil {
		return fmt.Errorf("unregister frame %s: %w", f.ID, err)
	}
	delete(m.handles, f.ID)

	logging.FromContext(ctx).Debug().Str("frame_id", string(f.ID)).Msg("frame unregistered")
	return nil
}

// SplitVertical divides the frame's columns in two. The original keeps the
// left floor(w/2) columns; the returned frame takes the right ceil(w/2).
func (m *FrameManager) SplitVertical(ctx context.Context, f *entity.Frame) (*entity.Frame, error) {
	return m.split(ctx, f, entity.AxisVertical)
}

// SplitHorizontal divides the frame's rows in two. The original keeps the
// top floor(h/2) rows; the returned frame takes the bottom ceil(h/2).
func (m *FrameManager) SplitHorizontal(ctx context.Context, f *entity.Frame) (*entity.Frame, error) {
	return m.split(ctx, f, entity.AxisHorizontal)
}

func (m *FrameManager) split(ctx context.Context, f *entity.Frame, axis entity.SplitAxis) (*entity.Frame, error) {
	if err := m.lookup(f); err != nil {
		return nil, err
	}
	if _, ok := m.tree.LeafOf(f.ID); !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrLeafNotFound, f.ID)
	}

	keptRows, keptColumns := f.Rows, f.Columns
	addedRows, addedColumns := f.Rows, f.Columns
	at := f.TopLeft

	var err error
	switch axis {
	case entity.AxisVertical:
		keptColumns, addedColumns, err = entity.SplitExtent(f.Columns)
		at.Column += keptColumns
	case entity.AxisHorizontal:
		keptRows, addedRows, err = entity.SplitExtent(f.Rows)
		at.Row += keptRows
	}
	if err != nil {
		return nil, fmt.Errorf("split %s %s: %w", axis, f.ID, err)
	}

	id := entity.FrameID(m.newID())
	if _, dup := m.owned[id]; dup {
		return nil, fmt.Errorf("split %s %s: duplicate frame id %s", axis, f.ID, id)
	}
	added, err := entity.NewFrame(id, addedRows, addedColumns, at)
	if err != nil {
		return nil, fmt.Errorf("split %s %s: %w", axis, f.ID, err)
	}
	added.Border = f.Border

	if err := f.Resize(keptRows, keptColumns, f.TopLeft); err != nil {
		return nil, fmt.Errorf("split %s %s: %w", axis, f.ID, err)
	}
	if _, err := m.tree.Split(f.ID, axis, added); err != nil {
		return nil, err
	}
	m.adopt(added)
	if err := m.RegisterFrame(ctx, added); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info().
		Str("axis", axis.String()).
		Str("frame_id", string(f.ID)).
		Str("new_frame_id", string(added.ID)).
		Str("new_anchor", added.TopLeft.String()).
		Int("new_rows", added.Rows).
		Int("new_columns", added.Columns).
		Msg("frame split completed")

	return added, nil
}

// Composite copies frame buffers into the grid at their anchors.
// With a nil target every frame is copied in creation order, so later frames
// win where rectangles overlap. Cells falling outside the grid are clipped.
func (m *FrameManager) Composite(target *entity.Frame) error {
	if target != nil {
		if err := m.lookup(target); err != nil {
			return err
		}
		m.blit(target)
		return nil
	}

	for _, f := range m.frames {
		m.blit(f)
	}
	return nil
}

func (m *FrameManager) blit(f *entity.Frame) {
	rowOffset := f.TopLeft.Row - 1
	columnOffset := f.TopLeft.Column - 1

	for r, row := range f.Buffer {
		gr := r + rowOffset
		if gr >= m.rows {
			break
		}
		for c, cell := range row {
			gc := c + columnOffset
			if gc >= m.columns {
				break
			}
			m.grid[gr][gc] = cell
		}
	}
}

// Serialize flattens the grid into the text written to the terminal.
func (m *FrameManager) Serialize() string {
	var sb strings.Builder
	sb.Grow(m.rows * (m.columns + 1) * 3)

	for _, row := range m.grid {
		for _, cell := range row {
			sb.WriteString(cell)
		}
	}
	return sb.String()
}

// Render composites every frame and writes the grid through the terminal.
// A partial write is reported as port.ErrShortWrite and never retried.
func (m *FrameManager) Render(ctx context.Context) error {
	if err := m.Composite(nil); err != nil {
		return err
	}

	out := []byte(m.Serialize())
	n, err := m.terminal.Write(out)
	if err != nil {
		return fmt.Errorf("write grid: %w", err)
	}
	if n != len(out) {
		return fmt.Errorf("%w: wrote %d of %d bytes", port.ErrShortWrite, n, len(out))
	}

	logging.FromContext(ctx).Trace().Int("bytes", n).Msg("grid rendered")
	return nil
}

// Reflow re-derives every frame rectangle from the split tree for a new
// surface size and reallocates the grid. It is never triggered by resize
// notifications; hosts call it when they want the layout to follow the terminal.
// On error nothing is changed.
func (m *FrameManager) Reflow(ctx context.Context, rows, columns int) error {
	rects, err := m.tree.Layout(entity.FrameRect{TopLeft: entity.Origin, Rows: rows, Columns: columns})
	if err != nil {
		return fmt.Errorf("reflow to %dx%d: %w", rows, columns, err)
	}

	for _, f := range m.frames {
		rect, ok := rects[f.ID]
		if !ok {
			return fmt.Errorf("reflow to %dx%d: %w: %s", rows, columns, entity.ErrLeafNotFound, f.ID)
		}
		if err := f.Resize(rect.Rows, rect.Columns, rect.TopLeft); err != nil {
			return fmt.Errorf("reflow frame %s: %w", f.ID, err)
		}
	}

	m.rows, m.columns = rows, columns
	m.grid = newGrid(rows, columns)

	logging.FromContext(ctx).Debug().
		Int("rows", rows).
		Int("columns", columns).
		Int("frames", len(m.frames)).
		Msg("layout reflowed")
	return nil
}

// Validate checks that the frames exactly tile the manager's surface.
func (m *FrameManager) Validate() error {
	return entity.ValidateTiling(m.bounds(), m.frames)
}

// Close unsubscribes every registered frame from resize notifications.
func (m *FrameManager) Close(ctx context.Context) error {
	var errs []error
	for _, f := range m.frames {
		if _, ok := m.handles[f.ID]; !ok {
			continue
		}
		if err := m.UnregisterFrame(ctx, f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Frames returns all frames in creation order.
func (m *FrameManager) Frames() []*entity.Frame {
	return append([]*entity.Frame(nil), m.frames...)
}

// Frame returns the frame with the given id.
func (m *FrameManager) Frame(id entity.FrameID) (*entity.Frame, bool) {
	f, ok := m.owned[id]
	return f, ok
}

// Size returns the surface dimensions the grid was allocated for.
func (m *FrameManager) Size() (rows, columns int) {
	return m.rows, m.columns
}

// Tree returns the split tree the frames were derived from.
func (m *FrameManager) Tree() *entity.LayoutTree {
	return m.tree
}

// Grid returns a copy of the compositing grid, rows x (columns+1).
func (m *FrameManager) Grid() [][]string {
	out := make([][]string, len(m.grid))
	for r, row := range m.grid {
		out[r] = append([]string(nil), row...)
	}
	return out
}

func (m *FrameManager) bounds() entity.FrameRect {
	return entity.FrameRect{TopLeft: entity.Origin, Rows: m.rows, Columns: m.columns}
}

// newGrid allocates a blank grid with a trailing separator column.
func newGrid(rows, columns int) [][]string {
	grid := make([][]string, rows)
	for r := range grid {
		row := make([]string, columns+1)
		for c := 0; c < columns; c++ {
			row[c] = entity.BlankCell
		}
		row[columns] = RowSeparator
		grid[r] = row
	}
	if rows > 0 {
		grid[rows-1][columns] = gridEnd
	}
	return grid
}

func sequentialIDs(prefix string) IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}
