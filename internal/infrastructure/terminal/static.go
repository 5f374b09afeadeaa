package terminal

import (
	"context"
	"io"
	"sync"
)

// Static is a terminal of caller-controlled size writing to any io.Writer.
// SetSize stages a new size that the next Update applies and announces,
// mirroring how a real terminal reports resizes between polls.
type Static struct {
	resizeNotifier

	w       io.Writer
	rows    int
	columns int

	pendingRows    int
	pendingColumns int
}

// NewStatic creates a terminal of the given size writing to w.
func NewStatic(w io.Writer, rows, columns int) *Static {
	return &Static{
		resizeNotifier: newResizeNotifier(),
		w:              w,
		rows:           rows,
		columns:        columns,
		pendingRows:    rows,
		pendingColumns: columns,
	}
}

// Size returns the current dimensions.
func (s *Static) Size() (rows, columns int) {
	return s.rows, s.columns
}

// SetSize stages a new size for the next Update.
func (s *Static) SetSize(rows, columns int) {
	s.pendingRows, s.pendingColumns = rows, columns
}

// Update applies a staged size and notifies listeners if it differs.
func (s *Static) Update(ctx context.Context) error {
	if s.pendingRows == s.rows && s.pendingColumns == s.columns {
		return nil
	}
	s.rows, s.columns = s.pendingRows, s.pendingColumns
	return s.notify(ctx, s.rows, s.columns)
}

// Write forwards p to the underlying writer.
func (s *Static) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// Capture is an io.Writer that keeps only the most recent write.
// Hosts that own the screen themselves (bubbletea) read the last frame from it.
type Capture struct {
	mu   sync.Mutex
	last string
}

func (c *Capture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.last = string(p)
	return len(p), nil
}

// String returns the most recent write.
func (c *Capture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last
}
