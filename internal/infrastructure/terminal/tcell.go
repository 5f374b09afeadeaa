package terminal

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Tcell draws serialized grids onto a tcell screen. Update drains the
// screen's pending events: resizes are announced to listeners, and Ctrl-C,
// Escape or 'q' surface as ErrInterrupted.
type Tcell struct {
	resizeNotifier

	screen  tcell.Screen
	rows    int
	columns int
}

// NewTcell creates and initialises a screen on the controlling terminal.
func NewTcell() (*Tcell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create tcell screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init tcell screen: %w", err)
	}
	return NewTcellWithScreen(screen), nil
}

// NewTcellWithScreen wraps an already initialised screen.
func NewTcellWithScreen(screen tcell.Screen) *Tcell {
	screen.HideCursor()
	columns, rows := screen.Size()
	return &Tcell{
		resizeNotifier: newResizeNotifier(),
		screen:         screen,
		rows:           rows,
		columns:        columns,
	}
}

// Size returns the dimensions observed at the last Update.
func (t *Tcell) Size() (rows, columns int) {
	return t.rows, t.columns
}

// Update drains pending events and notifies listeners when the size changed.
func (t *Tcell) Update(ctx context.Context) error {
	interrupted := false
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			if isQuitKey(ev) {
				interrupted = true
			}
		case nil:
			// Screen finalised.
			return ErrInterrupted
		}
	}

	columns, rows := t.screen.Size()
	if rows != t.rows || columns != t.columns {
		t.rows, t.columns = rows, columns
		if err := t.notify(ctx, rows, columns); err != nil {
			return err
		}
	}

	if interrupted {
		return ErrInterrupted
	}
	return nil
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// Write clears the screen, lays p onto it row by row from the top-left
// cell, and shows the result. Newlines advance to the next row. Cells the
// grid does not cover stay blank when the screen is larger than the grid.
func (t *Tcell) Write(p []byte) (int, error) {
	t.screen.Clear()
	x, y := 0, 0
	for _, r := range string(p) {
		if r == '\n' {
			x, y = 0, y+1
			continue
		}
		t.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
	t.screen.Show()
	return len(p), nil
}

// Close restores the terminal.
func (t *Tcell) Close() {
	t.screen.Fini()
}
