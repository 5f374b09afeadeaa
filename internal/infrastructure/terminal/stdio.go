package terminal

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when the output file is not attached to a terminal.
var ErrNotTerminal = errors.New("output is not a terminal")

var (
	seqHome           = []byte("\x1b[H")
	seqCursorHide     = []byte("\x1b[?25l")
	seqCursorShow     = []byte("\x1b[?25h")
	seqAltScreenEnter = []byte("\x1b[?1049h")
	seqAltScreenExit  = []byte("\x1b[?1049l")
	// Auto-wrap off keeps the bottom-right cell from scrolling the screen.
	seqAutoWrapOff = []byte("\x1b[?7l")
	seqAutoWrapOn  = []byte("\x1b[?7h")
)

// Stdio is a polling terminal over a tty file. Update queries the window
// size and notifies listeners when it changed since the previous poll.
type Stdio struct {
	resizeNotifier

	out     *os.File
	fd      int
	rows    int
	columns int
	entered bool

	getSize func(fd int) (width, height int, err error)
}

// NewStdio creates a terminal writing to out, which must be a tty.
func NewStdio(out *os.File) (*Stdio, error) {
	fd := int(out.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%w: %s", ErrNotTerminal, out.Name())
	}

	s := &Stdio{
		resizeNotifier: newResizeNotifier(),
		out:            out,
		fd:             fd,
		getSize:        term.GetSize,
	}
	width, height, err := s.getSize(fd)
	if err != nil {
		return nil, fmt.Errorf("query terminal size: %w", err)
	}
	s.rows, s.columns = height, width
	return s, nil
}

// Size returns the dimensions observed at the last poll.
func (s *Stdio) Size() (rows, columns int) {
	return s.rows, s.columns
}

// Update polls the window size and notifies listeners on change.
func (s *Stdio) Update(ctx context.Context) error {
	width, height, err := s.getSize(s.fd)
	if err != nil {
		return fmt.Errorf("query terminal size: %w", err)
	}
	if height == s.rows && width == s.columns {
		return nil
	}
	s.rows, s.columns = height, width
	return s.notify(ctx, s.rows, s.columns)
}

// Enter switches to the alternate screen with the cursor hidden.
func (s *Stdio) Enter() error {
	for _, seq := range [][]byte{seqAltScreenEnter, seqCursorHide, seqAutoWrapOff} {
		if _, err := s.out.Write(seq); err != nil {
			return fmt.Errorf("prepare terminal: %w", err)
		}
	}
	s.entered = true
	return nil
}

// Exit restores the primary screen. Safe to call more than once.
func (s *Stdio) Exit() error {
	if !s.entered {
		return nil
	}
	s.entered = false
	for _, seq := range [][]byte{seqAutoWrapOn, seqCursorShow, seqAltScreenExit} {
		if _, err := s.out.Write(seq); err != nil {
			return fmt.Errorf("restore terminal: %w", err)
		}
	}
	return nil
}

// Write homes the cursor and writes p. The returned count covers p only.
func (s *Stdio) Write(p []byte) (int, error) {
	if _, err := s.out.Write(seqHome); err != nil {
		return 0, err
	}
	return s.out.Write(p)
}
