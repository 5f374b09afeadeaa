package terminal

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tessera/internal/event"
)

func countResizes(t *testing.T, sub interface {
	Subscribe(event.Listener) event.Handle
}) *int {
	t.Helper()
	n := 0
	sub.Subscribe(event.ListenerFunc(func(context.Context, event.Event) error {
		n++
		return nil
	}))
	return &n
}

func TestStatic_UpdateAppliesStagedSize(t *testing.T) {
	var out bytes.Buffer
	s := NewStatic(&out, 24, 80)
	resizes := countResizes(t, s)

	require.NoError(t, s.Update(context.Background()))
	assert.Equal(t, 0, *resizes, "no change, no notification")

	s.SetSize(30, 100)
	rows, columns := s.Size()
	assert.Equal(t, []int{24, 80}, []int{rows, columns}, "staged size applies on Update")

	require.NoError(t, s.Update(context.Background()))
	rows, columns = s.Size()
	assert.Equal(t, []int{30, 100}, []int{rows, columns})
	assert.Equal(t, 1, *resizes)

	n, err := s.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "abc", out.String())
}

func TestStatic_UnsubscribeUnknown(t *testing.T) {
	s := NewStatic(&bytes.Buffer{}, 1, 1)
	assert.ErrorIs(t, s.Unsubscribe(99), event.ErrCallbackNotFound)
}

func TestStatic_ListenerErrorsPropagate(t *testing.T) {
	s := NewStatic(&bytes.Buffer{}, 1, 1)
	boom := errors.New("boom")
	s.Subscribe(event.ListenerFunc(func(context.Context, event.Event) error { return boom }))

	s.SetSize(2, 2)
	assert.ErrorIs(t, s.Update(context.Background()), boom)
}

func TestCapture_KeepsLastWrite(t *testing.T) {
	var c Capture
	_, _ = c.Write([]byte("first"))
	_, _ = c.Write([]byte("second"))
	assert.Equal(t, "second", c.String())
}

func TestStdio_UpdatePollsSize(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "tty"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	width, height := 80, 24
	s := &Stdio{
		resizeNotifier: newResizeNotifier(),
		out:            f,
		rows:           height,
		columns:        width,
		getSize:        func(int) (int, int, error) { return width, height, nil },
	}
	resizes := countResizes(t, s)

	require.NoError(t, s.Update(context.Background()))
	assert.Equal(t, 0, *resizes)

	width = 120
	require.NoError(t, s.Update(context.Background()))
	assert.Equal(t, 1, *resizes)
	rows, columns := s.Size()
	assert.Equal(t, 24, rows)
	assert.Equal(t, 120, columns)

	n, err := s.Write([]byte("grid"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	require.NoError(t, s.Enter())
	require.NoError(t, s.Exit())
	require.NoError(t, s.Exit())

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "\x1b[Hgrid")
	assert.Equal(t, 1, bytes.Count(data, seqAltScreenExit))
}

func TestStdio_UpdateSurfacesSizeErrors(t *testing.T) {
	s := &Stdio{
		resizeNotifier: newResizeNotifier(),
		getSize:        func(int) (int, int, error) { return 0, 0, errors.New("ioctl failed") },
	}
	assert.Error(t, s.Update(context.Background()))
}

func TestNewStdio_RejectsRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	_, err = NewStdio(f)
	assert.ErrorIs(t, err, ErrNotTerminal)
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(10, 3)
	t.Cleanup(screen.Fini)
	return screen
}

func TestTcell_WriteLaysOutRows(t *testing.T) {
	screen := newSimScreen(t)
	tc := NewTcellWithScreen(screen)

	n, err := tc.Write([]byte("ab\ncd"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	mainc, _, _, _ := screen.GetContent(0, 0) //nolint:staticcheck // GetContent is the correct API
	assert.Equal(t, 'a', mainc)
	mainc, _, _, _ = screen.GetContent(1, 1) //nolint:staticcheck // GetContent is the correct API
	assert.Equal(t, 'd', mainc)
}

func TestTcell_WriteClearsCellsOutsideGrid(t *testing.T) {
	screen := newSimScreen(t)
	tc := NewTcellWithScreen(screen)

	_, err := tc.Write([]byte("abcd\nefgh"))
	require.NoError(t, err)
	_, err = tc.Write([]byte("x"))
	require.NoError(t, err)

	mainc, _, _, _ := screen.GetContent(0, 0) //nolint:staticcheck // GetContent is the correct API
	assert.Equal(t, 'x', mainc)
	mainc, _, _, _ = screen.GetContent(3, 0) //nolint:staticcheck // GetContent is the correct API
	assert.Equal(t, ' ', mainc)
	mainc, _, _, _ = screen.GetContent(1, 1) //nolint:staticcheck // GetContent is the correct API
	assert.Equal(t, ' ', mainc)
}

func TestTcell_QuitKeyInterrupts(t *testing.T) {
	screen := newSimScreen(t)
	tc := NewTcellWithScreen(screen)

	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))

	assert.ErrorIs(t, tc.Update(context.Background()), ErrInterrupted)
}
