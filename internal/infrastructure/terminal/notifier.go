// Package terminal provides port.Terminal adapters: a fixed-size writer for
// snapshots and tests, a polling stdio terminal, and a tcell screen.
package terminal

import (
	"context"
	"errors"

	"github.com/bnema/tessera/internal/event"
	"github.com/bnema/tessera/internal/logging"
)

// ErrInterrupted is returned by Update when the user asked to quit.
var ErrInterrupted = errors.New("terminal interrupted by user")

// resizeNotifier holds the resize subscriptions shared by every adapter.
type resizeNotifier struct {
	registry *event.Registry
}

func newResizeNotifier() resizeNotifier {
	return resizeNotifier{registry: event.NewRegistry()}
}

// Subscribe registers a listener for resize notifications.
func (n resizeNotifier) Subscribe(listener event.Listener) event.Handle {
	return n.registry.Subscribe(event.KindResize, listener)
}

// Unsubscribe removes a resize listener.
func (n resizeNotifier) Unsubscribe(h event.Handle) error {
	return n.registry.Unsubscribe(h)
}

func (n resizeNotifier) notify(ctx context.Context, rows, columns int) error {
	logging.FromContext(ctx).Debug().
		Int("rows", rows).
		Int("columns", columns).
		Int("listeners", n.registry.Len(event.KindResize)).
		Msg("terminal resized")
	return n.registry.Emit(ctx, event.Event{Kind: event.KindResize})
}
