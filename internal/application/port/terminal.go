package port

import (
	"context"
	"errors"

	"github.com/bnema/tessera/internal/event"
)

// ErrShortWrite is returned when the terminal accepted fewer bytes than requested.
var ErrShortWrite = errors.New("terminal accepted a partial write")

// Terminal defines the port interface for the character-cell surface the
// frame manager draws on. Implementations poll their own size and notify
// resize listeners from Update, on the caller's goroutine.
type Terminal interface {
	// Size returns the current dimensions in character cells.
	Size() (rows, columns int)

	// Subscribe registers a listener for event.KindResize notifications.
	Subscribe(listener event.Listener) event.Handle

	// Unsubscribe removes a resize listener.
	// Returns event.ErrCallbackNotFound for unknown handles.
	Unsubscribe(h event.Handle) error

	// Update checks for a size change and notifies listeners if one happened.
	Update(ctx context.Context) error

	// Write sends raw output to the terminal and reports how many bytes were accepted.
	Write(p []byte) (int, error)
}
