//go:build !unix

package terminal

import "context"

// ResizeSignals returns a channel that never fires; without SIGWINCH the
// host loop relies on periodic polling.
func ResizeSignals(_ context.Context) <-chan struct{} {
	return make(chan struct{})
}
