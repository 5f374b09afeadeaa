//go:build unix

package terminal

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// ResizeSignals returns a channel that receives a value for every SIGWINCH
// until ctx is done. Bursts coalesce into a single pending value; the host
// loop reacts by calling Update on its own goroutine.
func ResizeSignals(ctx context.Context) <-chan struct{} {
	sigCh := make(chan os.Signal, 1)
	out := make(chan struct{}, 1)
	signal.Notify(sigCh, unix.SIGWINCH)

	go func() {
		defer signal.Stop(sigCh)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sigCh:
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out
}
