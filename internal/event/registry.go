// Package event provides a typed, handle-based subscription registry.
// Listeners are removed by the Handle returned at subscription time, never
// by comparing callbacks.
package event

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// ErrCallbackNotFound is returned when unsubscribing a handle that is not registered.
var ErrCallbackNotFound = errors.New("callback not found")

// Kind identifies a class of events.
type Kind int

const (
	KindResize Kind = iota // Terminal size changed between polls
	KindKey                // Keyboard input
	KindMouse              // Mouse input
)

func (k Kind) String() string {
	switch k {
	case KindResize:
		return "resize"
	case KindKey:
		return "key"
	case KindMouse:
		return "mouse"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is a notification delivered to listeners. Resize events carry no payload.
type Event struct {
	Kind Kind
}

// Listener receives events it subscribed to.
type Listener interface {
	Notify(ctx context.Context, ev Event) error
}

// ListenerFunc adapts a plain function to Listener.
// Function listeners are never deduplicated.
type ListenerFunc func(ctx context.Context, ev Event) error

// Notify calls f.
func (f ListenerFunc) Notify(ctx context.Context, ev Event) error {
	return f(ctx, ev)
}

// Handle identifies one subscription.
type Handle uint64

type subscription struct {
	handle   Handle
	kind     Kind
	listener Listener
}

// Registry maps event kinds to ordered subscriptions.
// It performs no locking; owners serialise access.
type Registry struct {
	next   Handle
	byKind map[Kind][]subscription
	kinds  map[Handle]Kind
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byKind: make(map[Kind][]subscription),
		kinds:  make(map[Handle]Kind),
	}
}

// Subscribe appends listener to the subscriptions of kind and returns its handle.
// Subscribing a comparable listener that is already registered for kind is a
// no-op returning the existing handle.
func (r *Registry) Subscribe(kind Kind, listener Listener) Handle {
	if isComparable(listener) {
		for _, sub := range r.byKind[kind] {
			if isComparable(sub.listener) && sub.listener == listener {
				return sub.handle
			}
		}
	}

	r.next++
	h := r.next
	r.byKind[kind] = append(r.byKind[kind], subscription{handle: h, kind: kind, listener: listener})
	r.kinds[h] = kind
	return h
}

// Unsubscribe removes the subscription identified by h.
func (r *Registry) Unsubscribe(h Handle) error {
	kind, ok := r.kinds[h]
	if !ok {
		return fmt.Errorf("%w: handle %d", ErrCallbackNotFound, h)
	}

	subs := r.byKind[kind]
	for i, sub := range subs {
		if sub.handle == h {
			r.byKind[kind] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(r.byKind[kind]) == 0 {
		delete(r.byKind, kind)
	}
	delete(r.kinds, h)
	return nil
}

// Emit delivers ev to every listener of ev.Kind in subscription order.
// Listeners added or removed during delivery take effect on the next Emit.
// Every listener runs; their errors are joined.
func (r *Registry) Emit(ctx context.Context, ev Event) error {
	subs := append([]subscription(nil), r.byKind[ev.Kind]...)

	var errs []error
	for _, sub := range subs {
		if err := sub.listener.Notify(ctx, ev); err != nil {
			errs = append(errs, fmt.Errorf("%s listener %d: %w", ev.Kind, sub.handle, err))
		}
	}
	return errors.Join(errs...)
}

// Len returns the number of subscriptions for kind.
func (r *Registry) Len(kind Kind) int {
	return len(r.byKind[kind])
}

func isComparable(l Listener) bool {
	if l == nil {
		return false
	}
	// A comparable struct type may still hold a func in an interface field;
	// only the value knows whether == would panic.
	return reflect.ValueOf(l).Comparable()
}
