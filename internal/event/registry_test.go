package event_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tessera/internal/event"
)

type countingListener struct {
	calls *int
	err   error
}

func (l countingListener) Notify(_ context.Context, _ event.Event) error {
	*l.calls++
	return l.err
}

func TestRegistry_SubscribeAndEmitInOrder(t *testing.T) {
	r := event.NewRegistry()
	var order []string

	r.Subscribe(event.KindResize, event.ListenerFunc(func(context.Context, event.Event) error {
		order = append(order, "first")
		return nil
	}))
	r.Subscribe(event.KindResize, event.ListenerFunc(func(context.Context, event.Event) error {
		order = append(order, "second")
		return nil
	}))
	r.Subscribe(event.KindKey, event.ListenerFunc(func(context.Context, event.Event) error {
		order = append(order, "key")
		return nil
	}))

	require.NoError(t, r.Emit(context.Background(), event.Event{Kind: event.KindResize}))

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, 2, r.Len(event.KindResize))
	assert.Equal(t, 1, r.Len(event.KindKey))
}

func TestRegistry_DuplicateSubscribeIsNoop(t *testing.T) {
	r := event.NewRegistry()
	calls := 0
	l := countingListener{calls: &calls}

	h1 := r.Subscribe(event.KindResize, l)
	h2 := r.Subscribe(event.KindResize, l)

	assert.Equal(t, h1, h2)
	assert.Equal(t, 1, r.Len(event.KindResize))

	require.NoError(t, r.Emit(context.Background(), event.Event{Kind: event.KindResize}))
	assert.Equal(t, 1, calls)
}

func TestRegistry_FuncListenersAreNotDeduplicated(t *testing.T) {
	r := event.NewRegistry()
	fn := event.ListenerFunc(func(context.Context, event.Event) error { return nil })

	h1 := r.Subscribe(event.KindResize, fn)
	h2 := r.Subscribe(event.KindResize, fn)

	assert.NotEqual(t, h1, h2)
	assert.Equal(t, 2, r.Len(event.KindResize))
}

type wrappedListener struct {
	inner event.Listener
}

func (w wrappedListener) Notify(ctx context.Context, ev event.Event) error {
	return w.inner.Notify(ctx, ev)
}

func TestRegistry_WrappedFuncListenerDoesNotPanic(t *testing.T) {
	r := event.NewRegistry()
	fn := event.ListenerFunc(func(context.Context, event.Event) error { return nil })
	l := wrappedListener{inner: fn}

	var h1, h2 event.Handle
	require.NotPanics(t, func() {
		h1 = r.Subscribe(event.KindResize, l)
		h2 = r.Subscribe(event.KindResize, l)
	})

	assert.NotEqual(t, h1, h2)
	assert.Equal(t, 2, r.Len(event.KindResize))
}

func TestRegistry_WrappedComparableListenerIsDeduplicated(t *testing.T) {
	r := event.NewRegistry()
	calls := 0
	l := wrappedListener{inner: countingListener{calls: &calls}}

	h1 := r.Subscribe(event.KindResize, l)
	h2 := r.Subscribe(event.KindResize, l)

	assert.Equal(t, h1, h2)
	assert.Equal(t, 1, r.Len(event.KindResize))
}

func TestRegistry_Unsubscribe(t *testing.T) {
	r := event.NewRegistry()
	calls := 0
	h := r.Subscribe(event.KindResize, countingListener{calls: &calls})

	require.NoError(t, r.Unsubscribe(h))
	require.NoError(t, r.Emit(context.Background(), event.Event{Kind: event.KindResize}))

	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, r.Len(event.KindResize))
}

func TestRegistry_UnsubscribeUnknownHandle(t *testing.T) {
	r := event.NewRegistry()

	err := r.Unsubscribe(event.Handle(42))
	assert.ErrorIs(t, err, event.ErrCallbackNotFound)

	h := r.Subscribe(event.KindResize, event.ListenerFunc(func(context.Context, event.Event) error { return nil }))
	require.NoError(t, r.Unsubscribe(h))
	assert.ErrorIs(t, r.Unsubscribe(h), event.ErrCallbackNotFound)
}

func TestRegistry_EmitJoinsErrorsAndRunsEveryListener(t *testing.T) {
	r := event.NewRegistry()
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	calls := 0

	r.Subscribe(event.KindResize, countingListener{calls: &calls, err: errA})
	r.Subscribe(event.KindResize, event.ListenerFunc(func(context.Context, event.Event) error {
		calls++
		return errB
	}))

	err := r.Emit(context.Background(), event.Event{Kind: event.KindResize})

	assert.Equal(t, 2, calls)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}

func TestRegistry_UnsubscribeDuringEmit(t *testing.T) {
	r := event.NewRegistry()
	calls := 0
	var second event.Handle

	r.Subscribe(event.KindResize, event.ListenerFunc(func(context.Context, event.Event) error {
		return r.Unsubscribe(second)
	}))
	second = r.Subscribe(event.KindResize, countingListener{calls: &calls})

	require.NoError(t, r.Emit(context.Background(), event.Event{Kind: event.KindResize}))
	assert.Equal(t, 1, calls, "removal applies to the next emit")

	err := r.Emit(context.Background(), event.Event{Kind: event.KindResize})
	assert.ErrorIs(t, err, event.ErrCallbackNotFound)
	assert.Equal(t, 1, calls)
}
