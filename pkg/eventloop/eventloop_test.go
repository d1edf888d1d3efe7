package eventloop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestLoop_RunsEventsInPostOrder(t *testing.T) {
	loop := New(8, nil)
	ctx := context.Background()

	var got []int
	for i := 0; i < 5; i++ {
		i := i
		require.NoError(t, loop.Post(ctx, func(context.Context) { got = append(got, i) }))
	}
	loop.Close()

	require.NoError(t, loop.Run(ctx))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestLoop_ConcurrentPostersAreSerialized(t *testing.T) {
	loop := New(0, nil)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	// counter is only touched from events; the race detector flags any overlap.
	counter := 0
	const N = 200
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < N; i++ {
		g.Go(func() error {
			return loop.Post(gctx, func(context.Context) { counter++ })
		})
	}
	require.NoError(t, g.Wait())

	loop.Close()
	require.NoError(t, <-done)
	assert.Equal(t, N, counter)
}

func TestLoop_PostAfterClose(t *testing.T) {
	loop := New(1, nil)
	loop.Close()
	loop.Close()

	err := loop.Post(context.Background(), func(context.Context) {})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestLoop_RunStopsOnContextCancel(t *testing.T) {
	loop := New(0, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestLoop_CloseReleasesBlockedPostAfterRunStopped(t *testing.T) {
	loop := New(0, nil)

	stopped, stop := context.WithCancel(context.Background())
	stop()
	require.ErrorIs(t, loop.Run(stopped), context.Canceled)

	posted := make(chan error, 1)
	go func() {
		posted <- loop.Post(context.Background(), func(context.Context) {})
	}()

	// give Post time to block on the unbuffered send
	time.Sleep(20 * time.Millisecond)

	closed := make(chan struct{})
	go func() {
		loop.Close()
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("close blocked behind a pending post")
	}

	select {
	case err := <-posted:
		assert.ErrorIs(t, err, ErrClosed)
	case <-time.After(time.Second):
		t.Fatal("pending post not released by close")
	}
}

func TestLoop_RunDrainsQueuedEventsOnClose(t *testing.T) {
	loop := New(3, nil)
	ctx := context.Background()

	ran := 0
	for i := 0; i < 3; i++ {
		require.NoError(t, loop.Post(ctx, func(context.Context) { ran++ }))
	}
	loop.Close()

	require.NoError(t, loop.Run(ctx))
	assert.Equal(t, 3, ran)
}

func TestLoop_PostRespectsContextWhenFull(t *testing.T) {
	loop := New(0, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := loop.Post(ctx, func(context.Context) {})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
