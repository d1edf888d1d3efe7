package shutdown

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Signal is the cancellation cause recorded when SIGINT or SIGTERM stops
// the context; read it back with context.Cause.
type Signal struct {
	os.Signal
}

func (s Signal) Error() string {
	return fmt.Sprintf("received %s", s.Signal)
}

func WithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(ch)
		select {
		case <-ctx.Done():
			return
		case sig := <-ch:
			cancel(Signal{Signal: sig})
		}
	}()

	return ctx, func() { cancel(context.Canceled) }
}
