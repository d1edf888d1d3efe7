// Package eventloop runs posted events one at a time on a single goroutine.
// Each event runs to completion before the next starts, so state touched
// only from events needs no locking.
package eventloop

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

var ErrClosed = errors.New("event loop closed")

type Event func(ctx context.Context)

type Loop struct {
	events chan Event
	done   chan struct{}
	once   sync.Once
	log    *slog.Logger
}

func New(buffer int, log *slog.Logger) *Loop {
	if buffer < 0 {
		buffer = 0
	}
	if log == nil {
		log = slog.Default()
	}
	return &Loop{
		events: make(chan Event, buffer),
		done:   make(chan struct{}),
		log:    log,
	}
}

// Post enqueues ev. It blocks only while the buffer is full, and gives up
// with ErrClosed once Close is called or with ctx's error.
func (l *Loop) Post(ctx context.Context, ev Event) error {
	select {
	case <-l.done:
		return ErrClosed
	default:
	}

	select {
	case l.events <- ev:
		return nil
	case <-l.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting events. Run drains what is already queued and
// returns. The events channel stays open so a Post racing Close never
// sends on a closed channel.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.done) })
}

// Run executes events until ctx is done or the loop is closed and drained.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Debug("event loop started")
	for {
		select {
		case <-ctx.Done():
			l.log.Debug("event loop stopped", slog.Any("err", ctx.Err()))
			return ctx.Err()
		case ev := <-l.events:
			ev(ctx)
		case <-l.done:
			l.drain(ctx)
			l.log.Debug("event loop drained")
			return nil
		}
	}
}

func (l *Loop) drain(ctx context.Context) {
	for {
		select {
		case ev := <-l.events:
			ev(ctx)
		default:
			return
		}
	}
}
