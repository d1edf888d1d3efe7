// Package observable is a small synchronous subscriber registry shared by
// the state stores. Notify runs every listener on the caller's goroutine,
// in subscription order, before returning.
package observable

import (
	"log/slog"

	"github.com/google/uuid"
)

// Subscription is the handle returned by Subscribe. Its ID also works with
// Registry.Unsubscribe, so a caller that only kept the id can detach.
type Subscription[T any] struct {
	id     string
	fn     func(T)
	active bool
	reg    *Registry[T]
}

func (s *Subscription[T]) ID() string {
	return s.id
}

// Unsubscribe removes the subscriber. Calling it more than once is a no-op.
func (s *Subscription[T]) Unsubscribe() {
	s.reg.remove(s)
}

type Registry[T any] struct {
	name string
	log  *slog.Logger
	subs []*Subscription[T]
}

func New[T any](name string, log *slog.Logger) *Registry[T] {
	if log == nil {
		log = slog.Default()
	}
	return &Registry[T]{name: name, log: log}
}

func (r *Registry[T]) Subscribe(fn func(T)) *Subscription[T] {
	sub := &Subscription[T]{
		id:     uuid.NewString(),
		fn:     fn,
		active: true,
		reg:    r,
	}
	r.subs = append(r.subs, sub)
	r.log.Debug("subscriber added", slog.String("registry", r.name), slog.String("subscription_id", sub.id))

	return sub
}

// Unsubscribe removes the subscriber with the given id and reports whether
// one was registered.
func (r *Registry[T]) Unsubscribe(id string) bool {
	for _, s := range r.subs {
		if s.id == id {
			r.remove(s)
			return true
		}
	}
	return false
}

func (r *Registry[T]) remove(sub *Subscription[T]) {
	if !sub.active {
		return
	}
	sub.active = false

	kept := make([]*Subscription[T], 0, len(r.subs))
	for _, s := range r.subs {
		if s != sub {
			kept = append(kept, s)
		}
	}
	r.subs = kept
	r.log.Debug("subscriber removed", slog.String("registry", r.name), slog.String("subscription_id", sub.id))
}

// Notify delivers v to every subscriber registered when Notify was called.
// A subscriber removed by an earlier listener in the same round is skipped.
func (r *Registry[T]) Notify(v T) {
	snapshot := r.subs
	for _, s := range snapshot {
		if !s.active {
			continue
		}
		s.fn(v)
	}
}

func (r *Registry[T]) Len() int {
	return len(r.subs)
}
