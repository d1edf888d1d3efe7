package app

import (
	"context"
	"log/slog"

	"github.com/dwikikusuma/storefront-state/internal/theme/domain"
	"github.com/dwikikusuma/storefront-state/pkg/observable"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Store owns the current theme. It is not safe for concurrent use; drive it
// from a single goroutine such as an eventloop.Loop.
type Store struct {
	theme  domain.Theme
	subs   *observable.Registry[domain.Theme]
	log    *slog.Logger
	tracer trace.Tracer
}

func NewStore(initial domain.Theme, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		theme:  initial,
		subs:   observable.New[domain.Theme]("theme", log),
		log:    log,
		tracer: otel.Tracer("storefront/theme"),
	}
}

func (s *Store) Theme() domain.Theme {
	return s.theme
}

// Toggle flips the theme and notifies subscribers before returning.
func (s *Store) Toggle(ctx context.Context) {
	_, span := s.tracer.Start(ctx, "ToggleTheme")
	defer span.End()

	prev := s.theme
	s.theme = prev.Toggled()
	span.SetAttributes(
		attribute.String("app.theme.from", prev.String()),
		attribute.String("app.theme.to", s.theme.String()),
	)
	s.log.DebugContext(ctx, "theme toggled", slog.String("from", prev.String()), slog.String("to", s.theme.String()))

	s.subs.Notify(s.theme)
}

func (s *Store) Subscribe(fn func(domain.Theme)) func() {
	return s.subs.Subscribe(fn).Unsubscribe
}
