package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dwikikusuma/storefront-state/internal/cart/domain"
	"github.com/dwikikusuma/storefront-state/pkg/observable"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Store owns the cart. Mutations go through AddItem, UpdateQuantity or
// Dispatch; reads hand out copies. It is not safe for concurrent use; drive
// it from a single goroutine such as an eventloop.Loop.
type Store struct {
	catalog CatalogReader
	cart    domain.Cart
	subs    *observable.Registry[domain.Cart]
	log     *slog.Logger
	tracer  trace.Tracer
}

func NewStore(catalog CatalogReader, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		catalog: catalog,
		subs:    observable.New[domain.Cart]("cart", log),
		log:     log,
		tracer:  otel.Tracer("storefront/cart"),
	}
}

func (s *Store) AddItem(ctx context.Context, productID string) error {
	return s.Dispatch(ctx, domain.AddItem{ProductID: productID})
}

func (s *Store) UpdateQuantity(ctx context.Context, productID string, delta int) error {
	return s.Dispatch(ctx, domain.UpdateQuantity{ProductID: productID, Delta: delta})
}

// Dispatch applies a to the cart. On success the new cart is committed and
// every subscriber is notified before Dispatch returns. On failure nothing
// changes and nobody is notified.
func (s *Store) Dispatch(ctx context.Context, a domain.Action) error {
	ctx, span := s.tracer.Start(ctx, spanName(a))
	defer span.End()
	span.SetAttributes(actionAttributes(a)...)

	lookup := func(productID string) (domain.Product, error) {
		return s.catalog.GetProduct(ctx, productID)
	}

	next, err := domain.Reduce(s.cart, a, lookup)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		level := slog.LevelError
		if errors.Is(err, domain.ErrNotFound) {
			level = slog.LevelWarn
		}
		s.log.Log(ctx, level, "cart action rejected", append(actionLogAttrs(a), slog.Any("err", err))...)
		return err
	}

	s.cart = next
	span.SetAttributes(attribute.Int("app.cart.items", next.Len()))
	s.log.DebugContext(ctx, "cart updated", append(actionLogAttrs(a), slog.Int("items", next.Len()))...)

	s.subs.Notify(next.Clone())
	return nil
}

// Items returns the line items in insertion order.
func (s *Store) Items() []domain.CartItem {
	return s.cart.Clone().Items
}

func (s *Store) Cart() domain.Cart {
	return s.cart.Clone()
}

// Subscribe registers fn to receive a copy of the cart after every
// successful mutation.
func (s *Store) Subscribe(fn func(domain.Cart)) func() {
	return s.subs.Subscribe(fn).Unsubscribe
}

func spanName(a domain.Action) string {
	switch a.(type) {
	case domain.AddItem:
		return "AddItem"
	case domain.UpdateQuantity:
		return "UpdateQuantity"
	default:
		return "Dispatch"
	}
}

func actionAttributes(a domain.Action) []attribute.KeyValue {
	switch act := a.(type) {
	case domain.AddItem:
		return []attribute.KeyValue{attribute.String("app.product_id", act.ProductID)}
	case domain.UpdateQuantity:
		return []attribute.KeyValue{
			attribute.String("app.product_id", act.ProductID),
			attribute.Int("app.delta", act.Delta),
		}
	default:
		return nil
	}
}

func actionLogAttrs(a domain.Action) []any {
	switch act := a.(type) {
	case domain.AddItem:
		return []any{slog.String("action", "add_item"), slog.String("product_id", act.ProductID)}
	case domain.UpdateQuantity:
		return []any{
			slog.String("action", "update_quantity"),
			slog.String("product_id", act.ProductID),
			slog.Int("delta", act.Delta),
		}
	default:
		return []any{slog.String("action", "unknown")}
	}
}
