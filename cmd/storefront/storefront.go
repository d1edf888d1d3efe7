package main

import (
	"context"
	"fmt"
	"log/slog"

	cartapp "github.com/dwikikusuma/storefront-state/internal/cart/app"
	cartdomain "github.com/dwikikusuma/storefront-state/internal/cart/domain"
	checkoutapp "github.com/dwikikusuma/storefront-state/internal/checkout/app"
	themeapp "github.com/dwikikusuma/storefront-state/internal/theme/app"
	themedomain "github.com/dwikikusuma/storefront-state/internal/theme/domain"
	"github.com/dwikikusuma/storefront-state/pkg/eventloop"
)

// uiEvent is a click coming from the view layer.
type uiEvent interface {
	fmt.Stringer
}

type toggleThemeClicked struct{}

type addToCartClicked struct {
	ProductID string
}

type quantityClicked struct {
	ProductID string
	Delta     int
}

type cartOpened struct{}

func (toggleThemeClicked) String() string { return "toggle theme" }
func (e addToCartClicked) String() string { return "add to cart " + e.ProductID }
func (e quantityClicked) String() string  { return fmt.Sprintf("quantity %s %+d", e.ProductID, e.Delta) }
func (cartOpened) String() string         { return "open cart" }

type storefront struct {
	log      *slog.Logger
	theme    *themeapp.Store
	cart     *cartapp.Store
	checkout *checkoutapp.Service
}

// mountViews subscribes the header, page and cart badge to the stores and
// renders them once.
func (s *storefront) mountViews(ctx context.Context) {
	renderPage := func(th themedomain.Theme) {
		s.log.InfoContext(ctx, "render page", slog.String("class", th.String()))
	}
	renderBadge := func(c cartdomain.Cart) {
		s.log.InfoContext(ctx, "render cart badge", slog.Int("count", c.Len()))
	}

	s.theme.Subscribe(renderPage)
	s.cart.Subscribe(renderBadge)

	renderPage(s.theme.Theme())
	renderBadge(s.cart.Cart())
}

func (s *storefront) handle(ctx context.Context, ev uiEvent) {
	var err error

	switch e := ev.(type) {
	case toggleThemeClicked:
		s.theme.Toggle(ctx)
	case addToCartClicked:
		err = s.cart.AddItem(ctx, e.ProductID)
	case quantityClicked:
		err = s.cart.UpdateQuantity(ctx, e.ProductID, e.Delta)
	case cartOpened:
		err = s.renderCart(ctx)
	default:
		err = fmt.Errorf("unhandled ui event %T", ev)
	}

	if err != nil {
		s.log.WarnContext(ctx, "ui event failed", slog.String("event", ev.String()), slog.Any("err", err))
	}
}

func (s *storefront) renderCart(ctx context.Context) error {
	q, err := s.checkout.Quote(ctx)
	if err != nil {
		return err
	}
	if q.Empty() {
		s.log.InfoContext(ctx, "render cart", slog.String("message", "No items in cart!"))
		return nil
	}

	for _, ln := range q.Lines {
		s.log.InfoContext(ctx, "render cart line",
			slog.String("name", ln.Name),
			slog.String("price", ln.UnitPrice.String()),
			slog.Int64("quantity", ln.Quantity),
		)
	}
	s.log.InfoContext(ctx, "render cart total", slog.String("total", q.Total.String()))
	return nil
}

// replay posts events to the loop in order, as if clicked by a user.
func replay(ctx context.Context, loop *eventloop.Loop, app *storefront, events []uiEvent) error {
	for _, ev := range events {
		ev := ev
		if err := loop.Post(ctx, func(ctx context.Context) { app.handle(ctx, ev) }); err != nil {
			return err
		}
	}
	return nil
}

func demoSession() []uiEvent {
	return []uiEvent{
		toggleThemeClicked{},
		addToCartClicked{ProductID: "p1"},
		addToCartClicked{ProductID: "p2"},
		addToCartClicked{ProductID: "p1"},
		quantityClicked{ProductID: "p2", Delta: -1},
		quantityClicked{ProductID: "p3", Delta: 1},
		addToCartClicked{ProductID: "p5"},
		cartOpened{},
		toggleThemeClicked{},
	}
}
