package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	cartapp "github.com/dwikikusuma/storefront-state/internal/cart/app"
	cartadapter "github.com/dwikikusuma/storefront-state/internal/cart/infra/adapter"
	catalogapp "github.com/dwikikusuma/storefront-state/internal/catalog/app"
	"github.com/dwikikusuma/storefront-state/internal/catalog/infra/memory"
	checkoutapp "github.com/dwikikusuma/storefront-state/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/storefront-state/internal/checkout/infra/adapter"
	themeapp "github.com/dwikikusuma/storefront-state/internal/theme/app"
	themedomain "github.com/dwikikusuma/storefront-state/internal/theme/domain"
	"github.com/dwikikusuma/storefront-state/pkg/eventloop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newTestStorefront(t *testing.T, buf *bytes.Buffer) *storefront {
	t.Helper()
	log := slog.New(slog.NewTextHandler(buf, nil))

	repo, err := memory.NewProductRepo(memory.DummyProducts()...)
	require.NoError(t, err)
	cart := cartapp.NewStore(cartadapter.NewCatalogServiceReader(catalogapp.NewService(repo)), log)

	return &storefront{
		log:      log,
		theme:    themeapp.NewStore(themedomain.Light, log),
		cart:     cart,
		checkout: checkoutapp.NewService(checkoutadapter.NewCartStoreReader(cart), ""),
	}
}

func TestReplayDemoSession(t *testing.T) {
	var buf bytes.Buffer
	app := newTestStorefront(t, &buf)
	ctx := context.Background()
	app.mountViews(ctx)

	loop := eventloop.New(4, app.log)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return loop.Run(gctx) })
	g.Go(func() error {
		defer loop.Close()
		return replay(gctx, loop, app, demoSession())
	})
	require.NoError(t, g.Wait())

	assert.Equal(t, themedomain.Light, app.theme.Theme())

	items := app.cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "p5", items[1].ID)
	assert.Equal(t, 1, items[1].Quantity)

	out := buf.String()
	assert.Contains(t, out, "ui event failed")
	assert.Contains(t, out, "quantity p3 +1")
	assert.Contains(t, out, "total=$369.97")
}

func TestRenderEmptyCart(t *testing.T) {
	var buf bytes.Buffer
	app := newTestStorefront(t, &buf)

	app.handle(context.Background(), cartOpened{})
	assert.Contains(t, buf.String(), "No items in cart!")
}
