package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	cartapp "github.com/dwikikusuma/storefront-state/internal/cart/app"
	cartadapter "github.com/dwikikusuma/storefront-state/internal/cart/infra/adapter"

	catalogapp "github.com/dwikikusuma/storefront-state/internal/catalog/app"
	"github.com/dwikikusuma/storefront-state/internal/catalog/infra/memory"

	checkoutapp "github.com/dwikikusuma/storefront-state/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/storefront-state/internal/checkout/infra/adapter"

	themeapp "github.com/dwikikusuma/storefront-state/internal/theme/app"
	themedomain "github.com/dwikikusuma/storefront-state/internal/theme/domain"

	"github.com/dwikikusuma/storefront-state/pkg/config"
	"github.com/dwikikusuma/storefront-state/pkg/eventloop"
	"github.com/dwikikusuma/storefront-state/pkg/logger"
	"github.com/dwikikusuma/storefront-state/pkg/shutdown"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "storefront", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	initial, err := themedomain.ParseTheme(cfg.InitialTheme)
	if err != nil {
		log.Warn("bad initial theme, using light", slog.Any("err", err))
	}

	// Catalog
	catalogRepo, err := memory.NewProductRepo(memory.DummyProducts()...)
	if err != nil {
		log.Error("catalog init failed", slog.Any("err", err))
		os.Exit(1)
	}
	catalogSvc := catalogapp.NewService(catalogRepo)

	products, err := catalogSvc.ListProducts(ctx)
	if err != nil {
		log.Error("catalog list failed", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("catalog loaded", slog.Int("products", len(products)))

	// Stores
	themeStore := themeapp.NewStore(initial, log)
	cartStore := cartapp.NewStore(cartadapter.NewCatalogServiceReader(catalogSvc), log)

	// Checkout (adapters)
	checkoutSvc := checkoutapp.NewService(checkoutadapter.NewCartStoreReader(cartStore), checkoutapp.DefaultCurrency)

	app := &storefront{
		log:      log,
		theme:    themeStore,
		cart:     cartStore,
		checkout: checkoutSvc,
	}
	app.mountViews(ctx)

	loop := eventloop.New(cfg.EventBuffer, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})
	g.Go(func() error {
		defer loop.Close()
		return replay(gctx, loop, app, demoSession())
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("storefront stopped", slog.Any("err", err))
		os.Exit(1)
	}
	var sig shutdown.Signal
	if errors.As(context.Cause(ctx), &sig) {
		log.Info("shutdown requested", slog.String("signal", sig.String()))
	}
	log.Info("bye")
}
