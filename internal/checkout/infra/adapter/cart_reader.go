package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/storefront-state/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/storefront-state/internal/checkout/app"
)

type CartStoreReader struct {
	store *cartapp.Store
}

func NewCartStoreReader(store *cartapp.Store) *CartStoreReader {
	return &CartStoreReader{store: store}
}

func (r *CartStoreReader) GetCart(_ context.Context) ([]checkoutapp.CartItem, error) {
	cartItems := r.store.Items()

	items := make([]checkoutapp.CartItem, 0, len(cartItems))
	for _, it := range cartItems {
		items = append(items, checkoutapp.CartItem{
			ProductID: it.ID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  int64(it.Quantity),
		})
	}
	return items, nil
}
