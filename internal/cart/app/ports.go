package app

import (
	"context"

	"github.com/dwikikusuma/storefront-state/internal/cart/domain"
)

// CatalogReader resolves products for new cart items. Unknown ids must
// yield an error wrapping domain.ErrNotFound.
type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (domain.Product, error)
}
