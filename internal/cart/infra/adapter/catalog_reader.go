package adapter

import (
	"context"
	"errors"
	"fmt"

	cartdomain "github.com/dwikikusuma/storefront-state/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/storefront-state/internal/catalog/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, productID string) (cartdomain.Product, error) {
	p, err := r.svc.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, catalogapp.ErrNotFound) || errors.Is(err, catalogapp.ErrInvalidInput) {
			return cartdomain.Product{}, fmt.Errorf("product %q: %w", productID, cartdomain.ErrNotFound)
		}
		return cartdomain.Product{}, err
	}

	return cartdomain.Product{
		ID:    p.ID,
		Name:  p.Title,
		Price: p.Price,
	}, nil
}
