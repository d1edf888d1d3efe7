package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/storefront-state/internal/catalog/app"
	"github.com/dwikikusuma/storefront-state/internal/catalog/domain"
)

var ErrDuplicateProduct = errors.New("duplicate product id")

// ProductRepo is a read-only catalog held in memory. It keeps the order
// products were supplied in.
type ProductRepo struct {
	products []domain.Product
	index    map[string]int
}

func NewProductRepo(products ...domain.Product) (*ProductRepo, error) {
	r := &ProductRepo{
		products: make([]domain.Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}

	for i, p := range products {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return nil, fmt.Errorf("product %d: %w", i, app.ErrInvalidInput)
		}
		if _, ok := r.index[id]; ok {
			return nil, fmt.Errorf("product %s: %w", id, ErrDuplicateProduct)
		}
		p.ID = id
		r.index[id] = len(r.products)
		r.products = append(r.products, p)
	}

	return r, nil
}

func (r *ProductRepo) Get(_ context.Context, id string) (domain.Product, error) {
	i, ok := r.index[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return r.products[i], nil
}

func (r *ProductRepo) List(context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}
