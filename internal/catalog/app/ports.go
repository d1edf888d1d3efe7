package app

import (
	"context"

	"github.com/dwikikusuma/storefront-state/internal/catalog/domain"
)

type ProductRepo interface {
	Get(ctx context.Context, id string) (domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}
