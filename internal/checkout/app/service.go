package app

import (
	"context"
	"fmt"
	"math"

	"github.com/dwikikusuma/storefront-state/internal/checkout/domain"
)

const DefaultCurrency = "USD"

// CartReader exposes the cart's current line items. Prices are the
// snapshots taken when each item was added, in dollars.
type CartReader interface {
	GetCart(ctx context.Context) ([]CartItem, error)
}

type CartItem struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int64
}

type Service struct {
	Cart CartReader

	currency string
}

func NewService(cart CartReader, currency string) *Service {
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Service{
		Cart:     cart,
		currency: currency,
	}
}

// Quote prices the cart from its own snapshots; the catalog is not
// consulted. An empty cart yields an empty quote with a zero total.
func (s *Service) Quote(ctx context.Context) (domain.Quote, error) {
	items, err := s.Cart.GetCart(ctx)
	if err != nil {
		return domain.Quote{}, err
	}

	lines := make([]domain.QuoteLine, 0, len(items))
	var totalAmount int64

	for _, it := range items {
		if it.Quantity <= 0 {
			return domain.Quote{}, fmt.Errorf("item %s: quantity must be greater than zero: %d", it.ProductID, it.Quantity)
		}

		unit := toMinor(it.Price)
		lineTotal := unit * it.Quantity
		lines = append(lines, domain.QuoteLine{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: domain.Money{Currency: s.currency, Amount: unit},
			LineTotal: domain.Money{Currency: s.currency, Amount: lineTotal},
		})
		totalAmount += lineTotal
	}

	return domain.Quote{
		Lines: lines,
		Total: domain.Money{
			Currency: s.currency,
			Amount:   totalAmount,
		},
	}, nil
}

func toMinor(price float64) int64 {
	return int64(math.Round(price * 100))
}
