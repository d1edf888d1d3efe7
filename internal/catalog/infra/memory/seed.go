package memory

import "github.com/dwikikusuma/storefront-state/internal/catalog/domain"

// DummyProducts is the storefront's starter catalog.
func DummyProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "p1",
			Title:       "European Classic Jacket",
			Price:       89.99,
			Description: "A classic European-style jacket in soft wool.",
			Image:       "jacket-1.jpg",
		},
		{
			ID:          "p2",
			Title:       "Autumn Elegance Coat",
			Price:       129.99,
			Description: "A long coat in warm autumn tones.",
			Image:       "coat-1.jpg",
		},
		{
			ID:          "p3",
			Title:       "Vintage Waistcoat",
			Price:       69.99,
			Description: "A tailored waistcoat with a vintage cut.",
			Image:       "waistcoat-1.jpg",
		},
		{
			ID:          "p4",
			Title:       "Moonlight Evening Gown",
			Price:       149.99,
			Description: "A floor-length gown for evening events.",
			Image:       "gown-1.jpg",
		},
		{
			ID:          "p5",
			Title:       "Executive Suit",
			Price:       189.99,
			Description: "A two-piece suit cut for the office.",
			Image:       "suit-1.jpg",
		},
		{
			ID:          "p6",
			Title:       "Summer Linen Shirt",
			Price:       49.99,
			Description: "A breathable linen shirt for warm days.",
			Image:       "shirt-1.jpg",
		},
	}
}
