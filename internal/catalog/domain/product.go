package domain

// Product is read-only reference data. Price is in dollars.
type Product struct {
	ID          string
	Title       string
	Price       float64
	Description string
	Image       string
}
