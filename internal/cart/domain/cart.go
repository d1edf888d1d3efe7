package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrUnknownAction = errors.New("unknown cart action")
)

// CartItem holds a snapshot of the product's name and price taken when it
// was first added. Quantity is always at least 1.
type CartItem struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
}

// Cart lists items in the order their products were first added, with at
// most one item per product id.
type Cart struct {
	Items []CartItem
}

func (c Cart) Len() int {
	return len(c.Items)
}

func (c Cart) Item(id string) (CartItem, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.Items[i], true
	}
	return CartItem{}, false
}

func (c Cart) TotalQuantity() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// Clone returns a cart that shares no memory with c.
func (c Cart) Clone() Cart {
	if c.Items == nil {
		return Cart{}
	}
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}

func (c Cart) indexOf(id string) int {
	for i, it := range c.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
