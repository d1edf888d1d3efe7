package domain

import "fmt"

// Product is the catalog data the reducer copies into a new CartItem.
type Product struct {
	ID    string
	Name  string
	Price float64
}

// LookupFunc resolves a product id against the catalog. It must return an
// error wrapping ErrNotFound when the id is unknown.
type LookupFunc func(productID string) (Product, error)

// Action is one of AddItem or UpdateQuantity.
type Action interface {
	isCartAction()
}

type AddItem struct {
	ProductID string
}

type UpdateQuantity struct {
	ProductID string
	Delta     int
}

func (AddItem) isCartAction()        {}
func (UpdateQuantity) isCartAction() {}

// Reduce applies a to c and returns the resulting cart. c is never
// modified; on error c is returned as-is.
func Reduce(c Cart, a Action, lookup LookupFunc) (Cart, error) {
	switch act := a.(type) {
	case AddItem:
		return addItem(c, act, lookup)
	case UpdateQuantity:
		return updateQuantity(c, act)
	default:
		return c, fmt.Errorf("%T: %w", a, ErrUnknownAction)
	}
}

func addItem(c Cart, act AddItem, lookup LookupFunc) (Cart, error) {
	product, err := lookup(act.ProductID)
	if err != nil {
		return c, fmt.Errorf("add item %s: %w", act.ProductID, err)
	}

	items := make([]CartItem, len(c.Items), len(c.Items)+1)
	copy(items, c.Items)

	if i := c.indexOf(act.ProductID); i >= 0 {
		updated := items[i]
		updated.Quantity++
		items[i] = updated
		return Cart{Items: items}, nil
	}

	items = append(items, CartItem{
		ID:       act.ProductID,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: 1,
	})
	return Cart{Items: items}, nil
}

func updateQuantity(c Cart, act UpdateQuantity) (Cart, error) {
	i := c.indexOf(act.ProductID)
	if i < 0 {
		return c, fmt.Errorf("update quantity %s: cart item %w", act.ProductID, ErrNotFound)
	}

	updated := c.Items[i]
	updated.Quantity += act.Delta

	if updated.Quantity <= 0 {
		items := make([]CartItem, 0, len(c.Items)-1)
		items = append(items, c.Items[:i]...)
		items = append(items, c.Items[i+1:]...)
		return Cart{Items: items}, nil
	}

	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	items[i] = updated
	return Cart{Items: items}, nil
}
