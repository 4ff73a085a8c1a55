package models

// CartItem is one line in a shopper's cart. Two lines are the same line item
// when product, color and size all match; adding a duplicate merges quantities
// instead of appending a second row.
type CartItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	UnitPrice int    `json:"unitPrice"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
	Quantity  int    `json:"quantity"`
}

// VariantKey identifies a line item for merge and removal purposes.
type VariantKey struct {
	ProductID string
	Color     string
	Size      string
}

func (i CartItem) Key() VariantKey {
	return VariantKey{ProductID: i.ProductID, Color: i.Color, Size: i.Size}
}

type Cart struct {
	Items []CartItem `json:"items"`
	Total int        `json:"total"`
}

// Subtotal recomputes the cart total from the item list. The stored Total is
// only ever a copy of this value, never maintained independently.
func (c *Cart) Subtotal() int {
	sum := 0
	for _, i := range c.Items {
		sum += i.UnitPrice * i.Quantity
	}
	return sum
}
