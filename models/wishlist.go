package models

// WishlistItem is a saved-for-later product. Wishlists have no quantity
// semantics; presence is a boolean per product.
type WishlistItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int    `json:"unitPrice"`
	Image     string `json:"image,omitempty"`
}

type Wishlist struct {
	Items []WishlistItem `json:"items"`
}

func (w *Wishlist) Contains(productID string) bool {
	for _, i := range w.Items {
		if i.ProductID == productID {
			return true
		}
	}
	return false
}
