package services

import (
	"context"

	"apparel-shop/models"
	"apparel-shop/repositories"
)

// CartService is an explicitly constructed cart state container. Every
// mutation loads the snapshot, applies the change, recomputes the total from
// the item list and writes the full state back (write-through), so the cart
// survives restarts and the total can never drift from the items.
type CartService struct {
	repo repositories.CartRepository
}

func NewCartService(repo repositories.CartRepository) *CartService {
	return &CartService{repo: repo}
}

func (s *CartService) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	return s.repo.Load(ctx, userID)
}

// AddItem merges on the (productId, color, size) identity key: re-adding an
// existing variant increments its quantity, anything else appends a row.
func (s *CartService) AddItem(ctx context.Context, userID string, item models.CartItem) (*models.Cart, error) {
	if item.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	cart, err := s.repo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].Key() == item.Key() {
			cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, item)
	}

	return s.save(ctx, userID, cart)
}

// UpdateQuantity overwrites the quantity of one variant row. Zero and negative
// quantities are rejected; removal is an explicit operation.
func (s *CartService) UpdateQuantity(ctx context.Context, userID string, key models.VariantKey, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	cart, err := s.repo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].Key() == key {
			cart.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, ErrItemNotFound
	}

	return s.save(ctx, userID, cart)
}

// RemoveItem removes exactly one variant row, using the same compound key the
// merge uses. Sibling variants of the same product are left alone.
func (s *CartService) RemoveItem(ctx context.Context, userID string, key models.VariantKey) (*models.Cart, error) {
	cart, err := s.repo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.Key() != key {
			items = append(items, item)
		}
	}
	cart.Items = items

	return s.save(ctx, userID, cart)
}

// ClearCart empties the cart in one write. Called exactly once per successful
// checkout, as its final step.
func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	return s.repo.Clear(ctx, userID)
}

func (s *CartService) save(ctx context.Context, userID string, cart *models.Cart) (*models.Cart, error) {
	cart.Total = cart.Subtotal()
	if err := s.repo.Save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
