package services

import (
	"context"

	"apparel-shop/models"
	"apparel-shop/repositories"
)

// WishlistService holds saved-for-later items, unique by product. Toggle is a
// read-then-write; acceptable because the wishlist is private to one shopper
// session.
type WishlistService struct {
	repo repositories.WishlistRepository
}

func NewWishlistService(repo repositories.WishlistRepository) *WishlistService {
	return &WishlistService{repo: repo}
}

func (s *WishlistService) GetWishlist(ctx context.Context, userID string) (*models.Wishlist, error) {
	return s.repo.Load(ctx, userID)
}

func (s *WishlistService) IsInWishlist(ctx context.Context, userID, productID string) (bool, error) {
	wishlist, err := s.repo.Load(ctx, userID)
	if err != nil {
		return false, err
	}
	return wishlist.Contains(productID), nil
}

// Toggle adds the item when absent and removes it when present. Returns the
// resulting wishlist and whether the item is now in it.
func (s *WishlistService) Toggle(ctx context.Context, userID string, item models.WishlistItem) (*models.Wishlist, bool, error) {
	wishlist, err := s.repo.Load(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	if wishlist.Contains(item.ProductID) {
		items := wishlist.Items[:0]
		for _, i := range wishlist.Items {
			if i.ProductID != item.ProductID {
				items = append(items, i)
			}
		}
		wishlist.Items = items
		if err := s.repo.Save(ctx, userID, wishlist); err != nil {
			return nil, false, err
		}
		return wishlist, false, nil
	}

	wishlist.Items = append(wishlist.Items, item)
	if err := s.repo.Save(ctx, userID, wishlist); err != nil {
		return nil, false, err
	}
	return wishlist, true, nil
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID string) (*models.Wishlist, error) {
	wishlist, err := s.repo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := wishlist.Items[:0]
	for _, i := range wishlist.Items {
		if i.ProductID != productID {
			items = append(items, i)
		}
	}
	wishlist.Items = items

	if err := s.repo.Save(ctx, userID, wishlist); err != nil {
		return nil, err
	}
	return wishlist, nil
}
