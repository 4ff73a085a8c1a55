package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"apparel-shop/models"

	"github.com/redis/go-redis/v9"
)

type WishlistRepository interface {
	Load(ctx context.Context, userID string) (*models.Wishlist, error)
	Save(ctx context.Context, userID string, wishlist *models.Wishlist) error
}

const wishlistKeyPrefix = "wishlist-storage"

type RedisWishlistRepository struct {
	client *redis.Client
}

func NewRedisWishlistRepository(client *redis.Client) *RedisWishlistRepository {
	return &RedisWishlistRepository{client: client}
}

func (r *RedisWishlistRepository) Load(ctx context.Context, userID string) (*models.Wishlist, error) {
	data, err := r.client.Get(ctx, wishlistKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &models.Wishlist{Items: []models.WishlistItem{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var wishlist models.Wishlist
	if err := json.Unmarshal(data, &wishlist); err != nil {
		return nil, fmt.Errorf("unmarshal wishlist failed: %w", err)
	}
	if wishlist.Items == nil {
		wishlist.Items = []models.WishlistItem{}
	}
	return &wishlist, nil
}

func (r *RedisWishlistRepository) Save(ctx context.Context, userID string, wishlist *models.Wishlist) error {
	data, err := json.Marshal(wishlist)
	if err != nil {
		return fmt.Errorf("marshal wishlist failed: %w", err)
	}
	if err := r.client.Set(ctx, wishlistKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func wishlistKey(userID string) string {
	return fmt.Sprintf("%s:%s", wishlistKeyPrefix, userID)
}
