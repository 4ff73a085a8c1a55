package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"apparel-shop/models"

	"github.com/redis/go-redis/v9"
)

// CartRepository is the durable snapshot boundary for a shopper's cart. Every
// mutation in the cart service writes the full state back through Save, so the
// snapshot survives a restart and can be restored verbatim.
type CartRepository interface {
	Load(ctx context.Context, userID string) (*models.Cart, error)
	Save(ctx context.Context, userID string, cart *models.Cart) error
	Clear(ctx context.Context, userID string) error
}

const cartKeyPrefix = "cart-storage"

type RedisCartRepository struct {
	client *redis.Client
}

func NewRedisCartRepository(client *redis.Client) *RedisCartRepository {
	return &RedisCartRepository{client: client}
}

func (r *RedisCartRepository) Load(ctx context.Context, userID string) (*models.Cart, error) {
	data, err := r.client.Get(ctx, cartKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &models.Cart{Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

func (r *RedisCartRepository) Save(ctx context.Context, userID string, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	// No TTL: this is the cart's primary store, not a cache.
	if err := r.client.Set(ctx, cartKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisCartRepository) Clear(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cartKey(userID string) string {
	return fmt.Sprintf("%s:%s", cartKeyPrefix, userID)
}
