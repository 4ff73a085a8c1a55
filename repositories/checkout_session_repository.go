package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"apparel-shop/models"

	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("checkout session not found or expired")

// CheckoutSession is the state parked while an online payment attempt is
// suspended at the provider-hosted UI. It expires after the configured TTL so
// an abandoned attempt cannot stay pending forever.
type CheckoutSession struct {
	UserID          string                 `json:"userId"`
	UserEmail       string                 `json:"userEmail"`
	IdempotencyKey  string                 `json:"idempotencyKey"`
	Items           []models.CartItem      `json:"items"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	Subtotal        int                    `json:"subtotal"`
	Tax             int                    `json:"tax"`
	Total           int                    `json:"total"`
	CreatedAt       time.Time              `json:"createdAt"`
}

type CheckoutSessionRepository interface {
	Put(ctx context.Context, providerOrderID string, session *CheckoutSession) error
	Get(ctx context.Context, providerOrderID string) (*CheckoutSession, error)
	Delete(ctx context.Context, providerOrderID string) error
}

const checkoutSessionKeyPrefix = "checkout-session"

type RedisCheckoutSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCheckoutSessionRepository(client *redis.Client, ttl time.Duration) *RedisCheckoutSessionRepository {
	return &RedisCheckoutSessionRepository{client: client, ttl: ttl}
}

func (r *RedisCheckoutSessionRepository) Put(ctx context.Context, providerOrderID string, session *CheckoutSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal checkout session failed: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(providerOrderID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisCheckoutSessionRepository) Get(ctx context.Context, providerOrderID string) (*CheckoutSession, error) {
	data, err := r.client.Get(ctx, sessionKey(providerOrderID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var session CheckoutSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal checkout session failed: %w", err)
	}
	return &session, nil
}

func (r *RedisCheckoutSessionRepository) Delete(ctx context.Context, providerOrderID string) error {
	if err := r.client.Del(ctx, sessionKey(providerOrderID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func sessionKey(providerOrderID string) string {
	return fmt.Sprintf("%s:%s", checkoutSessionKeyPrefix, providerOrderID)
}
