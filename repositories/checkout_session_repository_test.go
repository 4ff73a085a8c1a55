package repositories

import (
	"context"
	"testing"
	"time"

	"apparel-shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() *CheckoutSession {
	return &CheckoutSession{
		UserID:         "user1",
		UserEmail:      "user1@example.com",
		IdempotencyKey: "key-1",
		Items: []models.CartItem{
			{ProductID: "p1", Name: "Denim Jacket", UnitPrice: 2000, Quantity: 1},
		},
		ShippingAddress: models.ShippingAddress{Name: "Asha Verma", Phone: "9876543210", Line1: "14 MG Road"},
		Subtotal:        2000,
		Tax:             360,
		Total:           2360,
		CreatedAt:       time.Now(),
	}
}

func TestCheckoutSessionRepository_PutAndGet(t *testing.T) {
	client, mr := setupRedis(t)
	repo := NewRedisCheckoutSessionRepository(client, 30*time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "order_rzp_1", testSession()))
	assert.True(t, mr.Exists("checkout-session:order_rzp_1"))

	session, err := repo.Get(ctx, "order_rzp_1")
	require.NoError(t, err)
	assert.Equal(t, "user1", session.UserID)
	assert.Equal(t, "key-1", session.IdempotencyKey)
	assert.Equal(t, 2360, session.Total)
}

func TestCheckoutSessionRepository_ExpiresAfterTTL(t *testing.T) {
	client, mr := setupRedis(t)
	repo := NewRedisCheckoutSessionRepository(client, 30*time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "order_rzp_1", testSession()))

	// An abandoned payment attempt must not stay claimable forever.
	mr.FastForward(31 * time.Minute)

	_, err := repo.Get(ctx, "order_rzp_1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCheckoutSessionRepository_GetMissing(t *testing.T) {
	client, _ := setupRedis(t)
	repo := NewRedisCheckoutSessionRepository(client, 30*time.Minute)

	_, err := repo.Get(context.Background(), "order_unknown")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCheckoutSessionRepository_Delete(t *testing.T) {
	client, mr := setupRedis(t)
	repo := NewRedisCheckoutSessionRepository(client, 30*time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "order_rzp_1", testSession()))
	require.NoError(t, repo.Delete(ctx, "order_rzp_1"))

	assert.False(t, mr.Exists("checkout-session:order_rzp_1"))
}
