package services

import (
	"context"
	"testing"

	"apparel-shop/models"
	"apparel-shop/repositories"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupWishlistService(t *testing.T) *WishlistService {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewWishlistService(repositories.NewRedisWishlistRepository(client))
}

func TestToggle_AddsWhenAbsent(t *testing.T) {
	svc := setupWishlistService(t)
	ctx := context.Background()

	item := models.WishlistItem{ProductID: "p1", Name: "Oversized Tee", UnitPrice: 599}
	wishlist, added, err := svc.Toggle(ctx, "user1", item)
	require.NoError(t, err)

	assert.True(t, added)
	require.Len(t, wishlist.Items, 1)
	assert.Equal(t, "p1", wishlist.Items[0].ProductID)
}

func TestToggle_RemovesWhenPresent(t *testing.T) {
	svc := setupWishlistService(t)
	ctx := context.Background()

	item := models.WishlistItem{ProductID: "p1", Name: "Oversized Tee", UnitPrice: 599}
	_, _, err := svc.Toggle(ctx, "user1", item)
	require.NoError(t, err)

	wishlist, added, err := svc.Toggle(ctx, "user1", item)
	require.NoError(t, err)

	assert.False(t, added)
	assert.Empty(t, wishlist.Items)
}

func TestIsInWishlist(t *testing.T) {
	svc := setupWishlistService(t)
	ctx := context.Background()

	_, _, err := svc.Toggle(ctx, "user1", models.WishlistItem{ProductID: "p1", Name: "Oversized Tee", UnitPrice: 599})
	require.NoError(t, err)

	in, err := svc.IsInWishlist(ctx, "user1", "p1")
	require.NoError(t, err)
	assert.True(t, in)

	in, err = svc.IsInWishlist(ctx, "user1", "p2")
	require.NoError(t, err)
	assert.False(t, in)
}

func TestRemove(t *testing.T) {
	svc := setupWishlistService(t)
	ctx := context.Background()

	_, _, err := svc.Toggle(ctx, "user1", models.WishlistItem{ProductID: "p1", Name: "Oversized Tee", UnitPrice: 599})
	require.NoError(t, err)
	_, _, err = svc.Toggle(ctx, "user1", models.WishlistItem{ProductID: "p2", Name: "Cargo Pants", UnitPrice: 1299})
	require.NoError(t, err)

	wishlist, err := svc.Remove(ctx, "user1", "p1")
	require.NoError(t, err)

	require.Len(t, wishlist.Items, 1)
	assert.Equal(t, "p2", wishlist.Items[0].ProductID)
}
