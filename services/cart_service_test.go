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

func setupCartService(t *testing.T) (*CartService, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCartService(repositories.NewRedisCartRepository(client)), client
}

func TestAddItem_MergesSameVariant(t *testing.T) {
	svc, _ := setupCartService(t)
	ctx := context.Background()

	item := models.CartItem{ProductID: "p1", Name: "Oversized Tee", UnitPrice: 599, Color: "Black", Size: "M", Quantity: 2}
	_, err := svc.AddItem(ctx, "user1", item)
	require.NoError(t, err)

	item.Quantity = 3
	cart, err := svc.AddItem(ctx, "user1", item)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 599*5, cart.Total)
}

func TestAddItem_DifferentVariantAppends(t *testing.T) {
	svc, _ := setupCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user1",
		models.CartItem{ProductID: "p1", Name: "Oversized Tee", UnitPrice: 599, Color: "Black", Size: "M", Quantity: 1})
	require.NoError(t, err)

	// Same product, different size: its own row.
	cart, err := svc.AddItem(ctx, "user1",
		models.CartItem{ProductID: "p1", Name: "Oversized Tee", UnitPrice: 599, Color: "Black", Size: "L", Quantity: 1})
	require.NoError(t, err)

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 599*2, cart.Total)
}

func TestAddItem_RejectsNonPositiveQuantity(t *testing.T) {
	svc, _ := setupCartService(t)

	for _, qty := range []int{0, -1} {
		_, err := svc.AddItem(context.Background(), "user1",
			models.CartItem{ProductID: "p1", Name: "Oversized Tee", UnitPrice: 599, Quantity: qty})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
}

func TestUpdateQuantity(t *testing.T) {
	svc, _ := setupCartService(t)
	ctx := context.Background()

	item := models.CartItem{ProductID: "p1", Name: "Oversized Tee", UnitPrice: 599, Color: "Black", Size: "M", Quantity: 2}
	_, err := svc.AddItem(ctx, "user1", item)
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(ctx, "user1", item.Key(), 4)
	require.NoError(t, err)
	assert.Equal(t, 4, cart.Items[0].Quantity)
	assert.Equal(t, 599*4, cart.Total)
}

func TestUpdateQuantity_RejectsZero(t *testing.T) {
	svc, _ := setupCartService(t)
	ctx := context.Background()

	item := models.CartItem{ProductID: "p1", Name: "Oversized Tee", UnitPrice: 599, Quantity: 2}
	_, err := svc.AddItem(ctx, "user1", item)
	require.NoError(t, err)

	_, err = svc.UpdateQuantity(ctx, "user1", item.Key(), 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestUpdateQuantity_MissingVariant(t *testing.T) {
	svc, _ := setupCartService(t)

	_, err := svc.UpdateQuantity(context.Background(), "user1",
		models.VariantKey{ProductID: "ghost", Size: "M"}, 2)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveItem_OnlyRemovesMatchingVariant(t *testing.T) {
	svc, _ := setupCartService(t)
	ctx := context.Background()

	black := models.CartItem{ProductID: "p1", Name: "Oversized Tee", UnitPrice: 599, Color: "Black", Size: "M", Quantity: 1}
	white := models.CartItem{ProductID: "p1", Name: "Oversized Tee", UnitPrice: 599, Color: "White", Size: "M", Quantity: 1}
	_, err := svc.AddItem(ctx, "user1", black)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "user1", white)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, "user1", black.Key())
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "White", cart.Items[0].Color)
	assert.Equal(t, 599, cart.Total)
}

func TestClearCart(t *testing.T) {
	svc, _ := setupCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user1",
		models.CartItem{ProductID: "p1", Name: "Oversized Tee", UnitPrice: 599, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, svc.ClearCart(ctx, "user1"))

	cart, err := svc.GetCart(ctx, "user1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.Total)
}

func TestCart_SurvivesServiceRestart(t *testing.T) {
	svc, client := setupCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user1",
		models.CartItem{ProductID: "p1", Name: "Oversized Tee", UnitPrice: 599, Size: "M", Quantity: 2})
	require.NoError(t, err)

	// A fresh service over the same store sees the identical snapshot.
	restarted := NewCartService(repositories.NewRedisCartRepository(client))
	cart, err := restarted.GetCart(ctx, "user1")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 599*2, cart.Total)
}

func TestCart_TotalRecomputedFromItems(t *testing.T) {
	svc, _ := setupCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user1",
		models.CartItem{ProductID: "p1", Name: "Oversized Tee", UnitPrice: 599, Quantity: 2})
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "user1",
		models.CartItem{ProductID: "p2", Name: "Cargo Pants", UnitPrice: 1299, Quantity: 1})
	require.NoError(t, err)

	want := 0
	for _, i := range cart.Items {
		want += i.UnitPrice * i.Quantity
	}
	assert.Equal(t, want, cart.Total)
}
