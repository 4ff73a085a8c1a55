package services

import (
	"context"
	"testing"
	"time"

	"apparel-shop/models"
	"apparel-shop/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrder(t *testing.T, repo *memoryOrderRepo, userID string) *models.Order {
	order := &models.Order{
		UserID:    userID,
		UserEmail: userID + "@example.com",
		Items: []models.CartItem{
			{ProductID: "p1", Name: "Oversized Tee", UnitPrice: 599, Quantity: 1},
		},
		ShippingAddress: testAddress(),
		PaymentMethod:   models.PaymentMethodCOD,
		PaymentStatus:   models.PaymentStatusPending,
		Subtotal:        599,
		Tax:             108,
		Total:           707,
	}
	require.NoError(t, repo.Create(context.Background(), order))
	return order
}

func TestGetUserOrder_OwnershipScoped(t *testing.T) {
	repo := &memoryOrderRepo{}
	svc := NewOrderService(repo, nil)
	order := seedOrder(t, repo, "user1")

	got, err := svc.GetUserOrder(context.Background(), "user1", order.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, order.OrderNumber, got.OrderNumber)

	// Someone else's order reads as not found, not as forbidden.
	_, err = svc.GetUserOrder(context.Background(), "user2", order.ID.Hex())
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)
}

func TestGetUserOrders(t *testing.T) {
	repo := &memoryOrderRepo{}
	svc := NewOrderService(repo, nil)
	seedOrder(t, repo, "user1")
	seedOrder(t, repo, "user1")
	seedOrder(t, repo, "user2")

	orders, err := svc.GetUserOrders(context.Background(), "user1")
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := &memoryOrderRepo{}
	svc := NewOrderService(repo, nil)
	order := seedOrder(t, repo, "user1")

	_, err := svc.UpdateStatus(context.Background(), order.ID.Hex(), "returned")
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	svc := NewOrderService(&memoryOrderRepo{}, nil)

	_, err := svc.UpdateStatus(context.Background(), "64f000000000000000000000", "shipped")
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)
}

func TestUpdateStatus_ShippedSendsEmail(t *testing.T) {
	repo := &memoryOrderRepo{}
	emails := &fakeEmailSender{}
	svc := NewOrderService(repo, emails)
	order := seedOrder(t, repo, "user1")

	updated, err := svc.UpdateStatus(context.Background(), order.ID.Hex(), "shipped")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)

	assert.Eventually(t, func() bool { return len(emails.sent()) == 1 },
		time.Second, 10*time.Millisecond)

	sent := emails.sent()[0]
	assert.Equal(t, "user1@example.com", sent.To)
	assert.Equal(t, EmailTypeOrderShipped, sent.EmailType)
	assert.Equal(t, order.OrderNumber, sent.Data["orderNumber"])
}

func TestUpdateStatus_CancelledSendsEmail(t *testing.T) {
	repo := &memoryOrderRepo{}
	emails := &fakeEmailSender{}
	svc := NewOrderService(repo, emails)
	order := seedOrder(t, repo, "user1")

	_, err := svc.UpdateStatus(context.Background(), order.ID.Hex(), "cancelled")
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return len(emails.sent()) == 1 },
		time.Second, 10*time.Millisecond)
	assert.Equal(t, EmailTypeOrderCancelled, emails.sent()[0].EmailType)
}

func TestUpdateStatus_ProcessingSendsNoEmail(t *testing.T) {
	repo := &memoryOrderRepo{}
	emails := &fakeEmailSender{}
	svc := NewOrderService(repo, emails)
	order := seedOrder(t, repo, "user1")

	_, err := svc.UpdateStatus(context.Background(), order.ID.Hex(), "processing")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, emails.sent())
}
