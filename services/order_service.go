package services

import (
	"context"
	"fmt"
	"log"

	"apparel-shop/models"
	"apparel-shop/repositories"
)

// EmailSender dispatches a typed transactional email and returns a message id.
type EmailSender interface {
	Send(to, subject, emailType string, data map[string]string) (string, error)
}

type OrderService struct {
	orders repositories.OrderRepository
	emails EmailSender
}

func NewOrderService(orders repositories.OrderRepository, emails EmailSender) *OrderService {
	return &OrderService{orders: orders, emails: emails}
}

func (s *OrderService) GetUserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orders.FindByUser(ctx, userID)
}

// GetUserOrder loads one order scoped to its owner. An order that exists but
// belongs to someone else reads as not found.
func (s *OrderService) GetUserOrder(ctx context.Context, userID, orderID string) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, repositories.ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.FindAll(ctx)
}

// UpdateStatus moves an order to the given status. Shipped, delivered and
// cancelled dispatch the matching customer email; a failed send is logged but
// never fails the update.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status string) (*models.Order, error) {
	newStatus := models.OrderStatus(status)
	if !newStatus.Valid() {
		return nil, ErrInvalidOrderStatus
	}

	order, err := s.orders.UpdateStatus(ctx, orderID, newStatus)
	if err != nil {
		return nil, err
	}

	if emailType := statusEmailType(newStatus); emailType != "" && s.emails != nil && order.UserEmail != "" {
		go s.sendStatusEmail(order, emailType)
	}

	return order, nil
}

func statusEmailType(status models.OrderStatus) string {
	switch status {
	case models.OrderStatusShipped:
		return EmailTypeOrderShipped
	case models.OrderStatusDelivered:
		return EmailTypeOrderDelivered
	case models.OrderStatusCancelled:
		return EmailTypeOrderCancelled
	}
	return ""
}

func (s *OrderService) sendStatusEmail(order *models.Order, emailType string) {
	subject := fmt.Sprintf("Order %s - %s", order.OrderNumber, order.Status)
	data := map[string]string{
		"name":        order.ShippingAddress.Name,
		"orderNumber": order.OrderNumber,
	}
	if _, err := s.emails.Send(order.UserEmail, subject, emailType, data); err != nil {
		log.Printf("Failed to send %s email for order %s: %v", emailType, order.OrderNumber, err)
	}
}
