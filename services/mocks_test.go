package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"apparel-shop/models"
	"apparel-shop/repositories"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryOrderRepo implements repositories.OrderRepository in memory, with the
// same idempotency-key uniqueness the Mongo index enforces.
type memoryOrderRepo struct {
	mu        sync.Mutex
	orders    []*models.Order
	createErr error
}

func (m *memoryOrderRepo) Create(_ context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createErr != nil {
		return m.createErr
	}
	if len(order.Items) == 0 {
		return repositories.ErrEmptyCart
	}
	if !order.ShippingAddress.Complete() {
		return repositories.ErrInvalidAddress
	}
	if order.IdempotencyKey != "" {
		for _, o := range m.orders {
			if o.IdempotencyKey == order.IdempotencyKey {
				return repositories.ErrDuplicateCheckout
			}
		}
	}

	now := time.Now()
	order.ID = primitive.NewObjectID()
	order.OrderNumber = "ORD-" + strings.ToUpper(uuid.NewString()[:8])
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.Status == "" {
		order.Status = models.OrderStatusProcessing
	}
	m.orders = append(m.orders, order)
	return nil
}

func (m *memoryOrderRepo) FindByID(_ context.Context, id string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, o := range m.orders {
		if o.ID.Hex() == id {
			return o, nil
		}
	}
	return nil, repositories.ErrOrderNotFound
}

func (m *memoryOrderRepo) FindByIdempotencyKey(_ context.Context, key string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if key == "" {
		return nil, repositories.ErrOrderNotFound
	}
	for _, o := range m.orders {
		if o.IdempotencyKey == key {
			return o, nil
		}
	}
	return nil, repositories.ErrOrderNotFound
}

func (m *memoryOrderRepo) FindByUser(_ context.Context, userID string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	orders := []models.Order{}
	for _, o := range m.orders {
		if o.UserID == userID {
			orders = append(orders, *o)
		}
	}
	return orders, nil
}

func (m *memoryOrderRepo) FindAll(_ context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	orders := []models.Order{}
	for _, o := range m.orders {
		orders = append(orders, *o)
	}
	return orders, nil
}

func (m *memoryOrderRepo) UpdateStatus(_ context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, o := range m.orders {
		if o.ID.Hex() == id {
			o.Status = status
			o.UpdatedAt = time.Now()
			return o, nil
		}
	}
	return nil, repositories.ErrOrderNotFound
}

func (m *memoryOrderRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

// fakeGateway implements PaymentGateway with a fixed provider order id and one
// accepted signature.
type fakeGateway struct {
	nextOrderID    string
	validSignature string
	createErr      error

	mu            sync.Mutex
	createdOrders []*ProviderOrder
}

func (g *fakeGateway) CreateOrder(_ context.Context, amount int, receipt string, _ map[string]interface{}) (*ProviderOrder, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}

	order := &ProviderOrder{
		ID:       g.nextOrderID,
		Amount:   amount,
		Currency: "INR",
		Receipt:  receipt,
	}
	g.mu.Lock()
	g.createdOrders = append(g.createdOrders, order)
	g.mu.Unlock()
	return order, nil
}

func (g *fakeGateway) VerifySignature(_, _, signature string) bool {
	return signature == g.validSignature
}

func (g *fakeGateway) KeyID() string {
	return "rzp_test_key"
}

// fakeNotifier records confirmation emails; safe for the async dispatch in
// finishCheckout.
type fakeNotifier struct {
	mu     sync.Mutex
	orders []*models.Order
}

func (n *fakeNotifier) SendOrderConfirmation(order *models.Order) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.orders = append(n.orders, order)
	return nil
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.orders)
}

// fakeEmailSender implements EmailSender for status-update emails.
type fakeEmailSender struct {
	mu    sync.Mutex
	sends []sentEmail
}

type sentEmail struct {
	To        string
	Subject   string
	EmailType string
	Data      map[string]string
}

func (f *fakeEmailSender) Send(to, subject, emailType string, data map[string]string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sends = append(f.sends, sentEmail{To: to, Subject: subject, EmailType: emailType, Data: data})
	return "<test@rarewear>", nil
}

func (f *fakeEmailSender) sent() []sentEmail {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]sentEmail, len(f.sends))
	copy(out, f.sends)
	return out
}
