package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"apparel-shop/models"
	"apparel-shop/repositories"
)

// PaymentGateway creates provider-side payment orders and verifies the
// signature the provider attaches to client-relayed success callbacks.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int, receipt string, notes map[string]interface{}) (*ProviderOrder, error)
	VerifySignature(providerOrderID, providerPaymentID, signature string) bool
	KeyID() string
}

// ProviderOrder is the token issued by the payment gateway for one checkout
// attempt. Amount is in whole rupees, matching the rest of the system.
type ProviderOrder struct {
	ID       string
	Amount   int
	Currency string
	Receipt  string
}

// OrderNotifier dispatches the order-confirmation email. Failures are logged,
// never surfaced: a missed email must not fail a placed order.
type OrderNotifier interface {
	SendOrderConfirmation(order *models.Order) error
}

// PaymentIntent is returned when the online path must continue at the
// provider-hosted UI before an order can be written.
type PaymentIntent struct {
	ProviderOrderID string `json:"providerOrderId"`
	Amount          int    `json:"amount"`
	Currency        string `json:"currency"`
	KeyID           string `json:"keyId"`
}

// CheckoutResult carries either a written order (COD path, or a deduplicated
// resubmission) or a payment intent (online path, first leg).
type CheckoutResult struct {
	Order          *models.Order  `json:"order,omitempty"`
	PaymentIntent  *PaymentIntent `json:"paymentIntent,omitempty"`
	AlreadyExisted bool           `json:"alreadyExisted,omitempty"`
}

// CheckoutService sequences one checkout attempt: validate, price, branch on
// payment method, call the gateway or skip it, write the order and clear the
// cart. No retries happen here; every retry is a fresh shopper submission.
type CheckoutService struct {
	cart     *CartService
	orders   repositories.OrderRepository
	sessions repositories.CheckoutSessionRepository
	gateway  PaymentGateway
	notifier OrderNotifier
}

func NewCheckoutService(
	cart *CartService,
	orders repositories.OrderRepository,
	sessions repositories.CheckoutSessionRepository,
	gateway PaymentGateway,
	notifier OrderNotifier,
) *CheckoutService {
	return &CheckoutService{
		cart:     cart,
		orders:   orders,
		sessions: sessions,
		gateway:  gateway,
		notifier: notifier,
	}
}

// PlaceOrder handles a checkout submission. For COD it writes the order with
// paymentStatus=pending and clears the cart. For online payment it creates a
// provider order for the taxed total and parks the attempt in a session until
// the provider calls back; the cart is left untouched until then.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID, userEmail string, req models.CheckoutRequest) (*CheckoutResult, error) {
	if !req.PaymentMethod.Valid() {
		return nil, ErrInvalidPaymentMethod
	}
	if !req.ShippingAddress.Complete() {
		return nil, ErrIncompleteAddress
	}

	// Duplicate submission with the same idempotency key is a defined no-op.
	existing, err := s.orders.FindByIdempotencyKey(ctx, req.IdempotencyKey)
	if err != nil && !errors.Is(err, repositories.ErrOrderNotFound) {
		return nil, fmt.Errorf("failed to check idempotency: %w", err)
	}
	if existing != nil {
		log.Printf("Duplicate checkout detected for idempotency key %s, returning order %s", req.IdempotencyKey, existing.OrderNumber)
		return &CheckoutResult{Order: existing, AlreadyExisted: true}, nil
	}

	cart, err := s.cart.GetCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, repositories.ErrEmptyCart
	}

	subtotal := cart.Subtotal()
	tax := Tax(subtotal)
	total := subtotal + tax

	if req.PaymentMethod == models.PaymentMethodOnline {
		if !OnlineEligible(subtotal) {
			return nil, ErrPaymentMethodIneligible
		}
		return s.initiateOnlinePayment(ctx, userID, userEmail, req, cart, subtotal, tax, total)
	}

	order := &models.Order{
		UserID:          userID,
		UserEmail:       userEmail,
		Items:           cart.Items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   models.PaymentMethodCOD,
		PaymentStatus:   models.PaymentStatusPending,
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           total,
		CODAdvance:      CODAdvance(subtotal),
		IdempotencyKey:  req.IdempotencyKey,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		if errors.Is(err, repositories.ErrDuplicateCheckout) {
			// Lost the race against a concurrent resubmission.
			return s.recoverDuplicate(ctx, req.IdempotencyKey)
		}
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	s.finishCheckout(ctx, userID, order)
	return &CheckoutResult{Order: order}, nil
}

func (s *CheckoutService) initiateOnlinePayment(
	ctx context.Context,
	userID, userEmail string,
	req models.CheckoutRequest,
	cart *models.Cart,
	subtotal, tax, total int,
) (*CheckoutResult, error) {
	if s.gateway == nil {
		return nil, fmt.Errorf("%w: gateway not configured", ErrPaymentProvider)
	}

	providerOrder, err := s.gateway.CreateOrder(ctx, total, req.IdempotencyKey, map[string]interface{}{
		"userId": userID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	session := &repositories.CheckoutSession{
		UserID:          userID,
		UserEmail:       userEmail,
		IdempotencyKey:  req.IdempotencyKey,
		Items:           cart.Items,
		ShippingAddress: req.ShippingAddress,
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           total,
		CreatedAt:       time.Now(),
	}
	if err := s.sessions.Put(ctx, providerOrder.ID, session); err != nil {
		return nil, fmt.Errorf("failed to store checkout session: %w", err)
	}

	return &CheckoutResult{
		PaymentIntent: &PaymentIntent{
			ProviderOrderID: providerOrder.ID,
			Amount:          providerOrder.Amount,
			Currency:        providerOrder.Currency,
			KeyID:           s.gateway.KeyID(),
		},
	}, nil
}

// ConfirmPayment completes the online path from the provider's success
// callback. The callback is untrusted input: the signature must verify against
// the server-held secret before anything is persisted.
func (s *CheckoutService) ConfirmPayment(ctx context.Context, userID string, cb models.PaymentCallbackRequest) (*models.Order, error) {
	session, err := s.sessions.Get(ctx, cb.ProviderOrderID)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("failed to load checkout session: %w", err)
	}
	if session.UserID != userID {
		return nil, ErrSessionOwnership
	}

	if !s.gateway.VerifySignature(cb.ProviderOrderID, cb.ProviderPaymentID, cb.Signature) {
		return nil, ErrSignatureMismatch
	}

	order := &models.Order{
		UserID:          session.UserID,
		UserEmail:       session.UserEmail,
		Items:           session.Items,
		ShippingAddress: session.ShippingAddress,
		PaymentMethod:   models.PaymentMethodOnline,
		PaymentStatus:   models.PaymentStatusPaid,
		PaymentDetails: &models.PaymentDetails{
			ProviderOrderID:   cb.ProviderOrderID,
			ProviderPaymentID: cb.ProviderPaymentID,
			Signature:         cb.Signature,
		},
		Subtotal:       session.Subtotal,
		Tax:            session.Tax,
		Total:          session.Total,
		IdempotencyKey: session.IdempotencyKey,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		if errors.Is(err, repositories.ErrDuplicateCheckout) {
			existing, findErr := s.orders.FindByIdempotencyKey(ctx, session.IdempotencyKey)
			if findErr == nil {
				s.cleanupSession(ctx, cb.ProviderOrderID)
				return existing, nil
			}
		}
		// Money has moved, the order record has not. This must reach manual
		// reconciliation, not a silent retry.
		log.Printf("ALERT: payment %s captured for provider order %s but order write failed: %v",
			cb.ProviderPaymentID, cb.ProviderOrderID, err)
		return nil, fmt.Errorf("%w: %v", ErrOrderNotRecorded, err)
	}

	s.cleanupSession(ctx, cb.ProviderOrderID)
	s.finishCheckout(ctx, userID, order)
	return order, nil
}

func (s *CheckoutService) recoverDuplicate(ctx context.Context, idempotencyKey string) (*CheckoutResult, error) {
	existing, err := s.orders.FindByIdempotencyKey(ctx, idempotencyKey)
	if err != nil {
		return nil, fmt.Errorf("failed to recover duplicate checkout: %w", err)
	}
	return &CheckoutResult{Order: existing, AlreadyExisted: true}, nil
}

// finishCheckout clears the cart and dispatches the confirmation email. The
// order is already persisted; neither step may fail the checkout.
func (s *CheckoutService) finishCheckout(ctx context.Context, userID string, order *models.Order) {
	if err := s.cart.ClearCart(ctx, userID); err != nil {
		log.Printf("Failed to clear cart for user %s after order %s: %v", userID, order.OrderNumber, err)
	}
	if s.notifier != nil {
		go func() {
			if err := s.notifier.SendOrderConfirmation(order); err != nil {
				log.Printf("Failed to send confirmation email for order %s: %v", order.OrderNumber, err)
			}
		}()
	}
}

func (s *CheckoutService) cleanupSession(ctx context.Context, providerOrderID string) {
	if err := s.sessions.Delete(ctx, providerOrderID); err != nil {
		log.Printf("Failed to delete checkout session %s: %v", providerOrderID, err)
	}
}
