package services

import "errors"

var (
	ErrInvalidQuantity         = errors.New("quantity must be at least 1")
	ErrItemNotFound            = errors.New("item not in cart")
	ErrIncompleteAddress       = errors.New("name, phone and address are required")
	ErrPaymentMethodIneligible = errors.New("online payment requires a minimum order amount")
	ErrInvalidPaymentMethod    = errors.New("unknown payment method")
	ErrSignatureMismatch       = errors.New("payment signature verification failed")
	ErrSessionExpired          = errors.New("checkout session expired or not found")
	ErrPaymentProvider         = errors.New("payment provider error")
	ErrSessionOwnership        = errors.New("checkout session belongs to a different user")
	ErrInvalidOrderStatus      = errors.New("invalid order status")

	// ErrOrderNotRecorded marks the dangerous partial state on the online
	// path: the payment was captured but the order document could not be
	// written. Callers must surface it distinctly so it reaches manual
	// reconciliation instead of being retried like an ordinary failure.
	ErrOrderNotRecorded = errors.New("payment captured but order could not be recorded")
)
