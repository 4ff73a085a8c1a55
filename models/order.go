package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "cod"
	PaymentMethodOnline PaymentMethod = "online"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCOD || m == PaymentMethodOnline
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type ShippingAddress struct {
	Name       string `json:"name" bson:"name"`
	Email      string `json:"email,omitempty" bson:"email,omitempty"`
	Phone      string `json:"phone" bson:"phone"`
	Line1      string `json:"address" bson:"address"`
	City       string `json:"city,omitempty" bson:"city,omitempty"`
	State      string `json:"state,omitempty" bson:"state,omitempty"`
	PostalCode string `json:"pincode,omitempty" bson:"pincode,omitempty"`
}

// Complete reports whether the address carries everything order placement
// requires: name, phone and the first address line.
func (a ShippingAddress) Complete() bool {
	return a.Name != "" && a.Phone != "" && a.Line1 != ""
}

// PaymentDetails is the provider-side payload attached to an online order
// after its success callback passed signature verification.
type PaymentDetails struct {
	ProviderOrderID   string `json:"providerOrderId" bson:"providerOrderId"`
	ProviderPaymentID string `json:"providerPaymentId" bson:"providerPaymentId"`
	Signature         string `json:"signature" bson:"signature"`
}

type Order struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OrderNumber     string             `json:"orderNumber" bson:"orderNumber"`
	UserID          string             `json:"userId" bson:"userId"`
	UserEmail       string             `json:"userEmail" bson:"userEmail"`
	Items           []CartItem         `json:"items" bson:"items"`
	ShippingAddress ShippingAddress    `json:"shippingAddress" bson:"shippingAddress"`
	PaymentMethod   PaymentMethod      `json:"paymentMethod" bson:"paymentMethod"`
	PaymentStatus   PaymentStatus      `json:"paymentStatus" bson:"paymentStatus"`
	PaymentDetails  *PaymentDetails    `json:"paymentDetails,omitempty" bson:"paymentDetails,omitempty"`
	Status          OrderStatus        `json:"status" bson:"status"`
	Subtotal        int                `json:"subtotal" bson:"subtotal"`
	Tax             int                `json:"tax" bson:"tax"`
	Total           int                `json:"total" bson:"total"`
	CODAdvance      int                `json:"codAdvance,omitempty" bson:"codAdvance,omitempty"`
	IdempotencyKey  string             `json:"idempotencyKey,omitempty" bson:"idempotencyKey,omitempty"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}
