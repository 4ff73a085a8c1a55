package models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Price       int      `json:"price" binding:"required,gt=0"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	InStock     *bool    `json:"inStock"`
}

type UpdateProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       int      `json:"price"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	InStock     *bool    `json:"inStock"`
}

type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Image     string `json:"image"`
	UnitPrice int    `json:"unitPrice" binding:"required,gt=0"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityRequest struct {
	Color    string `json:"color"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity" binding:"required"`
}

type ToggleWishlistRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	UnitPrice int    `json:"unitPrice" binding:"required,gt=0"`
	Image     string `json:"image"`
}

// CheckoutRequest is one checkout attempt. IdempotencyKey is generated by the
// client once per attempt; resubmitting with the same key is a no-op that
// returns the already-created order.
type CheckoutRequest struct {
	ShippingAddress ShippingAddress `json:"shippingAddress" binding:"required"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod" binding:"required"`
	IdempotencyKey  string          `json:"idempotencyKey" binding:"required"`
}

// PaymentCallbackRequest relays the provider's client-side success callback.
// It is untrusted until the signature verifies against the provider secret.
type PaymentCallbackRequest struct {
	ProviderOrderID   string `json:"razorpayOrderId" binding:"required"`
	ProviderPaymentID string `json:"razorpayPaymentId" binding:"required"`
	Signature         string `json:"razorpaySignature" binding:"required"`
}

type CustomerDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CreatePaymentOrderRequest struct {
	Amount          int             `json:"amount"`
	Receipt         string          `json:"receipt"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SendEmailRequest struct {
	To      string            `json:"to"`
	Subject string            `json:"subject"`
	Type    string            `json:"type"`
	Data    map[string]string `json:"data"`
}
