package libs

import (
	"context"
	"errors"
	"fmt"

	"apparel-shop/config"
	"apparel-shop/services"

	razorpay "github.com/razorpay/razorpay-go"
	razorpayutils "github.com/razorpay/razorpay-go/utils"
)

// RazorpayGateway adapts the Razorpay SDK to the checkout orchestrator's
// gateway contract. Amounts cross this boundary in whole rupees and are
// converted to paise for the provider.
type RazorpayGateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
}

func NewRazorpayGateway() (*RazorpayGateway, error) {
	cfg := config.AppConfig
	if cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
		return nil, errors.New("razorpay credentials not configured")
	}

	return &RazorpayGateway{
		client:    razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret),
		keyID:     cfg.RazorpayKeyID,
		keySecret: cfg.RazorpayKeySecret,
	}, nil
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount int, receipt string, notes map[string]interface{}) (*services.ProviderOrder, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("invalid amount: %d", amount)
	}

	data := map[string]interface{}{
		"amount":   amount * 100, // rupees to paise
		"currency": "INR",
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order creation failed: %w", err)
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return nil, errors.New("razorpay order response missing id")
	}

	return &services.ProviderOrder{
		ID:       id,
		Amount:   amount,
		Currency: "INR",
		Receipt:  receipt,
	}, nil
}

// VerifySignature checks the HMAC the provider attaches to its client-side
// success callback against the server-held key secret.
func (g *RazorpayGateway) VerifySignature(providerOrderID, providerPaymentID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   providerOrderID,
		"razorpay_payment_id": providerPaymentID,
	}
	return razorpayutils.VerifyPaymentSignature(params, signature, g.keySecret)
}

func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}
