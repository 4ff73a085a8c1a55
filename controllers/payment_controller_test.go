package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"apparel-shop/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGateway struct {
	createErr error
	lastNotes map[string]interface{}
}

func (g *stubGateway) CreateOrder(_ context.Context, amount int, receipt string, notes map[string]interface{}) (*services.ProviderOrder, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.lastNotes = notes
	return &services.ProviderOrder{ID: "order_rzp_1", Amount: amount, Currency: "INR", Receipt: receipt}, nil
}

func (g *stubGateway) VerifySignature(_, _, _ string) bool { return true }

func (g *stubGateway) KeyID() string { return "rzp_test_key" }

func paymentRouter(gateway services.PaymentGateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewPaymentController(gateway)
	router.POST("/payment/create-order", ctrl.CreatePaymentOrder)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreatePaymentOrder_Success(t *testing.T) {
	router := paymentRouter(&stubGateway{})

	w := postJSON(t, router, "/payment/create-order", gin.H{
		"amount":  2064,
		"receipt": "rcpt-1",
		"customerDetails": gin.H{
			"name":  "Asha Verma",
			"email": "asha@example.com",
			"phone": "9876543210",
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			OrderID  string `json:"orderId"`
			Amount   int    `json:"amount"`
			Currency string `json:"currency"`
			KeyID    string `json:"keyId"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "order_rzp_1", resp.Data.OrderID)
	assert.Equal(t, 2064, resp.Data.Amount)
	assert.Equal(t, "INR", resp.Data.Currency)
	assert.Equal(t, "rzp_test_key", resp.Data.KeyID)
}

func TestCreatePaymentOrder_RejectsNonPositiveAmount(t *testing.T) {
	router := paymentRouter(&stubGateway{})

	for _, amount := range []int{0, -100} {
		w := postJSON(t, router, "/payment/create-order", gin.H{"amount": amount, "receipt": "rcpt-1"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestCreatePaymentOrder_GatewayError(t *testing.T) {
	router := paymentRouter(&stubGateway{createErr: errors.New("gateway down")})

	w := postJSON(t, router, "/payment/create-order", gin.H{"amount": 500, "receipt": "rcpt-1"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCreatePaymentOrder_GatewayNotConfigured(t *testing.T) {
	router := paymentRouter(nil)

	w := postJSON(t, router, "/payment/create-order", gin.H{"amount": 500, "receipt": "rcpt-1"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
