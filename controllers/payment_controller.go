package controllers

import (
	"net/http"

	"apparel-shop/models"
	"apparel-shop/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	gateway services.PaymentGateway
}

func NewPaymentController(gateway services.PaymentGateway) *PaymentController {
	return &PaymentController{gateway: gateway}
}

// @Summary Create payment order
// @Description Create a provider-side payment order for the given amount. The response carries the public client key so the frontend can open the provider checkout
// @Tags Payment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreatePaymentOrderRequest true "Payment order data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /payment/create-order [post]
func (ctrl *PaymentController) CreatePaymentOrder(c *gin.Context) {
	if ctrl.gateway == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Payment gateway not configured"})
		return
	}

	var req models.CreatePaymentOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Amount must be greater than zero"})
		return
	}

	notes := map[string]interface{}{}
	if req.CustomerDetails.Name != "" {
		notes["customerName"] = req.CustomerDetails.Name
	}
	if req.CustomerDetails.Email != "" {
		notes["customerEmail"] = req.CustomerDetails.Email
	}
	if req.CustomerDetails.Phone != "" {
		notes["customerPhone"] = req.CustomerDetails.Phone
	}

	order, err := ctrl.gateway.CreateOrder(c.Request.Context(), req.Amount, req.Receipt, notes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Payment order created",
		"data": gin.H{
			"orderId":  order.ID,
			"amount":   order.Amount,
			"currency": order.Currency,
			"receipt":  order.Receipt,
			"keyId":    ctrl.gateway.KeyID(),
		},
	})
}
