package controllers

import (
	"errors"
	"net/http"

	"apparel-shop/models"
	"apparel-shop/repositories"
	"apparel-shop/services"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	checkoutService *services.CheckoutService
}

func NewCheckoutController(checkoutService *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutService: checkoutService}
}

// @Summary Place order
// @Description Submit a checkout attempt. COD writes the order immediately; online payment returns a payment intent to complete at the provider UI
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Checkout data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	userID := c.GetString("user_id")
	userEmail := c.GetString("user_email")

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	result, err := ctrl.checkoutService.PlaceOrder(c.Request.Context(), userID, userEmail, req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	if result.PaymentIntent != nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Complete the payment to place your order",
			"data":    result,
		})
		return
	}

	status := http.StatusCreated
	message := "Order placed successfully"
	if result.AlreadyExisted {
		status = http.StatusOK
		message = "Order already placed"
	}
	c.JSON(status, gin.H{"success": true, "message": message, "data": result})
}

// @Summary Confirm online payment
// @Description Relay the provider's success callback; the signature is verified server-side before the order is written
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.PaymentCallbackRequest true "Provider callback"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout/confirm [post]
func (ctrl *CheckoutController) ConfirmPayment(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.PaymentCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	order, err := ctrl.checkoutService.ConfirmPayment(c.Request.Context(), userID, req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Order placed successfully", "data": gin.H{"order": order}})
}

// respondError maps orchestrator errors onto the response taxonomy: shopper
// mistakes are 4xx and retryable inline, provider trouble is 502, and the
// captured-but-unrecorded case gets its own code for operational follow-up.
func (ctrl *CheckoutController) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrIncompleteAddress):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please fill in your name, phone and address"})
	case errors.Is(err, services.ErrInvalidPaymentMethod):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unknown payment method"})
	case errors.Is(err, services.ErrPaymentMethodIneligible):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Online payment requires a minimum order amount of 500"})
	case errors.Is(err, repositories.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Your cart is empty"})
	case errors.Is(err, services.ErrSignatureMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment verification failed"})
	case errors.Is(err, services.ErrSessionExpired):
		c.JSON(http.StatusGone, gin.H{"success": false, "message": "Checkout session expired, please try again"})
	case errors.Is(err, services.ErrSessionOwnership):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Checkout session does not belong to you"})
	case errors.Is(err, services.ErrPaymentProvider):
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Payment could not be initiated. Please try again."})
	case errors.Is(err, services.ErrOrderNotRecorded):
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"code":    "ORDER_NOT_RECORDED",
			"message": "Your payment was received but the order could not be recorded. Do not retry; our support team has been notified.",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Checkout failed. Please try again."})
	}
}
