package controllers

import (
	"errors"
	"net/http"

	"apparel-shop/models"
	"apparel-shop/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// @Summary Get cart
// @Description Get the shopper's cart with its recomputed total
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := c.GetString("user_id")

	cart, err := ctrl.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": cart})
}

// @Summary Add cart item
// @Description Add an item; an existing (product, color, size) variant merges quantities
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Item"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	item := models.CartItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		Image:     req.Image,
		UnitPrice: req.UnitPrice,
		Color:     req.Color,
		Size:      req.Size,
		Quantity:  req.Quantity,
	}

	cart, err := ctrl.cartService.AddItem(c.Request.Context(), userID, item)
	if err != nil {
		if errors.Is(err, services.ErrInvalidQuantity) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Quantity must be at least 1"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item added to cart", "data": cart})
}

// @Summary Update item quantity
// @Description Overwrite the quantity of one variant row; 0 or negative is rejected
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param request body models.UpdateQuantityRequest true "New quantity and variant"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{productId} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("productId")

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	key := models.VariantKey{ProductID: productID, Color: req.Color, Size: req.Size}
	cart, err := ctrl.cartService.UpdateQuantity(c.Request.Context(), userID, key, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Quantity must be at least 1"})
		case errors.Is(err, services.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Item not in cart"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update cart"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Quantity updated", "data": cart})
}

// @Summary Remove cart item
// @Description Remove one variant row, identified by product plus color/size query params
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param productId path string true "Product ID"
// @Param color query string false "Color"
// @Param size query string false "Size"
// @Success 200 {object} models.Response
// @Router /cart/items/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	userID := c.GetString("user_id")

	key := models.VariantKey{
		ProductID: c.Param("productId"),
		Color:     c.Query("color"),
		Size:      c.Query("size"),
	}

	cart, err := ctrl.cartService.RemoveItem(c.Request.Context(), userID, key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removed", "data": cart})
}

// @Summary Clear cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := ctrl.cartService.ClearCart(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart cleared"})
}
