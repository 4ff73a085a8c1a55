package controllers

import (
	"net/http"

	"apparel-shop/models"
	"apparel-shop/services"

	"github.com/gin-gonic/gin"
)

type WishlistController struct {
	wishlistService *services.WishlistService
}

func NewWishlistController(wishlistService *services.WishlistService) *WishlistController {
	return &WishlistController{wishlistService: wishlistService}
}

// @Summary Get wishlist
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /wishlist [get]
func (ctrl *WishlistController) GetWishlist(c *gin.Context) {
	userID := c.GetString("user_id")

	wishlist, err := ctrl.wishlistService.GetWishlist(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": wishlist})
}

// @Summary Toggle wishlist item
// @Description Add the product when absent, remove it when present
// @Tags Wishlist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ToggleWishlistRequest true "Item"
// @Success 200 {object} models.Response
// @Router /wishlist/toggle [post]
func (ctrl *WishlistController) Toggle(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.ToggleWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	item := models.WishlistItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Image:     req.Image,
	}

	wishlist, added, err := ctrl.wishlistService.Toggle(c.Request.Context(), userID, item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update wishlist"})
		return
	}

	message := "Removed from wishlist"
	if added {
		message = "Added to wishlist"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "data": wishlist})
}

// @Summary Remove wishlist item
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /wishlist/{productId} [delete]
func (ctrl *WishlistController) Remove(c *gin.Context) {
	userID := c.GetString("user_id")

	wishlist, err := ctrl.wishlistService.Remove(c.Request.Context(), userID, c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Removed from wishlist", "data": wishlist})
}
