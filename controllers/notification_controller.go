package controllers

import (
	"errors"
	"net/http"

	"apparel-shop/models"
	"apparel-shop/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	emails services.EmailSender
}

func NewNotificationController(emails services.EmailSender) *NotificationController {
	return &NotificationController{emails: emails}
}

// @Summary Send notification email
// @Description Send a transactional email. Type must be one of welcome, orderShipped, orderDelivered, orderCancelled
// @Tags Notifications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.SendEmailRequest true "Email data"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /notifications/send [post]
func (ctrl *NotificationController) SendEmail(c *gin.Context) {
	if ctrl.emails == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Email delivery not configured"})
		return
	}

	var req models.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if req.To == "" || req.Subject == "" || req.Type == "" || req.Data == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "to, subject, type and data are required"})
		return
	}
	if !services.ValidEmailType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid email type"})
		return
	}

	messageID, err := ctrl.emails.Send(req.To, req.Subject, req.Type, req.Data)
	if err != nil {
		if errors.Is(err, services.ErrInvalidEmailType) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid email type"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email sent", "data": gin.H{"messageId": messageID}})
}
