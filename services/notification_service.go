package services

import (
	"errors"
	"fmt"
	"strings"

	"apparel-shop/config"
	"apparel-shop/models"

	"gopkg.in/gomail.v2"
)

// EmailType enumerates the transactional templates the notification endpoint
// accepts. Anything else is rejected with a validation error.
const (
	EmailTypeWelcome        = "welcome"
	EmailTypeOrderShipped   = "orderShipped"
	EmailTypeOrderDelivered = "orderDelivered"
	EmailTypeOrderCancelled = "orderCancelled"
)

var validEmailTypes = map[string]bool{
	EmailTypeWelcome:        true,
	EmailTypeOrderShipped:   true,
	EmailTypeOrderDelivered: true,
	EmailTypeOrderCancelled: true,
}

func ValidEmailType(t string) bool {
	return validEmailTypes[t]
}

var ErrInvalidEmailType = errors.New("invalid email type")

type NotificationService struct {
	dialer *gomail.Dialer
	from   string
}

func NewNotificationService() (*NotificationService, error) {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, errors.New("SMTP configuration missing")
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	return &NotificationService{dialer: dialer, from: cfg.SMTPFrom}, nil
}

// Send renders the template for the given type with the supplied data payload
// and dispatches it. Returns a message id usable for delivery tracing.
func (s *NotificationService) Send(to, subject, emailType string, data map[string]string) (string, error) {
	if !ValidEmailType(emailType) {
		return "", ErrInvalidEmailType
	}

	var body string
	switch emailType {
	case EmailTypeWelcome:
		body = welcomeBody(data)
	case EmailTypeOrderShipped:
		body = orderStatusBody("Your order is on its way!",
			"Good news — your order has been shipped and will reach you soon.", data)
	case EmailTypeOrderDelivered:
		body = orderStatusBody("Your order has been delivered",
			"Your order has been delivered. We hope you love it!", data)
	case EmailTypeOrderCancelled:
		body = orderStatusBody("Your order has been cancelled",
			"Your order has been cancelled. If you were charged, the amount will be refunded within 5-7 business days.", data)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	messageID := fmt.Sprintf("<%s@rarewear>", strings.ReplaceAll(to, "@", "_"))
	return messageID, nil
}

// SendOrderConfirmation is dispatched after checkout success, for both the
// COD and the online path.
func (s *NotificationService) SendOrderConfirmation(order *models.Order) error {
	if order.UserEmail == "" {
		return nil
	}

	var rows strings.Builder
	for _, item := range order.Items {
		rows.WriteString(fmt.Sprintf(`
			<tr>
				<td style="padding: 12px; border-bottom: 1px solid #e0e0e0;">%s</td>
				<td style="padding: 12px; border-bottom: 1px solid #e0e0e0;">&#8377;%s</td>
				<td style="padding: 12px; border-bottom: 1px solid #e0e0e0;">%d</td>
				<td style="padding: 12px; border-bottom: 1px solid #e0e0e0;">&#8377;%s</td>
			</tr>`,
			item.Name, formatINR(item.UnitPrice), item.Quantity, formatINR(item.UnitPrice*item.Quantity)))
	}

	paymentLine := "Online Payment"
	if order.PaymentMethod == models.PaymentMethodCOD {
		paymentLine = fmt.Sprintf("Cash on Delivery (&#8377;%s paid now, &#8377;%s due at delivery)",
			formatINR(order.CODAdvance), formatINR(order.Total-order.CODAdvance))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #000; color: #fff; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
		.content { background-color: #f9f9f9; padding: 20px; border: 1px solid #e0e0e0; }
		table { width: 100%%; border-collapse: collapse; margin: 10px 0; }
		th { background-color: #f0f0f0; padding: 12px; text-align: left; border-bottom: 2px solid #000; }
		.total-row { background-color: #f0f0f0; font-weight: bold; }
		.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>Order Confirmation</h1>
			<p>Thank you for your purchase!</p>
		</div>
		<div class="content">
			<p>Dear %s,</p>
			<p>Your order <strong>%s</strong> has been placed successfully.</p>
			<table>
				<thead>
					<tr><th>Product</th><th>Price</th><th>Qty</th><th>Total</th></tr>
				</thead>
				<tbody>
					%s
					<tr><td colspan="3" style="padding: 12px; text-align: right;">Subtotal:</td><td style="padding: 12px;">&#8377;%s</td></tr>
					<tr><td colspan="3" style="padding: 12px; text-align: right;">Tax (18%%):</td><td style="padding: 12px;">&#8377;%s</td></tr>
					<tr class="total-row"><td colspan="3" style="padding: 12px; text-align: right;">Total:</td><td style="padding: 12px;">&#8377;%s</td></tr>
				</tbody>
			</table>
			<p><strong>Payment:</strong> %s</p>
			<p><strong>Shipping to:</strong> %s, %s</p>
			<p>You will receive a tracking link once your order ships.</p>
		</div>
		<div class="footer">
			<p>&copy; 2025 RAREWEAR. All rights reserved.</p>
		</div>
	</div>
</body>
</html>`,
		order.ShippingAddress.Name, order.OrderNumber, rows.String(),
		formatINR(order.Subtotal), formatINR(order.Tax), formatINR(order.Total),
		paymentLine, order.ShippingAddress.Line1, order.ShippingAddress.City)

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", order.UserEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation - %s", order.OrderNumber))
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func welcomeBody(data map[string]string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<div style="background-color: #000; color: #fff; padding: 20px; text-align: center;">
			<h1>Welcome to RAREWEAR</h1>
		</div>
		<div style="background-color: #f9f9f9; padding: 20px; border: 1px solid #e0e0e0;">
			<p>Hi %s,</p>
			<p>Your account is ready. Browse the latest drops and enjoy free shipping on every order.</p>
		</div>
		<p style="text-align: center; color: #666; font-size: 12px;">&copy; 2025 RAREWEAR. All rights reserved.</p>
	</div>
</body>
</html>`, data["name"])
}

func orderStatusBody(heading, message string, data map[string]string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<div style="background-color: #000; color: #fff; padding: 20px; text-align: center;">
			<h1>%s</h1>
		</div>
		<div style="background-color: #f9f9f9; padding: 20px; border: 1px solid #e0e0e0;">
			<p>Hi %s,</p>
			<p>%s</p>
			<p><strong>Order:</strong> %s</p>
		</div>
		<p style="text-align: center; color: #666; font-size: 12px;">&copy; 2025 RAREWEAR. All rights reserved.</p>
	</div>
</body>
</html>`, heading, data["name"], message, data["orderNumber"])
}

// formatINR groups digits the Indian way: the last three, then pairs.
func formatINR(amount int) string {
	str := fmt.Sprintf("%d", amount)
	if len(str) <= 3 {
		return str
	}

	head := str[:len(str)-3]
	tail := str[len(str)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)

	return strings.Join(parts, ",") + "," + tail
}
