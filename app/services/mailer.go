package services

import (
	"fmt"
	"html"
	"log"
	"net/smtp"
	"strings"

	"github.com/mannancrackers/shop/app/models"
	"github.com/mannancrackers/shop/app/utils/format"
)

type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type Mailer struct {
	config Config
}

func NewMailer(cfg Config) *Mailer {
	return &Mailer{
		config: cfg,
	}
}

func (m *Mailer) SendHTMLEmail(to, subject, htmlBody string) error {
	if m.config.Host == "" {
		log.Printf("Mailer: EMAIL_HOST not configured, skipping email %q to %s", subject, to)
		return nil
	}

	headers := map[string]string{
		"From":         m.config.From,
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=\"UTF-8\"",
	}

	var msg string
	for k, v := range headers {
		msg += fmt.Sprintf("%s: %s\r\n", k, v)
	}
	msg += "\r\n" + htmlBody

	auth := smtp.PlainAuth(m.config.From, m.config.Username, m.config.Password, m.config.Host)

	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)

	err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg))
	if err != nil {
		log.Printf("Mailer: failed to send HTML email to %s: %v", to, err)
		return fmt.Errorf("failed to send HTML email: %w", err)
	}

	return nil
}

// SendOrderConfirmation emails the customer their order summary.
func (m *Mailer) SendOrderConfirmation(order *models.Order) error {
	subject := "Order Confirmation - The Mannan Crackers"
	body := BuildOrderConfirmationEmailBody(order)

	if err := m.SendHTMLEmail(order.Email, subject, body); err != nil {
		return err
	}
	log.Printf("Mailer: ✅ order confirmation email sent to %s", order.Email)
	return nil
}

// SendLowStockAlert emails the shop inbox about a product running low.
func (m *Mailer) SendLowStockAlert(product *models.Product) error {
	subject := fmt.Sprintf("Low Stock Alert - %s", product.Name)
	body := BuildLowStockAlertEmailBody(product)

	return m.SendHTMLEmail(m.config.Username, subject, body)
}

func BuildOrderConfirmationEmailBody(order *models.Order) string {
	var itemRows strings.Builder
	for _, item := range order.OrderItems {
		itemRows.WriteString(fmt.Sprintf(`
                <tr>
                    <td>%s</td>
                    <td>%d</td>
                    <td>%s</td>
                    <td>%s</td>
                </tr>`,
			html.EscapeString(item.ProductName), item.Quantity,
			format.PlainINR(item.Price), format.PlainINR(item.Total())))
	}

	return fmt.Sprintf(`
        <!DOCTYPE html>
        <html>
        <head>
            <meta charset="utf-8">
            <title>Order Confirmation</title>
            <style>
                body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
                .container { max-width: 600px; margin: 20px auto; padding: 20px; border: 1px solid #ddd; border-radius: 5px; }
                .header { background-color: #f8f8f8; padding: 10px 0; text-align: center; border-bottom: 1px solid #ddd; }
                table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
                th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
                th { background-color: #f8f8f8; }
                .total { font-weight: bold; }
                .footer { font-size: 0.8em; color: #777; text-align: center; margin-top: 20px; border-top: 1px solid #ddd; padding-top: 10px; }
            </style>
        </head>
        <body>
            <div class="container">
                <div class="header">
                    <h2>Thank you for your order, %s!</h2>
                </div>
                <p>Your order <strong>#%s</strong> has been received and is being prepared.</p>
                <table>
                    <tr><th>Product</th><th>Quantity</th><th>Price</th><th>Total</th></tr>
                    %s
                    <tr class="total"><td colspan="3">Total Amount</td><td>%s</td></tr>
                </table>
                <p><strong>Delivery Address:</strong><br>%s</p>
                <p><strong>Phone:</strong> %s</p>
                <div class="footer">
                    <p>The Mannan Crackers &middot; Quality fireworks for every celebration</p>
                </div>
            </div>
        </body>
        </html>
    `,
		html.EscapeString(order.FullName), order.Code(), itemRows.String(),
		format.PlainINR(order.TotalAmount), html.EscapeString(order.Address),
		html.EscapeString(order.Phone))
}

func BuildLowStockAlertEmailBody(product *models.Product) string {
	return fmt.Sprintf(`
        <!DOCTYPE html>
        <html>
        <head>
            <meta charset="utf-8">
            <title>Low Stock Alert</title>
            <style>
                body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
                .container { max-width: 600px; margin: 20px auto; padding: 20px; border: 1px solid #ddd; border-radius: 5px; }
                .alert { color: #b00020; font-weight: bold; }
            </style>
        </head>
        <body>
            <div class="container">
                <h2 class="alert">Low Stock Alert</h2>
                <p>The following product is running low and may need restocking:</p>
                <p><strong>%s</strong></p>
                <p>Remaining stock: <strong>%d</strong> units</p>
            </div>
        </body>
        </html>
    `, html.EscapeString(product.Name), product.StockQuantity)
}
