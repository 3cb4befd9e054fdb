package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/mannancrackers/shop/app/configs"
	"github.com/mannancrackers/shop/app/models"
	"github.com/mannancrackers/shop/app/utils/format"
)

// OrderNotificationResults aggregates the per-recipient outcomes of one
// order's WhatsApp fan-out.
type OrderNotificationResults struct {
	OrderID   string      `json:"order_id"`
	Timestamp time.Time   `json:"timestamp"`
	Customer  *SendResult `json:"customer"`
	Admin     *SendResult `json:"admin"`
}

type NotificationService interface {
	SendOrderNotifications(ctx context.Context, order *models.Order) *OrderNotificationResults
	SendOrderConfirmationToCustomer(ctx context.Context, order *models.Order) *SendResult
	SendOrderNotificationToAdmin(ctx context.Context, order *models.Order) *SendResult
	SendOrderStatusUpdate(ctx context.Context, order *models.Order, newStatus models.OrderStatus) *SendResult
}

type whatsAppNotificationService struct {
	client WhatsAppClient
	cfg    configs.WhatsAppConfig
}

func NewNotificationService(client WhatsAppClient, cfg configs.WhatsAppConfig) NotificationService {
	return &whatsAppNotificationService{client: client, cfg: cfg}
}

// FormatOrderItems renders an order's lines as "Name x2, Other x1".
func FormatOrderItems(order *models.Order) string {
	if len(order.OrderItems) == 0 {
		return "No items"
	}

	itemList := make([]string, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		itemList = append(itemList, fmt.Sprintf("%s x%d", item.ProductName, item.Quantity))
	}
	return strings.Join(itemList, ", ")
}

// internationalize prefixes bare numbers with the configured country code
// when they look like a local 10-digit number, otherwise just adds "+".
func (s *whatsAppNotificationService) internationalize(phone string) string {
	if strings.HasPrefix(phone, "+") {
		return phone
	}

	countryCode := s.cfg.DefaultCountryCode
	if countryCode == "" {
		countryCode = "+91"
	}

	if len(phone) == 10 {
		return countryCode + phone
	}
	return "+" + phone
}

func (s *whatsAppNotificationService) SendOrderConfirmationToCustomer(ctx context.Context, order *models.Order) *SendResult {
	items := FormatOrderItems(order)
	messageBody := fmt.Sprintf(
		"🎉 Your order #%s is confirmed!\n\n"+
			"Items: %s\n"+
			"Total: %s\n\n"+
			"We will update you on the delivery status soon.\n"+
			"Thank you for shopping with The Mannan Crackers!",
		order.Code(), items, format.PlainINR(order.TotalAmount))

	phoneNumber := s.internationalize(order.Phone)

	log.Printf("NotificationService: sending order confirmation to customer %s (%s)", order.FullName, phoneNumber)

	result := s.client.SendText(ctx, phoneNumber, messageBody)
	result.OrderID = order.ID
	result.RecipientType = "customer"
	return result
}

func (s *whatsAppNotificationService) SendOrderNotificationToAdmin(ctx context.Context, order *models.Order) *SendResult {
	adminPhone := s.cfg.AdminPhone
	if adminPhone == "" {
		log.Println("NotificationService: WHATSAPP_ADMIN_NUMBER not configured. Skipping admin notification.")
		return &SendResult{
			Success:       false,
			Error:         "Admin phone number not configured",
			OrderID:       order.ID,
			RecipientType: "admin",
		}
	}

	items := FormatOrderItems(order)
	messageBody := fmt.Sprintf(
		"📦 New Order Received!\n\n"+
			"Order ID: #%s\n"+
			"Customer: %s\n"+
			"Phone: %s\n"+
			"Email: %s\n\n"+
			"Items: %s\n"+
			"Total: %s\n\n"+
			"Delivery Address:\n%s",
		order.Code(), order.FullName, order.Phone, order.Email, items,
		format.PlainINR(order.TotalAmount), order.Address)

	adminPhone = s.internationalize(adminPhone)

	log.Printf("NotificationService: sending order notification to admin (%s)", adminPhone)

	result := s.client.SendText(ctx, adminPhone, messageBody)
	result.OrderID = order.ID
	result.RecipientType = "admin"
	return result
}

// SendOrderNotifications fans out to customer and admin. It is the entry
// point the checkout flow registers as a post-commit hook; both sends are
// attempted even when the first fails.
func (s *whatsAppNotificationService) SendOrderNotifications(ctx context.Context, order *models.Order) *OrderNotificationResults {
	results := &OrderNotificationResults{
		OrderID:   order.ID,
		Timestamp: time.Now(),
	}

	if order.ID == "" {
		log.Println("NotificationService: cannot send notifications for unsaved order")
		return results
	}

	log.Printf("NotificationService: initiating WhatsApp notifications for order #%s", order.Code())

	results.Customer = s.SendOrderConfirmationToCustomer(ctx, order)
	results.Admin = s.SendOrderNotificationToAdmin(ctx, order)

	switch {
	case results.Customer.Success && results.Admin.Success:
		log.Printf("NotificationService: ✅ both notifications sent successfully for order #%s", order.Code())
	case results.Customer.Success || results.Admin.Success:
		log.Printf("NotificationService: ⚠️ partial notification success for order #%s (Customer: %t, Admin: %t)",
			order.Code(), results.Customer.Success, results.Admin.Success)
	default:
		log.Printf("NotificationService: ❌ failed to send notifications for order #%s", order.Code())
	}

	return results
}

var statusUpdateLines = map[models.OrderStatus]string{
	models.OrderStatusProcessing: "⚙️ Your order is being processed and will be shipped soon.",
	models.OrderStatusShipped:    "📦 Your order has been shipped! Track your package.",
	models.OrderStatusDelivered:  "✅ Your order has been delivered successfully. Thank you!",
	models.OrderStatusCancelled:  "❌ Your order has been cancelled. Please contact support.",
}

func (s *whatsAppNotificationService) SendOrderStatusUpdate(ctx context.Context, order *models.Order, newStatus models.OrderStatus) *SendResult {
	statusMessage, ok := statusUpdateLines[newStatus]
	if !ok {
		statusMessage = fmt.Sprintf("Your order status has been updated to: %s", newStatus)
	}

	messageBody := fmt.Sprintf(
		"📬 Order Status Update\n\n"+
			"Order ID: #%s\n"+
			"Status: %s\n\n"+
			"%s",
		order.Code(), strings.ToUpper(string(newStatus)), statusMessage)

	phoneNumber := s.internationalize(order.Phone)

	log.Printf("NotificationService: sending status update '%s' to customer %s (%s)", newStatus, order.FullName, phoneNumber)

	result := s.client.SendText(ctx, phoneNumber, messageBody)
	result.OrderID = order.ID
	result.RecipientType = "customer"
	result.UpdateType = "status"
	return result
}
