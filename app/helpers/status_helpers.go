package helpers

import "github.com/mannancrackers/shop/app/models"

func Add(a, b int) int { return a + b }
func Sub(a, b int) int { return a - b }
func Mul(a, b int) int { return a * b }

// ShippingStatus describes how far along an order is for the tracking
// widget on the customer orders page.
type ShippingStatus struct {
	Message  string
	Progress int
	Icon     string
}

// StatusColor maps an order status onto the bootstrap badge contextual
// class used across templates.
func StatusColor(status models.OrderStatus) string {
	switch status {
	case models.OrderStatusPending:
		return "warning"
	case models.OrderStatusProcessing:
		return "info"
	case models.OrderStatusShipped:
		return "primary"
	case models.OrderStatusDelivered:
		return "success"
	case models.OrderStatusCancelled:
		return "danger"
	}
	return "secondary"
}

// GetShippingStatus returns the tracking line for an order. Cancelled
// orders show zero progress, delivered ones a full bar.
func GetShippingStatus(status models.OrderStatus) ShippingStatus {
	switch status {
	case models.OrderStatusPending:
		return ShippingStatus{Message: "Order received, awaiting confirmation", Progress: 20, Icon: "bi-box"}
	case models.OrderStatusProcessing:
		return ShippingStatus{Message: "Order is being processed", Progress: 40, Icon: "bi-gear"}
	case models.OrderStatusShipped:
		return ShippingStatus{Message: "Order has been shipped", Progress: 60, Icon: "bi-truck"}
	case models.OrderStatusDelivered:
		return ShippingStatus{Message: "Order delivered successfully", Progress: 100, Icon: "bi-check-circle"}
	case models.OrderStatusCancelled:
		return ShippingStatus{Message: "Order has been cancelled", Progress: 0, Icon: "bi-x-circle"}
	}
	return ShippingStatus{}
}
