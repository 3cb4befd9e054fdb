package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus is the closed set of states an order moves through. Orders
// are created as pending and only admins change the status afterwards.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every valid status in display order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// ParseOrderStatus maps a raw string onto the status enum.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

func (s OrderStatus) String() string {
	return string(s)
}

// Label returns the human readable form shown on invoices and dashboards.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusPending:
		return "Pending"
	case OrderStatusProcessing:
		return "Processing"
	case OrderStatusShipped:
		return "Shipped"
	case OrderStatusDelivered:
		return "Delivered"
	case OrderStatusCancelled:
		return "Cancelled"
	}
	return string(s)
}

type Order struct {
	ID     string  `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID *string `gorm:"size:36;index"`
	User   *User   `gorm:"foreignKey:UserID"`

	FullName string `gorm:"size:100;not null"`
	Email    string `gorm:"size:100;not null"`
	Phone    string `gorm:"size:15;not null"`
	Address  string `gorm:"type:text;not null"`

	TotalAmount decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Status      OrderStatus     `gorm:"size:20;default:'pending';index"`

	OrderItems []OrderItem `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}

// Code is the short identifier shown to customers, on invoices and in
// WhatsApp messages. The full UUID stays internal. Value receiver so
// templates can call it while ranging over order slices.
func (o Order) Code() string {
	if len(o.ID) >= 8 {
		return o.ID[:8]
	}
	return o.ID
}
