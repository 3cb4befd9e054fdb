package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	ID        string  `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderID   string  `gorm:"size:36;not null;uniqueIndex:idx_order_product" json:"order_id"`
	Order     Order   `gorm:"foreignKey:OrderID;references:ID" json:"-"`
	ProductID string  `gorm:"size:36;not null;uniqueIndex:idx_order_product" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID;references:ID" json:"-"`

	ProductName string          `gorm:"size:200;not null" json:"product_name"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}

// Total is the line total at the captured unit price.
func (oi OrderItem) Total() decimal.Decimal {
	return oi.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}
