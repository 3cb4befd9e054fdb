package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LowStockThreshold is the stock level below which a product triggers
// restock alerts on the dashboard and via email.
const LowStockThreshold = 10

type Product struct {
	ID            string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	CategoryID    string          `gorm:"size:36;not null;index"`
	Category      Category        `gorm:"foreignKey:CategoryID"`
	Name          string          `gorm:"size:200;not null"`
	Slug          string          `gorm:"size:255;not null;uniqueIndex"`
	Description   string          `gorm:"type:text"`
	Price         decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	StockQuantity int             `gorm:"not null;default:0"`
	ImagePath     string          `gorm:"size:255"`
	IsActive      bool            `gorm:"default:true;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (p Product) IsLowStock() bool {
	return p.StockQuantity < LowStockThreshold
}
