package models

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID           string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name         string    `gorm:"size:100;not null;uniqueIndex"`
	Slug         string    `gorm:"size:100;not null;uniqueIndex"`
	Description  string    `gorm:"type:text"`
	DisplayOrder int       `gorm:"default:0;index"`
	Products     []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
