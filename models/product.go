package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Price       float64        `gorm:"not null" json:"price"`
	Description string         `json:"description"`
	Image       string         `gorm:"not null" json:"image"`
	CategoryID  uint           `json:"category_id"`
	Category    Category       `json:"category"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
