package models

import (
	"time"
)

type Product struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       string    `gorm:"type:varchar(255)" json:"image"`
	Category    string    `gorm:"type:varchar(100);not null;index" json:"category"`
	Stock       int       `gorm:"not null;default:0" json:"stock"`
	Rating      float64   `gorm:"default:0" json:"rating"`
	Reviews     int       `gorm:"default:0" json:"reviews"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}

// CanFulfill reports whether the product has enough stock for quantity.
func (p *Product) CanFulfill(quantity int) bool {
	return p.Stock >= quantity
}
