package models

import (
	"time"
)

// Order status values. Only StatusPending is written by order creation;
// the remaining states exist for data-model completeness.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

type Order struct {
	ID        string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Total     float64     `gorm:"type:decimal(10,2);not null" json:"total"`
	Status    string      `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem captures the unit price at order time; it is never re-read
// from the catalog after the order is placed.
type OrderItem struct {
	ID        string   `gorm:"primaryKey;type:varchar(36)" json:"id"`
	OrderID   string   `gorm:"type:varchar(36);not null;index" json:"order_id"`
	ProductID string   `gorm:"type:varchar(36);not null;index" json:"product_id"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	Price     float64  `gorm:"type:decimal(10,2);not null" json:"price"`
	Subtotal  float64  `gorm:"-" json:"subtotal"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
