package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusCompleted OrderStatus = "completed" // Paid and fulfilled
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before fulfilment

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Order is append-only: created once at checkout, never mutated afterwards
// except for its status fields.
type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	OrderRef      string        `gorm:"uniqueIndex" json:"order_ref"`
	UserID        string        `gorm:"not null;index" json:"user_id"`
	User          User          `gorm:"foreignKey:UserID" json:"user"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount   float64       `json:"total_amount"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// OrderItem snapshots the product at purchase time. Categories keeps the
// category names alongside the line so affinity scoring can read order
// history without joining back into a catalog that may have changed.
type OrderItem struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	OrderID      uint     `gorm:"index" json:"order_id"`
	ProductID    uint     `json:"product_id"`
	ProductName  string   `json:"product_name"`
	ProductImage string   `json:"product_image"`
	ProductPrice float64  `json:"product_price"`
	Categories   []string `gorm:"serializer:json" json:"categories"`
	Quantity     int      `json:"quantity"`
}
