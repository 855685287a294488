package models

import "time"

type OrderStatus string

const (
	// Order statuses (WhatsApp-handled fulfilment flow)
	OrderStatusPending   OrderStatus = "pending"   // Handed off to WhatsApp, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed with the customer in chat
	OrderStatusCompleted OrderStatus = "completed" // Paid and delivered/picked up
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before completion
)

type Order struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	OrderRef string `gorm:"uniqueIndex" json:"order_ref"`
	UserID   string `gorm:"not null" json:"user_id"`
	User     User   `gorm:"foreignKey:UserID" json:"user"`
	// GadgetID carries the first cart line only. Legacy column kept for
	// compatibility with pre-multi-item order data; nothing reads it back.
	GadgetID      uint        `json:"gadget_id"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalPrice    int64       `json:"total_price"` // whole Naira
	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	OrderID    uint   `gorm:"index" json:"order_id"`
	GadgetID   uint   `json:"gadget_id"`
	GadgetName string `json:"gadget_name"` // snapshot, not a live reference
	UnitPrice  int64  `json:"unit_price"`  // snapshot at checkout time
	Quantity   int    `json:"quantity"`
}
