package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"`                    // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"` // Cascade delete items if cart is deleted
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CartID       uint      `gorm:"index" json:"cart_id"` // Faster queries
	GadgetID     uint      `gorm:"index" json:"gadget_id"`
	GadgetName   string    `json:"gadget_name"`
	GadgetImage  string    `json:"gadget_image"`
	UnitPrice    int64     `json:"unit_price"` // whole Naira, snapshot at add time
	InStock      bool      `json:"in_stock"`
	SwapEligible bool      `json:"swap_eligible"`
	Quantity     int       `json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}
