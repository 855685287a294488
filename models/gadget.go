package models

import (
	"time"

	"gorm.io/gorm"
)

type Gadget struct {
	ID           uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string           `gorm:"not null" json:"name"`
	Brand        string           `json:"brand"`
	Description  string           `json:"description"`
	Price        int64            `gorm:"not null" json:"price"` // whole Naira
	Image        string           `gorm:"not null" json:"image"`
	Categories   []GadgetCategory `gorm:"many2many:gadget_categories_map;" json:"categories"`
	InStock      bool             `gorm:"default:true" json:"in_stock"`
	SwapEligible bool             `json:"swap_eligible"`
	Featured     bool             `json:"featured"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`
}

type GadgetCategory struct {
	ID      uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string   `gorm:"unique;not null" json:"name"`
	Image   string   `json:"image"`
	Gadgets []Gadget `gorm:"many2many:gadget_categories_map" json:"gadgets,omitempty"`
}
