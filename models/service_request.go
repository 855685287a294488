package models

import "time"

type ServiceType string
type ServiceStatus string

const (
	ServiceTypeRepair   ServiceType = "repair"
	ServiceTypeUpgrade  ServiceType = "upgrade"
	ServiceTypeSwap     ServiceType = "swap"
	ServiceTypeTraining ServiceType = "training"

	ServiceStatusNew        ServiceStatus = "new"
	ServiceStatusInProgress ServiceStatus = "in_progress"
	ServiceStatusResolved   ServiceStatus = "resolved"
	ServiceStatusClosed     ServiceStatus = "closed"
)

type ServiceRequest struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	CustomerName  string        `gorm:"not null" json:"customer_name"`
	CustomerPhone string        `gorm:"not null" json:"customer_phone"`
	CustomerEmail string        `json:"customer_email"`
	Device        string        `json:"device"` // e.g. "iPhone 13 Pro"
	Issue         string        `json:"issue"`
	ServiceType   ServiceType   `gorm:"type:VARCHAR(20)" json:"service_type"`
	Status        ServiceStatus `gorm:"type:VARCHAR(20);default:'new'" json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
