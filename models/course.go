package models

import (
	"time"

	"gorm.io/gorm"
)

type Course struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Slug        string         `gorm:"unique;not null" json:"slug"`
	Description string         `json:"description"`
	Duration    string         `json:"duration"` // e.g. "8 weeks"
	Schedule    string         `json:"schedule"` // e.g. "weekday", "weekend"
	Price       int64          `json:"price"`    // whole Naira
	Image       string         `json:"image"`
	Active      bool           `gorm:"default:true" json:"active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type EnrollmentStatus string

const (
	EnrollmentStatusPending   EnrollmentStatus = "pending"
	EnrollmentStatusConfirmed EnrollmentStatus = "confirmed"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusCancelled EnrollmentStatus = "cancelled"
)

type Enrollment struct {
	ID                uint             `gorm:"primaryKey" json:"id"`
	CourseID          uint             `gorm:"index;not null" json:"course_id"`
	Course            Course           `gorm:"foreignKey:CourseID" json:"course"`
	StudentName       string           `gorm:"not null" json:"student_name"`
	StudentEmail      string           `gorm:"not null" json:"student_email"`
	StudentPhone      string           `json:"student_phone"`
	PreferredSchedule string           `json:"preferred_schedule"`
	Status            EnrollmentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}
