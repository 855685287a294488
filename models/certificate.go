package models

import (
	"log"
	"time"

	"gorm.io/gorm"
)

type Certificate struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Number      string         `gorm:"uniqueIndex;not null" json:"number"` // e.g. JTH-2026-3F9A1C0B
	HolderName  string         `gorm:"not null" json:"holder_name"`
	CourseTitle string         `gorm:"not null" json:"course_title"`
	Grade       string         `json:"grade"`
	IssuedAt    time.Time      `json:"issued_at"`
	Revoked     bool           `json:"revoked"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// CertificateAsset tracks generated verification QR images on disk.
type CertificateAsset struct {
	ID            uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CertificateID uint      `json:"certificate_id" gorm:"index"`
	FileName      string    `json:"file_name" gorm:"not null"`
	FileURL       string    `json:"file_url" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
}

func SaveCertificateAsset(db *gorm.DB, certID uint, fileName, fileURL string) (*CertificateAsset, error) {
	asset := &CertificateAsset{
		CertificateID: certID,
		FileName:      fileName,
		FileURL:       fileURL,
	}
	if err := db.Create(asset).Error; err != nil {
		return nil, err
	}

	log.Printf("📁 Saved certificate QR in DB: %s -> %s", fileName, fileURL)
	return asset, nil
}

func GetAllCertificateAssets(db *gorm.DB) ([]CertificateAsset, error) {
	var assets []CertificateAsset
	if err := db.Order("created_at DESC").Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}
