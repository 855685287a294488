package certificateController

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jetech-hub/jetech-api/models"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

type IssueCertificateInput struct {
	HolderName  string `json:"holder_name" binding:"required"`
	CourseTitle string `json:"course_title" binding:"required"`
	Grade       string `json:"grade"`
}

// generateCertificateNumber returns a number like JTH-2026-3F9A1C0B.
func generateCertificateNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("JTH-%d-%s", now.Year(), suffix)
}

// verifyURL is the address encoded into the certificate's QR code.
func verifyURL(baseURL, number string) string {
	return strings.TrimRight(baseURL, "/") + "/verify/" + number
}

func publicBaseURL() string {
	if u := os.Getenv("PUBLIC_BASE_URL"); u != "" {
		return u
	}
	return "https://jetechhub.com"
}

func uploadsRoot() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "/var/www/jetech/uploads"
}

// POST /admin/certificates
//
// Issues a certificate and writes its verification QR PNG under the
// uploads dir, recording the asset alongside the certificate row.
func IssueCertificate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input IssueCertificateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		now := time.Now()
		cert := models.Certificate{
			Number:      generateCertificateNumber(now),
			HolderName:  input.HolderName,
			CourseTitle: input.CourseTitle,
			Grade:       input.Grade,
			IssuedAt:    now,
		}

		if err := db.Create(&cert).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue certificate"})
			return
		}

		// QR generation failure does not void the certificate; the
		// asset can be regenerated by reissuing the QR later.
		asset, err := writeQRAsset(db, cert)
		if err != nil {
			log.Printf("❌ Failed to generate certificate QR for %s: %v", cert.Number, err)
			c.JSON(http.StatusCreated, gin.H{"certificate": cert, "qr": nil})
			return
		}

		log.Printf("🎓 Certificate issued: %s -> %s", cert.Number, asset.FileURL)
		c.JSON(http.StatusCreated, gin.H{"certificate": cert, "qr": asset})
	}
}

func writeQRAsset(db *gorm.DB, cert models.Certificate) (*models.CertificateAsset, error) {
	saveDir := filepath.Join(uploadsRoot(), "certificates")
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return nil, err
	}

	fileName := fmt.Sprintf("%s.png", cert.Number)
	savePath := filepath.Join(saveDir, fileName)
	if err := qrcode.WriteFile(verifyURL(publicBaseURL(), cert.Number), qrcode.Medium, 256, savePath); err != nil {
		return nil, err
	}

	fileURL := fmt.Sprintf("/uploads/certificates/%s", fileName)
	return models.SaveCertificateAsset(db, cert.ID, fileName, fileURL)
}

// GET /admin/certificates
func GetAllCertificates(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var certs []models.Certificate
		if err := db.Order("created_at DESC").Find(&certs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch certificates"})
			return
		}
		c.JSON(http.StatusOK, certs)
	}
}

// POST /admin/certificates/:number/revoke
func RevokeCertificate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		number := c.Param("number")

		var cert models.Certificate
		if err := db.Where("number = ?", number).First(&cert).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Certificate not found"})
			return
		}

		if err := db.Model(&cert).Update("revoked", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke certificate"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Certificate revoked"})
	}
}

// GET /verify/:number
//
// Public verification endpoint, also the target of the QR code.
func VerifyCertificate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		number := c.Param("number")
		if number == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Certificate number is required"})
			return
		}

		var cert models.Certificate
		if err := db.Where("number = ?", number).First(&cert).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"valid": false, "error": "Certificate not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify certificate"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"valid":        !cert.Revoked,
			"number":       cert.Number,
			"holder_name":  cert.HolderName,
			"course_title": cert.CourseTitle,
			"grade":        cert.Grade,
			"issued_at":    cert.IssuedAt,
		})
	}
}
