package adminController

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jetech-hub/jetech-api/models"
	"gorm.io/gorm"
)

func bannerUploadDir() string {
	root := os.Getenv("UPLOADS_DIR")
	if root == "" {
		root = "/var/www/jetech/uploads"
	}
	return filepath.Join(root, "banners")
}

// UploadBanner - Save image locally and store its public URL in DB
func UploadBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, fileHeader, err := c.Request.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
			return
		}
		defer file.Close()

		uploadDir := bannerUploadDir()
		if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		origName := fileHeader.Filename
		ext := filepath.Ext(origName)
		baseName := strings.TrimSuffix(origName, ext)

		// Remove duplicate extensions like ".jpg.jpg"
		for {
			e := filepath.Ext(baseName)
			if e != "" && (e == ".jpg" || e == ".jpeg" || e == ".png" || e == ".gif") {
				baseName = strings.TrimSuffix(baseName, e)
			} else {
				break
			}
		}

		baseName = strings.ReplaceAll(baseName, " ", "_")

		newFileName := fmt.Sprintf("%d_%s%s", time.Now().Unix(), baseName, ext)
		savePath := filepath.Join(uploadDir, newFileName)

		if err := c.SaveUploadedFile(fileHeader, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		imageURL := fmt.Sprintf("/uploads/banners/%s", newFileName)

		banner := models.Banner{
			ImageURL: imageURL,
			Caption:  c.Request.FormValue("caption"),
		}
		if err := db.Create(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB save failed"})
			return
		}

		c.JSON(http.StatusCreated, banner)
	}
}

// GetBanners - list banners for the homepage carousel (newest first)
func GetBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := db.Order("created_at DESC").Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch banners"})
			return
		}
		c.JSON(http.StatusOK, banners)
	}
}

// DeleteBanner - remove the DB row and the file on disk
func DeleteBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var banner models.Banner
		if err := db.First(&banner, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
			return
		}

		if err := db.Delete(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete banner"})
			return
		}

		// Best effort: the row is gone, a stale file is harmless.
		fileName := filepath.Base(banner.ImageURL)
		_ = os.Remove(filepath.Join(bannerUploadDir(), fileName))

		c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
	}
}
