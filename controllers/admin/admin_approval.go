package adminController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jetech-hub/jetech-api/models"
	"gorm.io/gorm"
)

type approvalInput struct {
	Email string `json:"email" binding:"required,email"`
}

// ListPendingAdmins returns the admins created through Google login
// that are still waiting for an approved admin to let them in. The
// super-admin account never appears here; it is approved on creation.
func ListPendingAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pending []models.Admin
		if err := db.Where("approved = ?", false).Find(&pending).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending admins"})
			return
		}
		c.JSON(http.StatusOK, pending)
	}
}

// ApproveAdmin grants back-office access to a pending admin. Approving
// an already-approved account is a harmless repeat.
func ApproveAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input approvalInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A valid email is required"})
			return
		}

		var admin models.Admin
		if err := db.Where("email = ?", input.Email).First(&admin).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			return
		}

		if err := db.Model(&admin).Update("approved", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve admin"})
			return
		}

		log.Println("✅ Admin approved:", input.Email)
		c.JSON(http.StatusOK, gin.H{"message": "Admin approved"})
	}
}

// RejectAdmin removes a pending (or existing) admin account entirely;
// the person can re-apply by signing in again.
func RejectAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input approvalInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A valid email is required"})
			return
		}

		result := db.Where("email = ?", input.Email).Delete(&models.Admin{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject admin"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			return
		}

		log.Println("🗑️ Admin rejected:", input.Email)
		c.JSON(http.StatusOK, gin.H{"message": "Admin rejected"})
	}
}
