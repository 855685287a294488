package adminController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jetech-hub/jetech-api/models"
	"gorm.io/gorm"
)

// GetAllAdmins returns the back-office roster, approved accounts first
// so the ones still waiting on the approval flow sit at the bottom.
func GetAllAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admins []models.Admin

		if err := db.Order("approved DESC, email ASC").Find(&admins).Error; err != nil {
			log.Println("❌ Failed to fetch admins:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admins"})
			return
		}

		c.JSON(http.StatusOK, admins)
	}
}
