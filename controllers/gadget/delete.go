package gadgetController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jetech-hub/jetech-api/models"
	"gorm.io/gorm"
)

func DeleteGadget(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Gadget ID is required"})
			return
		}

		// Fetch gadget (with categories) to clear associations
		var gadget models.Gadget
		if err := db.Preload("Categories").First(&gadget, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Gadget not found"})
			return
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		// Clear category associations in join table
		if err := tx.Model(&gadget).Association("Categories").Clear(); err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear category associations"})
			return
		}

		if err := tx.Delete(&gadget).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete gadget"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit gadget deletion"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Gadget deleted successfully"})
	}
}
