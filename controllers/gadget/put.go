package gadgetController

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jetech-hub/jetech-api/models"
	"gorm.io/gorm"
)

// UpdateGadget updates an existing gadget by ID.
// Accepts the same fields as CreateGadget and an optional "image" file.
func UpdateGadget(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gadget ID"})
			return
		}

		var gadget models.Gadget
		if err := db.Preload("Categories").First(&gadget, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Gadget not found"})
			return
		}

		// Parse form fields (optional updates)
		if v := c.PostForm("name"); v != "" {
			gadget.Name = v
		}
		if v := c.PostForm("brand"); v != "" {
			gadget.Brand = v
		}
		if v := c.PostForm("description"); v != "" {
			gadget.Description = v
		}
		if v := c.PostForm("price"); v != "" {
			if p, err := strconv.ParseInt(v, 10, 64); err == nil && p >= 0 {
				gadget.Price = p
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
		}
		if v := c.PostForm("in_stock"); v != "" {
			gadget.InStock = v == "true"
		}
		if v := c.PostForm("swap_eligible"); v != "" {
			gadget.SwapEligible = v == "true"
		}
		if v := c.PostForm("featured"); v != "" {
			gadget.Featured = v == "true"
		}

		// Update categories if provided
		if categoryIDsStr := c.PostForm("category_ids"); categoryIDsStr != "" {
			idTokens := strings.Split(categoryIDsStr, ",")
			var parsedIDs []uint
			for _, tok := range idTokens {
				tok = strings.TrimSpace(tok)
				if tok == "" {
					continue
				}
				if id64, parseErr := strconv.ParseUint(tok, 10, 64); parseErr == nil {
					parsedIDs = append(parsedIDs, uint(id64))
				}
			}
			if len(parsedIDs) > 0 {
				var categories []models.GadgetCategory
				if err := db.Where("id IN ?", parsedIDs).Find(&categories).Error; err == nil {
					gadget.Categories = categories
				}
			}
		}

		// Handle optional image upload
		file, err := c.FormFile("image")
		if err == nil {
			saveDir := filepath.Join(uploadsRoot(), "gadgets")
			if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
				return
			}

			ext := filepath.Ext(file.Filename)
			base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
			base = strings.ReplaceAll(base, " ", "_")
			filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

			savePath := filepath.Join(saveDir, filename)

			if err := c.SaveUploadedFile(file, savePath); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}

			gadget.Image = fmt.Sprintf("/uploads/gadgets/%s", filename)
		}

		if err := db.Save(&gadget).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update gadget"})
			return
		}

		c.JSON(http.StatusOK, gadget)
	}
}
