package gadgetController

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jetech-hub/jetech-api/models"
	"gorm.io/gorm"
)

func GetGadgets(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		categoryID := c.Query("category_id")
		brand := c.Query("brand")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		inStockOnly := c.Query("in_stock") == "true"
		swapOnly := c.Query("swap_eligible") == "true"
		sortBy := c.DefaultQuery("sort_by", "created_at")
		switch sortBy {
		case "created_at", "price", "name", "brand":
		default:
			sortBy = "created_at"
		}
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}

		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if err != nil || limit < 1 || limit > 100 {
			limit = 20
		}

		query := db.Model(&models.Gadget{}).Preload("Categories")

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where(`name ILIKE ? OR brand ILIKE ? OR description ILIKE ?`,
				likePattern, likePattern, likePattern)
		}

		if minPriceStr != "" {
			if mp, err := strconv.ParseInt(minPriceStr, 10, 64); err == nil {
				query = query.Where("price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseInt(maxPriceStr, 10, 64); err == nil {
				query = query.Where("price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		if brand != "" {
			query = query.Where("brand ILIKE ?", brand)
		}
		if inStockOnly {
			query = query.Where("in_stock = ?", true)
		}
		if swapOnly {
			query = query.Where("swap_eligible = ?", true)
		}

		if categoryID != "" {
			if cid, err := strconv.ParseUint(categoryID, 10, 64); err == nil {
				query = query.
					Joins("JOIN gadget_categories_map gcm ON gcm.gadget_id = gadgets.id").
					Where("gcm.gadget_category_id = ?", uint(cid))
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gadgets"})
			return
		}

		orderClause := fmt.Sprintf("%s %s", sortBy, sortOrder)
		var gadgets []models.Gadget
		if err := query.Order(orderClause).
			Limit(limit).
			Offset((page - 1) * limit).
			Find(&gadgets).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gadgets"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"gadgets": gadgets,
			"total":   total,
			"page":    page,
			"limit":   limit,
		})
	}
}

// GetGadgetByID returns a single gadget (with its categories).
// URL param: /gadgets/:id
func GetGadgetByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		if idParam == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Gadget ID is required"})
			return
		}

		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gadget ID"})
			return
		}

		var gadget models.Gadget
		if err := db.Preload("Categories").First(&gadget, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Gadget not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve gadget"})
			}
			return
		}
		c.JSON(http.StatusOK, gadget)
	}
}

// GetFeaturedGadgets returns the gadgets flagged for the homepage.
func GetFeaturedGadgets(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var gadgets []models.Gadget
		if err := db.Where("featured = ?", true).
			Order("created_at DESC").
			Find(&gadgets).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gadgets"})
			return
		}
		c.JSON(http.StatusOK, gadgets)
	}
}
