package gadgetController

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jetech-hub/jetech-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ImportGadgetsFromExcel upserts gadgets from an uploaded sheet.
// Columns: ID, Name, Brand, Description, Price, InStock, SwapEligible,
// Featured, Image, CategoryIDs.
func ImportGadgetsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]
			if len(row.Cells) < 5 {
				skippedCount++
				continue
			}

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			brand := get(2)
			description := get(3)
			price, priceErr := strconv.ParseInt(get(4), 10, 64)
			inStock := get(5) != "false"
			swapEligible := get(6) == "true"
			featured := get(7) == "true"
			image := get(8)
			categoryIDStr := get(9)

			if name == "" || priceErr != nil || price < 0 {
				skippedCount++
				continue
			}

			var categories []models.GadgetCategory
			for _, part := range strings.Split(categoryIDStr, ",") {
				if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
					categories = append(categories, models.GadgetCategory{ID: uint(id)})
				}
			}

			gadget := models.Gadget{
				Name:         name,
				Brand:        brand,
				Description:  description,
				Price:        price,
				InStock:      inStock,
				SwapEligible: swapEligible,
				Featured:     featured,
				Image:        image,
				Categories:   categories,
			}

			// Existing ID updates in place; anything else inserts.
			if idStr != "" {
				if id, err := strconv.ParseUint(idStr, 10, 64); err == nil {
					var existing models.Gadget
					if db.First(&existing, uint(id)).Error == nil {
						gadget.ID = existing.ID
						if err := db.Model(&existing).Updates(gadget).Error; err != nil {
							skippedCount++
							continue
						}
						db.Model(&existing).Association("Categories").Replace(categories)
						updatedCount++
						continue
					}
				}
			}

			if err := db.Create(&gadget).Error; err != nil {
				skippedCount++
				continue
			}
			createdCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}
