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

func ExportGadgetsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var gadgets []models.Gadget
		if err := db.Preload("Categories").Find(&gadgets).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gadgets"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Gadgets")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Name", "Brand", "Description", "Price",
			"InStock", "SwapEligible", "Featured", "Image",
			"CategoryIDs", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, g := range gadgets {
			row := sheet.AddRow()

			row.AddCell().SetValue(g.ID)
			row.AddCell().SetValue(g.Name)
			row.AddCell().SetValue(g.Brand)
			row.AddCell().SetValue(g.Description)
			row.AddCell().SetValue(g.Price)
			row.AddCell().SetValue(strconv.FormatBool(g.InStock))
			row.AddCell().SetValue(strconv.FormatBool(g.SwapEligible))
			row.AddCell().SetValue(strconv.FormatBool(g.Featured))
			row.AddCell().SetValue(g.Image)

			var catIDs []string
			for _, cat := range g.Categories {
				catIDs = append(catIDs, strconv.Itoa(int(cat.ID)))
			}
			row.AddCell().SetValue(strings.Join(catIDs, ","))

			row.AddCell().SetValue(g.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(g.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=gadgets.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
