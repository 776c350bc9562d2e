package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/omarghandour/clockyexpress/models"
	"github.com/omarghandour/clockyexpress/utils"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

var excelHeaders = []string{
	"ID", "Name", "Brand", "Category", "Price", "Before", "Description",
	"CountInStock", "Gender", "CaseColor", "DialColor", "CaseMaterial",
	"MovementType", "Class", "Img", "CreatedAt",
}

// ExportProductsToExcel streams the whole catalog as an xlsx download. Admin
// only.
// GET /products/export-excel
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			utils.StoreError(c, "Failed to fetch products", err)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			utils.StoreError(c, "Failed to create Excel sheet", err)
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range excelHeaders {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Brand)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Before)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.CountInStock)
			row.AddCell().SetValue(string(p.Gender))
			row.AddCell().SetValue(p.CaseColor)
			row.AddCell().SetValue(p.DialColor)
			row.AddCell().SetValue(p.CaseMaterial)
			row.AddCell().SetValue(string(p.MovementType))
			row.AddCell().SetValue(p.Class)
			row.AddCell().SetValue(p.Img)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			utils.StoreError(c, "Failed to write Excel file", err)
			return
		}
	}
}

// ImportProductsFromExcel bulk-creates or updates products from an uploaded
// sheet laid out like the export. Admin only.
// POST /products/import-excel
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			utils.StoreError(c, "Failed to open Excel file", err)
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			utils.StoreError(c, "Failed to parse Excel file", err)
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

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			price, priceErr := strconv.ParseFloat(get(4), 64)
			before, _ := strconv.ParseFloat(get(5), 64)
			stock, _ := strconv.Atoi(get(7))
			gender := get(8)
			movement := get(12)

			if name == "" || priceErr != nil || price < 0 || stock < 0 {
				skippedCount++
				continue
			}
			if gender != "" && !models.ValidGender(gender) {
				skippedCount++
				continue
			}
			if movement != "" && !models.ValidMovementType(movement) {
				skippedCount++
				continue
			}

			product := models.Product{
				Name:         name,
				Brand:        get(2),
				Category:     get(3),
				Price:        price,
				Before:       before,
				Description:  get(6),
				CountInStock: stock,
				Gender:       models.Gender(gender),
				CaseColor:    get(9),
				DialColor:    get(10),
				CaseMaterial: get(11),
				MovementType: models.MovementType(movement),
				Class:        get(13),
				Img:          get(14),
			}

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Product
					if err := db.First(&existing, id).Error; err == nil {
						product.ID = existing.ID
						product.CreatedAt = existing.CreatedAt
						if err := db.Save(&product).Error; err == nil {
							updatedCount++
							continue
						}
						skippedCount++
						continue
					}
				}
			}

			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Import completed",
			"createdCount": createdCount,
			"updatedCount": updatedCount,
			"skippedCount": skippedCount,
		})
	}
}
