package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/omarghandour/clockyexpress/models"
	"github.com/omarghandour/clockyexpress/utils"
	"gorm.io/gorm"
)

type ProductUpdateInput struct {
	Name         *string  `json:"name"`
	Brand        *string  `json:"brand"`
	Category     *string  `json:"category"`
	Price        *float64 `json:"price"`
	Before       *float64 `json:"before"`
	Description  *string  `json:"description"`
	CountInStock *int     `json:"countInStock"`
	Gender       *string  `json:"gender"`
	CaseColor    *string  `json:"caseColor"`
	DialColor    *string  `json:"dialColor"`
	CaseMaterial *string  `json:"caseMaterial"`
	MovementType *string  `json:"movmentType"`
	Class        *string  `json:"class"`
	Img          *string  `json:"img"`
}

// UpdateProduct applies a partial update to one product. Admin only.
// PUT /products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Price != nil && *input.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
			return
		}
		if input.CountInStock != nil && *input.CountInStock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "countInStock must not be negative"})
			return
		}
		if input.Gender != nil && !models.ValidGender(*input.Gender) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gender, expected men, women or unisex"})
			return
		}
		if input.MovementType != nil && !models.ValidMovementType(*input.MovementType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movement type, expected automatic or quartz"})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Brand != nil {
			product.Brand = *input.Brand
		}
		if input.Category != nil {
			product.Category = *input.Category
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Before != nil {
			product.Before = *input.Before
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.CountInStock != nil {
			product.CountInStock = *input.CountInStock
		}
		if input.Gender != nil {
			product.Gender = models.Gender(*input.Gender)
		}
		if input.CaseColor != nil {
			product.CaseColor = *input.CaseColor
		}
		if input.DialColor != nil {
			product.DialColor = *input.DialColor
		}
		if input.CaseMaterial != nil {
			product.CaseMaterial = *input.CaseMaterial
		}
		if input.MovementType != nil {
			product.MovementType = models.MovementType(*input.MovementType)
		}
		if input.Class != nil {
			product.Class = *input.Class
		}
		if input.Img != nil {
			product.Img = *input.Img
		}

		if err := db.Save(&product).Error; err != nil {
			utils.StoreError(c, "Failed to update product", err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
